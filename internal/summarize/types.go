package summarize

import (
	"math"
	"sort"
)

// ConceptTag is a short noun-phrase label with an importance score in
// [1,10], representing a core idea in the document.
type ConceptTag struct {
	Name       string `json:"name"`
	Importance int    `json:"importance"`
}

// HeatmapEntry is the normalized-weight view of one concept tag.
type HeatmapEntry struct {
	Importance int     `json:"importance"`
	Weight     float64 `json:"weight"`
}

// Summary is the canonical structured record produced once per document.
type Summary struct {
	Title          string                  `json:"title"`
	Summary        string                  `json:"summary"`
	KeyPoints      []string                `json:"key_points"`
	ConceptTags    []ConceptTag            `json:"concept_tags"`
	ConceptHeatmap map[string]HeatmapEntry `json:"concept_heatmap"`
}

// TagsByImportance returns the concept tags sorted heaviest first. The
// receiver's tag order is left untouched.
func (s *Summary) TagsByImportance() []ConceptTag {
	tags := make([]ConceptTag, len(s.ConceptTags))
	copy(tags, s.ConceptTags)
	sort.SliceStable(tags, func(i, j int) bool { return tags[i].Importance > tags[j].Importance })
	return tags
}

// buildHeatmap computes normalized weights: importance over the total,
// rounded to 3 decimals. Weights sum to 1.0 within rounding.
func buildHeatmap(tags []ConceptTag) map[string]HeatmapEntry {
	total := 0
	for _, tag := range tags {
		total += tag.Importance
	}
	if total == 0 {
		return nil
	}

	heatmap := make(map[string]HeatmapEntry, len(tags))
	for _, tag := range tags {
		weight := math.Round(float64(tag.Importance)/float64(total)*1000) / 1000
		heatmap[tag.Name] = HeatmapEntry{
			Importance: tag.Importance,
			Weight:     weight,
		}
	}
	return heatmap
}
