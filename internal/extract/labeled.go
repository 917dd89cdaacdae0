package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
)

// Labeled is the line-oriented record shape: fixed field labels anchored
// at line starts, with free text between them. Used by the concept-tag
// summary format.
type Labeled struct {
	Title     string
	Summary   string
	KeyPoints []string
	TagsLine  string
}

var (
	titleRe     = regexp.MustCompile(`(?i)TITLE:\s*(.+)`)
	summaryRe   = regexp.MustCompile(`(?is)SUMMARY:\s*(.+?)(?:\n\n|\nKEY_POINTS:)`)
	keyPointsRe = regexp.MustCompile(`(?is)KEY_POINTS:\s*(.+?)(?:\n\nCONCEPT_TAGS:|\nCONCEPT_TAGS:|$)`)
	tagsRe      = regexp.MustCompile(`(?i)CONCEPT_TAGS:\s*(.+)`)
)

// ParseLabeled extracts the labeled summary record from raw oracle output.
// A missing SUMMARY section is a parse error; the other fields degrade to
// empty values and are judged by the caller's own validation.
func ParseLabeled(raw string) (*Labeled, error) {
	rec := &Labeled{Title: "Untitled"}

	if m := titleRe.FindStringSubmatch(raw); m != nil {
		rec.Title = strings.TrimSpace(m[1])
	}

	m := summaryRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, apperr.New(apperr.KindParse, "no SUMMARY section in oracle output")
	}
	rec.Summary = strings.TrimSpace(m[1])

	if m := keyPointsRe.FindStringSubmatch(raw); m != nil {
		rec.KeyPoints = parseBullets(m[1])
	}

	if m := tagsRe.FindStringSubmatch(raw); m != nil {
		rec.TagsLine = strings.TrimSpace(m[1])
	}

	return rec, nil
}

// parseBullets splits a block into one point per line, stripping bullet
// markers and blanks.
func parseBullets(block string) []string {
	var points []string
	for _, line := range strings.Split(block, "\n") {
		point := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-•*"))
		if point != "" {
			points = append(points, point)
		}
	}
	return points
}

// Pair is one Name|Score entry from a delimited concept-tag line.
type Pair struct {
	Name  string
	Score int
}

// Pairs parses a "Name|Score, Name|Score, ..." line. Entries that do not
// split into exactly name and integer score are skipped, not rejected:
// the caller decides whether the surviving set is sufficient.
func Pairs(line string) []Pair {
	var pairs []Pair
	for _, entry := range strings.Split(line, ",") {
		parts := strings.Split(strings.TrimSpace(entry), "|")
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || name == "" {
			continue
		}
		pairs = append(pairs, Pair{Name: name, Score: score})
	}
	return pairs
}
