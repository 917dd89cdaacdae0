package extract

import (
	"testing"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
)

const sampleLabeled = `TITLE: Neural Networks Explained
SUMMARY: Neural networks are layered function approximators. They learn by gradient descent. Their capacity grows with depth.
KEY_POINTS:
- Layers compose simple functions
- Training minimizes a loss
* Depth increases capacity
CONCEPT_TAGS: Neural Networks|9, Gradient Descent|7, Depth|4`

func TestParseLabeled_FullRecord(t *testing.T) {
	rec, err := ParseLabeled(sampleLabeled)
	if err != nil {
		t.Fatalf("ParseLabeled: %v", err)
	}
	if rec.Title != "Neural Networks Explained" {
		t.Errorf("title = %q", rec.Title)
	}
	if rec.Summary == "" || rec.TagsLine == "" {
		t.Errorf("missing fields: %+v", rec)
	}
	if len(rec.KeyPoints) != 3 {
		t.Errorf("key points = %v", rec.KeyPoints)
	}
	if rec.KeyPoints[2] != "Depth increases capacity" {
		t.Errorf("bullet marker not stripped: %q", rec.KeyPoints[2])
	}
}

func TestParseLabeled_MissingSummaryIsParseError(t *testing.T) {
	_, err := ParseLabeled("TITLE: Something\nKEY_POINTS:\n- a point")
	if !apperr.Is(err, apperr.KindParse) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestParseLabeled_TitleDefaultsToUntitled(t *testing.T) {
	rec, err := ParseLabeled("SUMMARY: Just a summary body here.\n\nKEY_POINTS:\n- one")
	if err != nil {
		t.Fatalf("ParseLabeled: %v", err)
	}
	if rec.Title != "Untitled" {
		t.Errorf("title = %q", rec.Title)
	}
}

func TestPairs(t *testing.T) {
	pairs := Pairs("Alpha|9, Beta|not-a-number, |5, Gamma|2, Delta")
	if len(pairs) != 2 {
		t.Fatalf("expected 2 valid pairs, got %v", pairs)
	}
	if pairs[0].Name != "Alpha" || pairs[0].Score != 9 {
		t.Errorf("pairs[0] = %+v", pairs[0])
	}
	if pairs[1].Name != "Gamma" || pairs[1].Score != 2 {
		t.Errorf("pairs[1] = %+v", pairs[1])
	}
}

func TestPairs_Empty(t *testing.T) {
	if got := Pairs(""); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
