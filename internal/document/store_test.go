package document

import (
	"sync"
	"testing"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
	"github.com/Harshith-vm/ai-learning-platform/internal/summarize"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	s := NewMemoryStore()
	id := s.Create("notes.txt", "hello world", []string{"hello world"})

	doc, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if doc.Filename != "notes.txt" {
		t.Errorf("filename = %q", doc.Filename)
	}
	if len(doc.Chunks) != 1 {
		t.Errorf("chunks = %d", len(doc.Chunks))
	}
	if doc.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get("nope")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected not_found, got %v", err)
	}
}

func TestMemoryStore_UpdateUnknown(t *testing.T) {
	s := NewMemoryStore()
	err := s.Update("nope", func(*Document) error { return nil })
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected not_found, got %v", err)
	}
}

func TestMemoryStore_ConcurrentUpdatesSerialize(t *testing.T) {
	s := NewMemoryStore()
	id := s.Create("f.txt", "text", nil)

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(id, func(doc *Document) error {
				doc.LearningSession.CurrentStreak.Correct++
				return nil
			})
		}()
	}
	wg.Wait()

	doc, _ := s.Get(id)
	if doc.LearningSession.CurrentStreak.Correct != n {
		t.Errorf("lost updates: got %d, want %d", doc.LearningSession.CurrentStreak.Correct, n)
	}
}

func TestMemoryStore_GetIsSnapshot(t *testing.T) {
	s := NewMemoryStore()
	id := s.Create("f.txt", "text", nil)

	doc, _ := s.Get(id)
	doc.Filename = "mutated.txt"
	doc.LearningSession.CurrentStreak.Correct = 99

	stored, _ := s.Get(id)
	if stored.Filename != "f.txt" {
		t.Errorf("snapshot mutation leaked into store: filename = %q", stored.Filename)
	}
	if stored.LearningSession.CurrentStreak.Correct != 0 {
		t.Errorf("snapshot mutation leaked into store: streak = %d", stored.LearningSession.CurrentStreak.Correct)
	}
}

func TestMemoryStore_GetDuringConcurrentUpdates(t *testing.T) {
	s := NewMemoryStore()
	id := s.Create("f.txt", "text", nil)

	// Readers snapshot while writers publish artifacts. Run under -race.
	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(id, func(doc *Document) error {
				doc.Summary = &summarize.Summary{Title: "t"}
				doc.LearningSession.CurrentStreak.Apply(true)
				return nil
			})
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := s.Get(id)
			if err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			info := doc.Info()
			if info.Filename != "f.txt" {
				t.Errorf("filename = %q", info.Filename)
			}
		}()
	}
	wg.Wait()

	doc, _ := s.Get(id)
	if !doc.Info().HasSummary {
		t.Error("summary not published")
	}
}

func TestStreak_Apply(t *testing.T) {
	var s Streak
	s.Apply(true)
	s.Apply(true)
	s.Apply(true)
	if s.Correct != 3 || s.Wrong != 0 {
		t.Errorf("after 3 correct: %+v", s)
	}
	s.Apply(false)
	if s.Correct != 0 || s.Wrong != 1 {
		t.Errorf("wrong answer must reset correct streak: %+v", s)
	}
}

func TestDocument_Info(t *testing.T) {
	s := NewMemoryStore()
	id := s.Create("f.txt", "text", []string{"a", "b"})

	doc, _ := s.Get(id)
	info := doc.Info()
	if info.ChunkCount != 2 || info.HasSummary || info.PreTestTaken {
		t.Errorf("unexpected info: %+v", info)
	}

	score := 70.0
	_ = s.Update(id, func(doc *Document) error {
		doc.LearningSession.PreTestScore = &score
		return nil
	})
	doc, _ = s.Get(id)
	if !doc.Info().PreTestTaken {
		t.Error("PreTestTaken should be true after score recorded")
	}
}
