// Package learning orchestrates the pipeline over the session store:
// cached summary and study-aid generation, the pre/post-test state
// machine with score-driven difficulty, concept performance, learning
// gain, and instant feedback with streak tracking.
package learning

import (
	"context"

	"go.uber.org/zap"

	"github.com/Harshith-vm/ai-learning-platform/internal/assessment"
	"github.com/Harshith-vm/ai-learning-platform/internal/document"
	"github.com/Harshith-vm/ai-learning-platform/internal/ingest"
	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
	"github.com/Harshith-vm/ai-learning-platform/internal/studyaid"
	"github.com/Harshith-vm/ai-learning-platform/internal/summarize"
)

// Engine is the application service over one Store. All mutations run
// under the document's lock, so concurrent operations on one document
// serialize, including their oracle calls.
type Engine struct {
	store      document.Store
	summarizer *summarize.Service
	assessor   *assessment.Generator
	aids       *studyaid.Generator
	provider   llm.Provider
	log        *zap.SugaredLogger
}

func NewEngine(store document.Store, provider llm.Provider, log *zap.SugaredLogger) *Engine {
	return &Engine{
		store:      store,
		summarizer: summarize.NewService(provider, log),
		assessor:   assessment.NewGenerator(provider, log),
		aids:       studyaid.NewGenerator(provider, log),
		provider:   provider,
		log:        log,
	}
}

// Ingest loads a file and registers it as a document.
func (e *Engine) Ingest(path string, chunkSize int) (string, error) {
	res, err := ingest.File(path, chunkSize)
	if err != nil {
		return "", err
	}
	id := e.store.Create(res.Filename, res.Text, res.Chunks)
	e.log.Infow("document ingested", "id", id, "filename", res.Filename, "chunks", len(res.Chunks))
	return id, nil
}

// Info returns the artifact snapshot for a document.
func (e *Engine) Info(id string) (*document.Info, error) {
	doc, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	info := doc.Info()
	return &info, nil
}

// Summarize returns the document's summary, generating and caching it
// on first use.
func (e *Engine) Summarize(ctx context.Context, id string) (*summarize.Summary, error) {
	var summary *summarize.Summary
	err := e.store.Update(id, func(doc *document.Document) error {
		s, err := e.ensureSummary(ctx, doc)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	return summary, err
}

// ensureSummary returns the cached summary or synthesizes one. Caller
// holds the document lock.
func (e *Engine) ensureSummary(ctx context.Context, doc *document.Document) (*summarize.Summary, error) {
	if doc.Summary != nil {
		return doc.Summary, nil
	}
	summary, err := e.summarizer.Summarize(ctx, doc.Chunks)
	if err != nil {
		return nil, err
	}
	doc.Summary = summary
	return summary, nil
}

// Flashcards returns the document's flashcards, generating and caching
// them (and the summary they derive from) on first use.
func (e *Engine) Flashcards(ctx context.Context, id string) ([]studyaid.Flashcard, error) {
	var cards []studyaid.Flashcard
	err := e.store.Update(id, func(doc *document.Document) error {
		if doc.Flashcards != nil {
			cards = doc.Flashcards
			return nil
		}
		summary, err := e.ensureSummary(ctx, doc)
		if err != nil {
			return err
		}
		cards, err = e.aids.Flashcards(ctx, summary.Summary)
		if err != nil {
			return err
		}
		doc.Flashcards = cards
		return nil
	})
	return cards, err
}

// KeyPoints returns the document's key points, generating and caching
// them on first use.
func (e *Engine) KeyPoints(ctx context.Context, id string) ([]string, error) {
	var points []string
	err := e.store.Update(id, func(doc *document.Document) error {
		if doc.KeyPoints != nil {
			points = doc.KeyPoints
			return nil
		}
		summary, err := e.ensureSummary(ctx, doc)
		if err != nil {
			return err
		}
		points, err = e.aids.KeyPoints(ctx, summary.Summary)
		if err != nil {
			return err
		}
		doc.KeyPoints = points
		return nil
	})
	return points, err
}

// MCQs returns the document's general question set, generating and
// caching it on first use. Mixed difficulty.
func (e *Engine) MCQs(ctx context.Context, id string) (*assessment.Set, error) {
	var set *assessment.Set
	err := e.store.Update(id, func(doc *document.Document) error {
		if doc.MCQs != nil {
			set = doc.MCQs
			return nil
		}
		summary, err := e.ensureSummary(ctx, doc)
		if err != nil {
			return err
		}
		set, err = e.assessor.Generate(ctx, summary.Summary, "")
		if err != nil {
			return err
		}
		doc.MCQs = set
		return nil
	})
	return set, err
}

// QuickMCQs generates the strict five-question set directly from the
// document text. Not cached: each call is a fresh set.
func (e *Engine) QuickMCQs(ctx context.Context, id string) (*assessment.QuickSet, error) {
	doc, err := e.store.Get(id)
	if err != nil {
		return nil, err
	}
	return e.assessor.QuickGenerate(ctx, doc.Text)
}
