// Package summarize turns document chunks into a structured summary in
// two oracle stages: consecutive chunk groups are condensed in parallel
// (map), then the group digests are synthesized into one labeled record
// with weighted concept tags (reduce).
package summarize

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Harshith-vm/ai-learning-platform/internal/apperr"
	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

const (
	// DefaultGroupSize is the number of consecutive chunks condensed per
	// oracle call.
	DefaultGroupSize = 4

	// DefaultParallelism bounds concurrent group calls.
	DefaultParallelism = 4

	groupMaxTokens     = 512
	synthesisMaxTokens = 2048
)

// GroupResult records the outcome of one group's oracle call. Index is
// the group's position in chunk order.
type GroupResult struct {
	Index   int
	Summary string
	Err     error
}

// Reducer condenses chunk groups into short plain-text digests. Group
// failures are tolerated individually; only zero successes fails the
// reduction.
type Reducer struct {
	provider    llm.Provider
	groupSize   int
	parallelism int
	log         *zap.SugaredLogger
}

// NewReducer creates a Reducer with the default group size and
// parallelism.
func NewReducer(provider llm.Provider, log *zap.SugaredLogger) *Reducer {
	return &Reducer{
		provider:    provider,
		groupSize:   DefaultGroupSize,
		parallelism: DefaultParallelism,
		log:         log,
	}
}

// Reduce partitions chunks into consecutive groups and issues one oracle
// call per group. Returned summaries preserve chunk order; failed groups
// are skipped. The per-group outcomes are returned alongside so callers
// can report partial degradation. All groups failing is a hard error.
func (r *Reducer) Reduce(ctx context.Context, chunks []string) ([]string, []GroupResult, error) {
	if len(chunks) == 0 {
		return nil, nil, apperr.Validation("no chunks to summarize")
	}

	groups := partition(chunks, r.groupSize)
	results := make([]GroupResult, len(groups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i, group := range groups {
		g.Go(func() error {
			results[i] = r.reduceGroup(gctx, i, group)
			// Failures land in the result slot so sibling groups keep
			// running.
			return nil
		})
	}
	_ = g.Wait()

	var summaries []string
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			r.log.Warnw("group summary failed", "group", res.Index, "error", res.Err)
			continue
		}
		summaries = append(summaries, res.Summary)
	}

	if len(summaries) == 0 {
		return nil, results, apperr.New(apperr.KindOracle,
			"all %d group summaries failed", len(groups))
	}
	if failed > 0 {
		r.log.Infow("partial group reduction", "succeeded", len(summaries), "failed", failed)
	}
	return summaries, results, nil
}

func (r *Reducer) reduceGroup(ctx context.Context, index int, group []string) GroupResult {
	ctx = llm.WithPurpose(ctx, "group-summary")

	resp, err := r.provider.Generate(ctx, llm.Request{
		System:    groupSystemPrompt,
		Prompt:    buildGroupPrompt(strings.Join(group, "\n\n")),
		MaxTokens: groupMaxTokens,
	})
	if err != nil {
		return GroupResult{Index: index, Err: err}
	}

	summary := strings.TrimSpace(resp.Text)
	if summary == "" {
		return GroupResult{Index: index, Err: apperr.New(apperr.KindOracle, "empty group summary")}
	}
	return GroupResult{Index: index, Summary: summary}
}

// partition splits items into consecutive slices of at most size.
func partition(items []string, size int) [][]string {
	if size <= 0 {
		size = DefaultGroupSize
	}
	var groups [][]string
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		groups = append(groups, items[start:end])
	}
	return groups
}
