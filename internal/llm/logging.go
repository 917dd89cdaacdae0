package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Event is one oracle round trip, as handed to a Recorder.
type Event struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// Recorder persists oracle events. The journal package provides the
// SQLite-backed implementation.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// LoggingProvider is a decorator that records every oracle request as an
// event. Recording failures never fail the request itself.
type LoggingProvider struct {
	inner    Provider
	recorder Recorder
	log      *zap.SugaredLogger
}

// WithLogging wraps a Provider with event recording.
func WithLogging(p Provider, rec Recorder, log *zap.SugaredLogger) Provider {
	return &LoggingProvider{inner: p, recorder: rec, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	ev := Event{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
		ev.ResponseBody = resp.Text
	}

	if err != nil {
		ev.ErrorMessage = err.Error()
		l.log.Warnw("oracle call failed",
			"purpose", purpose,
			"latency_ms", ev.LatencyMs,
			"error", err)
	}

	if recErr := l.recorder.Record(ctx, ev); recErr != nil {
		l.log.Warnw("failed to journal oracle event", "error", recErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the oracle request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	b.WriteString("[user]\n")
	b.WriteString(req.Prompt)
	b.WriteString("\n")

	if req.MaxTokens > 0 {
		fmt.Fprintf(&b, "\n[max_tokens: %d]\n", req.MaxTokens)
	}

	return b.String()
}
