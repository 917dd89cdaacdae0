package llm

import "context"

// Provider is the generation oracle: an external text-generation service
// treated as an untrusted, possibly-failing black box. It takes a prompt
// (plus optional system prompt) and returns free text. Callers that need
// structure recover it with the extract package; the oracle itself makes
// no format guarantees.
type Provider interface {
	// Generate sends a single-turn prompt to the oracle and returns its
	// raw text output.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the oracle.
type Request struct {
	// System is the optional system prompt. Sets the oracle's role and
	// constraints.
	System string

	// Prompt is the user prompt. Every pipeline call is single-turn.
	Prompt string

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Response holds the oracle's output.
type Response struct {
	// Text is the raw generated text. No structural guarantees: it may be
	// JSON, labeled lines, fenced markdown, or garbage.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
