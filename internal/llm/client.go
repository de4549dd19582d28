package llm

import (
	"context"
	"encoding/json"
)

// Client is the abstraction over a generative text/JSON completion service.
// Every feature of the app funnels through a single Complete call: prompt in,
// free text or schema-conformant JSON out.
type Client interface {
	// Complete sends one prompt and returns the model's output. When the
	// request carries a Schema the result Text holds JSON validated against
	// it; otherwise Text is the raw text of the completion.
	Complete(ctx context.Context, req Request) (*Result, error)

	// Model returns the model identifier this client is configured to use.
	Model() string
}

// Request describes a single completion round trip. The app is single-turn
// throughout: even the scholar chat sends each question standalone.
type Request struct {
	// System sets the model's role and output constraints. Optional.
	System string

	// Prompt is the user-facing request text.
	Prompt string

	// Schema, when set, instructs the client to use the provider's native
	// structured output mechanism and to validate the result against it.
	Schema *Schema

	// MaxTokens caps the completion length.
	MaxTokens int

	// Temperature controls randomness, 0.0–1.0. Zero means deterministic.
	Temperature float64
}

// Schema declares the JSON shape a structured completion must match.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "ayah-range".
	Name string

	// Description guides the model's generation.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Result holds a completion.
type Result struct {
	// Text is the completion output. Validated JSON when the request had a
	// Schema, raw text otherwise.
	Text json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// Stop is the normalized stop reason: "end" or "max_tokens".
	Stop string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
