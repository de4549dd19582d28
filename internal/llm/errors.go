package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// RateLimitError indicates the provider returned a rate limit error (429).
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// BadReplyError indicates the model returned output that does not conform
// to the requested schema, or no usable output at all.
type BadReplyError struct {
	Text json.RawMessage
	Err  error
}

func (e *BadReplyError) Error() string {
	return fmt.Sprintf("malformed completion: %v", e.Err)
}

func (e *BadReplyError) Unwrap() error { return e.Err }

// UnavailableError indicates the provider is down or unreachable.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion provider unavailable: %v", e.Err)
	}
	return "completion provider unavailable"
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// TruncatedError indicates the completion was cut off by the MaxTokens
// limit before finishing.
type TruncatedError struct {
	Text json.RawMessage
}

func (e *TruncatedError) Error() string {
	return "completion truncated: max tokens exceeded"
}
