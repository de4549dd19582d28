package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/asadk/hikmah/internal/storage"
)

// loggingClient is a decorator that records every completion request as a
// gateway event.
type loggingClient struct {
	inner    Client
	provider string
	events   storage.EventRepo
}

// WithLogging wraps a Client with event logging. The provider string labels
// which backend served the request.
func WithLogging(c Client, provider string, events storage.EventRepo) Client {
	return &loggingClient{inner: c, provider: provider, events: events}
}

func (l *loggingClient) Complete(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	res, err := l.inner.Complete(ctx, req)

	data := storage.GatewayEventData{
		Provider:  l.provider,
		Model:     l.inner.Model(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if res != nil {
		data.InputTokens = res.Usage.InputTokens
		data.OutputTokens = res.Usage.OutputTokens
		data.Model = res.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// The event is best effort. A logging failure never fails the request.
	if logErr := l.events.AppendGatewayEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log gateway event: %v\n", logErr)
	}

	return res, err
}

func (l *loggingClient) Model() string {
	return l.inner.Model()
}
