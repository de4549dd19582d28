package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockClient(
		MockReply{Text: json.RawMessage(`{"ok":true}`)},
	)
	c := WithRetry(mock, retryConfig())

	res, err := c.Complete(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Text) != `{"ok":true}` {
		t.Fatalf("unexpected text: %s", res.Text)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockClient(
		MockReply{Err: &UnavailableError{Err: errors.New("down")}},
		MockReply{Text: json.RawMessage(`{"ok":true}`)},
	)
	c := WithRetry(mock, retryConfig())

	res, err := c.Complete(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Text) != `{"ok":true}` {
		t.Fatalf("unexpected text: %s", res.Text)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockClient(
		MockReply{Err: &UnavailableError{Err: errors.New("down")}},
		MockReply{Err: &UnavailableError{Err: errors.New("down")}},
		MockReply{Err: &UnavailableError{Err: errors.New("down")}},
	)
	c := WithRetry(mock, retryConfig())

	_, err := c.Complete(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	mock := NewMockClient(
		MockReply{Err: &TruncatedError{Text: json.RawMessage(`{}`)}},
	)
	c := WithRetry(mock, retryConfig())

	_, err := c.Complete(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var trunc *TruncatedError
	if !errors.As(err, &trunc) {
		t.Fatalf("expected TruncatedError, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_BadReplyRetriedOnce(t *testing.T) {
	mock := NewMockClient(
		MockReply{Err: &BadReplyError{Text: json.RawMessage(`bad`), Err: errors.New("bad")}},
		MockReply{Err: &BadReplyError{Text: json.RawMessage(`bad`), Err: errors.New("bad")}},
		MockReply{Text: json.RawMessage(`{"ok":true}`)}, // Won't be reached.
	)
	c := WithRetry(mock, retryConfig())

	_, err := c.Complete(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	// One retry, then stop.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockClient(
		MockReply{Err: &UnavailableError{Err: errors.New("down")}},
		MockReply{Err: &UnavailableError{Err: errors.New("down")}},
		MockReply{Text: json.RawMessage(`{"ok":true}`)},
	)
	c := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Complete(ctx, Request{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_RateLimitRespectsRetryAfter(t *testing.T) {
	mock := NewMockClient(
		MockReply{Err: &RateLimitError{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockReply{Text: json.RawMessage(`{"ok":true}`)},
	)
	c := WithRetry(mock, retryConfig())

	res, err := c.Complete(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(res.Text) != `{"ok":true}` {
		t.Fatalf("unexpected text: %s", res.Text)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ModelDelegates(t *testing.T) {
	mock := NewMockClient()
	c := WithRetry(mock, retryConfig())
	if c.Model() != "mock" {
		t.Fatalf("expected 'mock', got %q", c.Model())
	}
}
