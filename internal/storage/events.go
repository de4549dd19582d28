package storage

import (
	"context"
	"fmt"
	"time"
)

// GatewayEvent is one logged request to the AI completion service.
type GatewayEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// GatewayEventData is the payload for appending a new event.
type GatewayEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to gateway request events.
type EventRepo interface {
	// AppendGatewayEvent records one AI request round trip.
	AppendGatewayEvent(ctx context.Context, data GatewayEventData) error

	// QueryGatewayEvents returns the most recent events, newest first.
	// An empty purpose matches all events; limit <= 0 means no limit.
	QueryGatewayEvents(ctx context.Context, purpose string, limit int) ([]GatewayEvent, error)
}

// EventRepo returns an EventRepo backed by this store.
func (s *SQLiteStore) EventRepo() EventRepo {
	return &sqliteEventRepo{store: s}
}

type sqliteEventRepo struct {
	store *SQLiteStore
}

func (r *sqliteEventRepo) AppendGatewayEvent(ctx context.Context, data GatewayEventData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := r.store.db.ExecContext(ctx,
		`INSERT INTO gateway_events
		 (timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		success, data.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append gateway event: %w", err)
	}
	return nil
}

func (r *sqliteEventRepo) QueryGatewayEvents(ctx context.Context, purpose string, limit int) ([]GatewayEvent, error) {
	q := `SELECT id, timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message
	      FROM gateway_events`
	args := []any{}
	if purpose != "" {
		q += ` WHERE purpose = ?`
		args = append(args, purpose)
	}
	q += ` ORDER BY id DESC`
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.store.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query gateway events: %w", err)
	}
	defer rows.Close()

	var out []GatewayEvent
	for rows.Next() {
		var e GatewayEvent
		var ts string
		var success int
		if err := rows.Scan(&e.ID, &ts, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan gateway event: %w", err)
		}
		e.Timestamp, _ = time.Parse(time.RFC3339, ts)
		e.Success = success == 1
		out = append(out, e)
	}
	return out, rows.Err()
}
