package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	id "velos/pkg/domain"
	"velos/pkg/platform/sentinel"
)

// PostgresStore persists events and results with database/sql. Events only
// ever receive INSERTs; results are upserted on re-verification of the same
// candidate after a terminal run was abandoned.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const createAuditSchema = `
CREATE TABLE IF NOT EXISTS audit_events (
	id           TEXT PRIMARY KEY,
	category     TEXT NOT NULL,
	timestamp    TIMESTAMPTZ NOT NULL,
	candidate_id TEXT NOT NULL,
	stage        TEXT NOT NULL DEFAULT '',
	action       TEXT NOT NULL,
	decision     TEXT NOT NULL DEFAULT '',
	reason       TEXT NOT NULL DEFAULT '',
	request_id   TEXT NOT NULL DEFAULT '',
	actor_id     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_audit_events_candidate ON audit_events (candidate_id, timestamp);

CREATE TABLE IF NOT EXISTS verification_results (
	candidate_id       TEXT PRIMARY KEY,
	final_status       TEXT NOT NULL,
	final_reason       TEXT NOT NULL,
	stage_1_status     TEXT NOT NULL,
	stage_2_status     TEXT NOT NULL,
	stage_2_score      DOUBLE PRECISION NOT NULL,
	stage_3_status     TEXT NOT NULL,
	authenticity_score DOUBLE PRECISION NOT NULL,
	red_flags_count    INTEGER NOT NULL,
	block_id           TEXT NOT NULL DEFAULT '',
	submitted_at       TIMESTAMPTZ NOT NULL,
	completed_at       TIMESTAMPTZ NOT NULL
);`

// Migrate creates the audit schema if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createAuditSchema); err != nil {
		return fmt.Errorf("migrate audit schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, category, timestamp, candidate_id, stage, action, decision, reason, request_id, actor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		event.ID, string(event.Category), event.Timestamp, string(event.CandidateID),
		event.Stage, event.Action, event.Decision, event.Reason, event.RequestID, event.ActorID,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByCandidate(ctx context.Context, candidateID id.CandidateID) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, timestamp, candidate_id, stage, action, decision, reason, request_id, actor_id
		FROM audit_events WHERE candidate_id = $1 ORDER BY timestamp ASC`, string(candidateID))
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()
	return scanEvents(rows)
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, timestamp, candidate_id, stage, action, decision, reason, request_id, actor_id
		FROM audit_events ORDER BY timestamp DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent audit events: %w", err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}
	// Query returns newest first; callers expect chronological order.
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events, nil
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	var events []Event
	for rows.Next() {
		var event Event
		var category, candidateID string
		var timestamp time.Time
		if err := rows.Scan(&event.ID, &category, &timestamp, &candidateID,
			&event.Stage, &event.Action, &event.Decision, &event.Reason,
			&event.RequestID, &event.ActorID); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.Category = EventCategory(category)
		event.Timestamp = timestamp
		event.CandidateID = id.CandidateID(candidateID)
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *PostgresStore) SaveResult(ctx context.Context, result Result) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO verification_results (
			candidate_id, final_status, final_reason,
			stage_1_status, stage_2_status, stage_2_score,
			stage_3_status, authenticity_score, red_flags_count,
			block_id, submitted_at, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (candidate_id) DO UPDATE SET
			final_status = EXCLUDED.final_status,
			final_reason = EXCLUDED.final_reason,
			stage_1_status = EXCLUDED.stage_1_status,
			stage_2_status = EXCLUDED.stage_2_status,
			stage_2_score = EXCLUDED.stage_2_score,
			stage_3_status = EXCLUDED.stage_3_status,
			authenticity_score = EXCLUDED.authenticity_score,
			red_flags_count = EXCLUDED.red_flags_count,
			block_id = EXCLUDED.block_id,
			submitted_at = EXCLUDED.submitted_at,
			completed_at = EXCLUDED.completed_at`,
		string(result.CandidateID), result.FinalStatus, result.FinalReason,
		result.Stage1Status, result.Stage2Status, result.Stage2Score,
		result.Stage3Status, result.AuthenticityScore, result.RedFlagsCount,
		result.BlockID, result.SubmittedAt, result.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("save verification result: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetResult(ctx context.Context, candidateID id.CandidateID) (Result, error) {
	var result Result
	var cand string
	err := s.db.QueryRowContext(ctx, `
		SELECT candidate_id, final_status, final_reason,
			   stage_1_status, stage_2_status, stage_2_score,
			   stage_3_status, authenticity_score, red_flags_count,
			   block_id, submitted_at, completed_at
		FROM verification_results WHERE candidate_id = $1`, string(candidateID)).
		Scan(&cand, &result.FinalStatus, &result.FinalReason,
			&result.Stage1Status, &result.Stage2Status, &result.Stage2Score,
			&result.Stage3Status, &result.AuthenticityScore, &result.RedFlagsCount,
			&result.BlockID, &result.SubmittedAt, &result.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Result{}, fmt.Errorf("get verification result: %w", err)
	}
	result.CandidateID = id.CandidateID(cand)
	return result, nil
}

func (s *PostgresStore) CountResultsByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT final_status, COUNT(*) FROM verification_results GROUP BY final_status`)
	if err != nil {
		return nil, fmt.Errorf("count results: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan result count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
