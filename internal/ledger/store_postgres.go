package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	id "velos/pkg/domain"
	"velos/pkg/platform/sentinel"
)

// PostgresStore persists blocks in the ledger_blocks table. The table is
// append-only; the store never issues UPDATE or DELETE.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const createLedgerBlocksTable = `
CREATE TABLE IF NOT EXISTS ledger_blocks (
	block_id      TEXT PRIMARY KEY,
	candidate_id  TEXT NOT NULL,
	sealed_at     TEXT NOT NULL,
	data_hash     TEXT NOT NULL,
	previous_hash TEXT NOT NULL,
	signature     TEXT NOT NULL,
	metadata      JSONB NOT NULL,
	seq           BIGSERIAL
);
CREATE INDEX IF NOT EXISTS idx_ledger_blocks_candidate ON ledger_blocks (candidate_id, seq);`

// Migrate creates the ledger schema if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createLedgerBlocksTable); err != nil {
		return fmt.Errorf("migrate ledger_blocks: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, block Block) error {
	metadata, err := json.Marshal(block.Metadata)
	if err != nil {
		return fmt.Errorf("marshal block metadata: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ledger_blocks (block_id, candidate_id, sealed_at, data_hash, previous_hash, signature, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		block.BlockID, string(block.CandidateID), block.Timestamp,
		block.DataHash, block.PreviousHash, block.Signature, metadata,
	)
	if err != nil {
		return fmt.Errorf("insert ledger block: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, blockID string) (Block, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT block_id, candidate_id, sealed_at, data_hash, previous_hash, signature, metadata
		FROM ledger_blocks WHERE block_id = $1`, blockID)
	return scanBlock(row)
}

func (s *PostgresStore) LastByCandidate(ctx context.Context, candidateID id.CandidateID) (Block, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT block_id, candidate_id, sealed_at, data_hash, previous_hash, signature, metadata
		FROM ledger_blocks WHERE candidate_id = $1
		ORDER BY seq DESC LIMIT 1`, string(candidateID))
	return scanBlock(row)
}

func (s *PostgresStore) ListByCandidate(ctx context.Context, candidateID id.CandidateID) ([]Block, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT block_id, candidate_id, sealed_at, data_hash, previous_hash, signature, metadata
		FROM ledger_blocks WHERE candidate_id = $1
		ORDER BY seq ASC`, string(candidateID))
	if err != nil {
		return nil, fmt.Errorf("list ledger blocks: %w", err)
	}
	defer rows.Close()

	var blocks []Block
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlock(row rowScanner) (Block, error) {
	var block Block
	var candidateID string
	var metadata []byte
	err := row.Scan(&block.BlockID, &candidateID, &block.Timestamp,
		&block.DataHash, &block.PreviousHash, &block.Signature, &metadata)
	if errors.Is(err, sql.ErrNoRows) {
		return Block{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Block{}, fmt.Errorf("scan ledger block: %w", err)
	}
	block.CandidateID = id.CandidateID(candidateID)
	if err := json.Unmarshal(metadata, &block.Metadata); err != nil {
		return Block{}, fmt.Errorf("unmarshal block metadata: %w", err)
	}
	return block, nil
}
