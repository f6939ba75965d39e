// Package store persists committed receipts to PostgreSQL, step 5 of the
// commit sequence (spec.md §4.4). Adapted from the teacher's
// PostgresReceiptStore: same database/sql + lib/pq idiom, new schema.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// ErrNotFound matches the Store.NotFound kind in spec.md §7: surfaced to
// the caller of GetReceipt, never swallowed like the per-submission
// write-path errors.
var ErrNotFound = errors.New("store: receipt not found")

// Record is one row of the receipts table (spec.md §6): leaf_hash,
// leaf_index, root_hash, context, receipt_jwt, created_at. receipt_jwt
// holds the full signed receipt JSON produced by pkg/signer — the
// column name is carried over from the source schema even though the
// payload is JSON, not a JWT.
type Record struct {
	LeafHash   []byte
	LeafIndex  int64
	RootHash   []byte
	Context    json.RawMessage
	ReceiptJWT []byte
	CreatedAt  time.Time
}

// ReceiptStore persists and retrieves receipt records. Implementations
// must tolerate concurrent use by multiple in-flight commit sequences.
type ReceiptStore interface {
	Insert(ctx context.Context, r Record) error
	GetByLeafHash(ctx context.Context, leafHash []byte) (*Record, error)
}

// PostgresReceiptStore is the durable SQL-based implementation, holding
// a connection pool of capacity 10 per spec.md §5.
type PostgresReceiptStore struct {
	db *sql.DB
}

// NewPostgresReceiptStore wraps an already-opened, already-pinged *sql.DB.
// Callers configure the pool (SetMaxOpenConns(10) per spec.md §5) before
// passing it in; this type manages no connection lifecycle of its own.
func NewPostgresReceiptStore(db *sql.DB) *PostgresReceiptStore {
	return &PostgresReceiptStore{db: db}
}

// Insert writes one receipt record. Duplicate hashes are permitted —
// spec.md §8 invariant 8 requires two submissions of the same hash to
// yield two distinct rows, so there is no uniqueness constraint on
// leaf_hash beyond the store's own primary key.
func (s *PostgresReceiptStore) Insert(ctx context.Context, r Record) error {
	query := `
		INSERT INTO receipts (leaf_hash, leaf_index, root_hash, context, receipt_jwt, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, query,
		r.LeafHash, r.LeafIndex, r.RootHash, []byte(r.Context), r.ReceiptJWT, createdAt,
	)
	if err != nil {
		return fmt.Errorf("store: insert receipt: %w", err)
	}
	return nil
}

// GetByLeafHash returns the most recently created record for leafHash.
// Because leaf_hash is not unique (invariant 8), ambiguity is resolved
// by created_at: the latest submission wins.
func (s *PostgresReceiptStore) GetByLeafHash(ctx context.Context, leafHash []byte) (*Record, error) {
	query := `
		SELECT leaf_hash, leaf_index, root_hash, context, receipt_jwt, created_at
		FROM receipts
		WHERE leaf_hash = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	row := s.db.QueryRowContext(ctx, query, leafHash)

	var r Record
	var ctxBytes []byte
	err := row.Scan(&r.LeafHash, &r.LeafIndex, &r.RootHash, &ctxBytes, &r.ReceiptJWT, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: get receipt: %w", err)
	}
	r.Context = json.RawMessage(ctxBytes)
	return &r, nil
}
