package store

import (
	"context"
	"database/sql"
)

// schema is the DDL for the receipts table, spec.md §6. Postgres-specific
// (bytea/jsonb), following the teacher's PostgresRegistry.Init idiom of an
// embedded CREATE TABLE IF NOT EXISTS string run at startup.
const schema = `
CREATE TABLE IF NOT EXISTS receipts (
	id BIGSERIAL PRIMARY KEY,
	leaf_hash bytea NOT NULL,
	leaf_index int8 NOT NULL,
	root_hash bytea NOT NULL,
	context jsonb,
	receipt_jwt text NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS receipts_leaf_hash_idx ON receipts (leaf_hash);
`

// Migrate applies the receipts schema. Safe to call on every process
// startup — every statement is idempotent.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
