package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresReceiptStore_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresReceiptStore(db)
	ctx := context.Background()

	leafHash := make([]byte, 32)
	rootHash := make([]byte, 32)
	rec := Record{
		LeafHash:   leafHash,
		LeafIndex:  3,
		RootHash:   rootHash,
		Context:    json.RawMessage(`{"a":1}`),
		ReceiptJWT: []byte(`{"leaf_index":3}`),
	}

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO receipts (leaf_hash, leaf_index, root_hash, context, receipt_jwt, created_at)")).
		WithArgs(leafHash, int64(3), rootHash, []byte(rec.Context), rec.ReceiptJWT, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Insert(ctx, rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresReceiptStore_GetByLeafHash_Found(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresReceiptStore(db)
	ctx := context.Background()

	leafHash := make([]byte, 32)
	rootHash := make([]byte, 32)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"leaf_hash", "leaf_index", "root_hash", "context", "receipt_jwt", "created_at"}).
		AddRow(leafHash, int64(3), rootHash, []byte(`{"a":1}`), []byte(`{"leaf_index":3}`), now)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT leaf_hash, leaf_index, root_hash, context, receipt_jwt, created_at")).
		WithArgs(leafHash).
		WillReturnRows(rows)

	rec, err := store.GetByLeafHash(ctx, leafHash)
	require.NoError(t, err)
	assert.Equal(t, int64(3), rec.LeafIndex)
	assert.JSONEq(t, `{"a":1}`, string(rec.Context))
}

func TestPostgresReceiptStore_GetByLeafHash_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresReceiptStore(db)
	ctx := context.Background()
	leafHash := make([]byte, 32)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT leaf_hash, leaf_index, root_hash, context, receipt_jwt, created_at")).
		WithArgs(leafHash).
		WillReturnError(sql.ErrNoRows)

	_, err = store.GetByLeafHash(ctx, leafHash)
	assert.True(t, errors.Is(err, ErrNotFound))
}
