package snapshot

import (
	"context"
	"database/sql"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/avaheights/society-portal/internal/domain/providers"
	"github.com/avaheights/society-portal/internal/infrastructure/clients/postgres"
	apperrors "github.com/avaheights/society-portal/pkg/errors"
)

const snapshotsTable = "snapshots"

// PostgresStore keeps snapshots in a PostgreSQL table, one row per slot.
type PostgresStore struct {
	client *postgres.Client
	db     *goqu.Database
}

var _ providers.SnapshotStore = (*PostgresStore)(nil)

// NewPostgresStore creates the snapshots table if needed and returns the store
func NewPostgresStore(client *postgres.Client) (*PostgresStore, error) {
	if _, err := client.DB().Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			slot       TEXT PRIMARY KEY,
			data       BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`); err != nil {
		return nil, apperrors.NewInternalError("failed to create snapshots table", err)
	}

	return &PostgresStore{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}, nil
}

// Load returns the slot contents
func (s *PostgresStore) Load(ctx context.Context, slot string) ([]byte, bool, error) {
	query, args, err := s.db.Select("data").From(snapshotsTable).
		Where(goqu.Ex{"slot": slot}).
		ToSQL()
	if err != nil {
		return nil, false, apperrors.NewInternalError("failed to build snapshot query", err)
	}

	var data []byte
	err = s.client.DB().QueryRowContext(ctx, query, args...).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewInternalError("failed to load snapshot", err)
	}
	return data, true, nil
}

// Save replaces the slot contents
func (s *PostgresStore) Save(ctx context.Context, slot string, data []byte) error {
	record := goqu.Record{
		"slot":       slot,
		"data":       data,
		"updated_at": time.Now().UTC(),
	}

	query, args, err := s.db.Insert(snapshotsTable).Rows(record).
		OnConflict(goqu.DoUpdate("slot", goqu.Record{
			"data":       data,
			"updated_at": time.Now().UTC(),
		})).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build snapshot upsert", err)
	}

	if _, err := s.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to save snapshot", err)
	}
	return nil
}

// Delete removes the slot
func (s *PostgresStore) Delete(ctx context.Context, slot string) error {
	query, args, err := s.db.Delete(snapshotsTable).
		Where(goqu.Ex{"slot": slot}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build snapshot delete", err)
	}

	if _, err := s.client.DB().ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to delete snapshot", err)
	}
	return nil
}
