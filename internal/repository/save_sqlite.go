package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/latix/internal/apperror"
	"github.com/rocketscienceinc/latix/internal/entity"
)

type sqliteSave struct {
	db *sql.DB
}

// NewSQLiteSaveRepository - expects the saves table created by storage.Storage.Init.
func NewSQLiteSaveRepository(db *sql.DB) SaveRepository {
	return &sqliteSave{
		db: db,
	}
}

func (that *sqliteSave) Save(ctx context.Context, slot string, snapshot *entity.Snapshot) error {
	record, err := snapshot.MarshalBinary()
	if err != nil {
		return fmt.Errorf("could not encode save: %w", err)
	}

	query := `INSERT INTO saves (slot, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`

	if _, err = that.db.ExecContext(ctx, query, slot, record, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to upsert save: %w", err)
	}

	return nil
}

func (that *sqliteSave) Load(ctx context.Context, slot string) (*entity.Snapshot, error) {
	var record []byte

	err := that.db.QueryRowContext(ctx, `SELECT data FROM saves WHERE slot = ?`, slot).Scan(&record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrSaveNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to select save: %w", err)
	}

	return decodeSnapshot(record)
}

func (that *sqliteSave) Delete(ctx context.Context, slot string) error {
	result, err := that.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count deleted saves: %w", err)
	}

	if affected == 0 {
		return apperror.ErrSaveNotFound
	}

	return nil
}
