package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/latix/internal/apperror"
	"github.com/rocketscienceinc/latix/internal/entity"
)

const saveFileExt = ".gamesave"

type fileSave struct {
	dir string
}

// NewFileSaveRepository - stores every slot as <dir>/<slot>.gamesave.
func NewFileSaveRepository(dir string) (SaveRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}

	return &fileSave{dir: dir}, nil
}

// Save - writes to a temporary file and renames it over the slot, so a failed
// write never leaves a truncated record behind.
func (that *fileSave) Save(ctx context.Context, slot string, snapshot *entity.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	record, err := snapshot.MarshalBinary()
	if err != nil {
		return fmt.Errorf("could not encode save: %w", err)
	}

	tmp, err := os.CreateTemp(that.dir, slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(record); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write save file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save file: %w", err)
	}

	if err = os.Rename(tmp.Name(), that.path(slot)); err != nil {
		return fmt.Errorf("failed to replace save file: %w", err)
	}

	return nil
}

func (that *fileSave) Load(ctx context.Context, slot string) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	record, err := os.ReadFile(that.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperror.ErrSaveNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}

	return decodeSnapshot(record)
}

func (that *fileSave) Delete(ctx context.Context, slot string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(that.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return apperror.ErrSaveNotFound
	}

	if err != nil {
		return fmt.Errorf("failed to delete save file: %w", err)
	}

	return nil
}

func (that *fileSave) path(slot string) string {
	return filepath.Join(that.dir, slot+saveFileExt)
}
