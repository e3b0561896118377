package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/latix/internal/apperror"
	"github.com/rocketscienceinc/latix/internal/entity"
)

// SaveRepository stores session snapshots under a slot name.
type SaveRepository interface {
	Save(ctx context.Context, slot string, snapshot *entity.Snapshot) error
	Load(ctx context.Context, slot string) (*entity.Snapshot, error)
	Delete(ctx context.Context, slot string) error
}

type dbSave struct {
	client *redis.Client
}

func NewRedisSaveRepository(client *redis.Client) SaveRepository {
	return &dbSave{
		client: client,
	}
}

func (that *dbSave) Save(ctx context.Context, slot string, snapshot *entity.Snapshot) error {
	record, err := snapshot.MarshalBinary()
	if err != nil {
		return fmt.Errorf("could not encode save: %w", err)
	}

	err = that.client.Set(ctx, saveKey(slot), record, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set save: %w", err)
	}

	return nil
}

func (that *dbSave) Load(ctx context.Context, slot string) (*entity.Snapshot, error) {
	response, err := that.client.Get(ctx, saveKey(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSaveNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get save: %w", err)
	}

	return decodeSnapshot(response)
}

func (that *dbSave) Delete(ctx context.Context, slot string) error {
	deleted, err := that.client.Del(ctx, saveKey(slot)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete save: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrSaveNotFound
	}

	return nil
}

func saveKey(slot string) string {
	return "save:" + slot
}

func decodeSnapshot(record []byte) (*entity.Snapshot, error) {
	var snapshot entity.Snapshot
	if err := snapshot.UnmarshalBinary(record); err != nil {
		return nil, fmt.Errorf("failed to decode save: %w", err)
	}

	return &snapshot, nil
}
