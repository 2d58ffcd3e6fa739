// Package store is the key-value persistence layer behind every named record.
// Each record is a whole JSON document: callers read it, mutate it in memory
// and write it back. Two writers racing on the same key resolve as
// last-write-wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("store: record not found")

// Record keys.
const (
	KeyTokens  = "tokens"
	KeyPrompts = "prompts"

	ProductsPrefix    = "products:"
	GhostwriterPrefix = "ghostwriter:"
	MentorPrefix      = "mentor:"
)

// Store reads and writes whole records by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// ReadJSON decodes the record at key into a T. Any failure (absent key,
// I/O error, corrupt document) yields the zero T; only the log sees it.
func ReadJSON[T any](ctx context.Context, s Store, key string, logger *zap.Logger) T {
	var out T
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("store: read failed, using empty record", zap.String("key", key), zap.Error(err))
		}
		return out
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warn("store: corrupt record, using empty record", zap.String("key", key), zap.Error(err))
		var empty T
		return empty
	}
	return out
}

// WriteJSON encodes v and replaces the record at key.
func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := s.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}
