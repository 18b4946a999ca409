// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/days-together/internal/logger"
)

const kvTable = "kv"

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type keyValueRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyValueRepository returns a SQLite-backed [KeyValueRepository].
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	return &keyValueRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := sqlite.Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w: %w", ErrStorageRead, ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", false, fmt.Errorf("%w: get %q: %w", ErrStorageRead, key, err)
	}

	return value, true, nil
}

func (r *keyValueRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := r.upsertQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorageWrite, ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Set").
			Str("key", key).
			Msg("failed to write value")
		return fmt.Errorf("%w: set %q: %w", ErrStorageWrite, key, err)
	}

	return nil
}

func (r *keyValueRepository) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.SetMany").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w: %w", ErrStorageWrite, ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// deterministic statement order
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		query, args, err := r.upsertQuery(key, values[key])
		if err != nil {
			return fmt.Errorf("%w: %w: %w", ErrStorageWrite, ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "keyValueRepository.SetMany").
				Str("key", key).
				Msg("failed to write value in transaction")
			return fmt.Errorf("%w: set %q: %w", ErrStorageWrite, key, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.SetMany").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w: %w", ErrStorageWrite, ErrCommitingTransaction, err)
	}

	return nil
}

func (r *keyValueRepository) Delete(ctx context.Context, key string) error {
	query, args, err := sqlite.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStorageWrite, ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Delete").
			Str("key", key).
			Msg("failed to delete value")
		return fmt.Errorf("%w: delete %q: %w", ErrStorageWrite, key, err)
	}

	return nil
}

func (r *keyValueRepository) List(ctx context.Context, prefix string) (map[string]string, error) {
	builder := sqlite.Select("key", "value").From(kvTable).OrderBy("key")
	if prefix != "" {
		builder = builder.Where(sq.Expr("substr(key, 1, ?) = ?", len(prefix), prefix))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStorageRead, ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.List").
			Str("prefix", prefix).
			Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: list %q: %w", ErrStorageRead, prefix, err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			r.logger.Err(err).Str("func", "keyValueRepository.List").Msg("failed to scan kv row")
			return nil, fmt.Errorf("%w: scan: %w", ErrStorageRead, err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: iterate: %w", ErrStorageRead, err)
	}

	return result, nil
}

func (r *keyValueRepository) upsertQuery(key, value string) (string, []any, error) {
	return sqlite.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, r.now().UnixMilli()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}
