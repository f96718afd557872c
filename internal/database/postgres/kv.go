// Package postgres implements the key/value store on a postgres table.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SpinSurvive_Go/internal/store"
)

// KVStore implements store.Store on the kv_store table
type KVStore struct {
	pool      *pgxpool.Pool
	txManager trm.Manager
	getter    *trmpgx.CtxGetter
	ownsPool  bool
}

// NewKVStore wraps a pool. Closing the store leaves the pool open.
func NewKVStore(pool *pgxpool.Pool) (*KVStore, error) {
	m, err := manager.New(trmpgx.NewDefaultFactory(pool))
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction manager: %w", err)
	}
	return &KVStore{
		pool:      pool,
		txManager: m,
		getter:    trmpgx.DefaultCtxGetter,
	}, nil
}

// OwnPool makes Close also close the underlying pool
func (s *KVStore) OwnPool() *KVStore {
	s.ownsPool = true
	return s
}

func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	query := sq.Select(colValue).
		From(tableKVStore).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", fmt.Errorf(ErrMsgBuildQuery, err)
	}

	var value string
	err = s.getter.DefaultTrOrDB(ctx, s.pool).QueryRow(ctx, sqlStr, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", store.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf(ErrMsgGetKey, key, err)
	}
	return value, nil
}

// SetMany upserts every pair inside one transaction, in key order
func (s *KVStore) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, k := range keys {
			if err := s.upsert(txCtx, k, values[k]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf(ErrMsgTxFailed, err)
	}
	return nil
}

func (s *KVStore) upsert(ctx context.Context, key, value string) error {
	query := sq.Insert(tableKVStore).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, value, sq.Expr("NOW()")).
		Suffix(upsertKVSuffix).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf(ErrMsgBuildQuery, err)
	}

	if _, err := s.getter.DefaultTrOrDB(ctx, s.pool).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf(ErrMsgUpsertKey, key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query := sq.Delete(tableKVStore).
		Where(sq.Eq{colKey: keys}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf(ErrMsgBuildQuery, err)
	}

	if _, err := s.getter.DefaultTrOrDB(ctx, s.pool).Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf(ErrMsgDeleteKeys, err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf(ErrMsgPingFailed, err)
	}
	return nil
}

func (s *KVStore) Close() error {
	if s.ownsPool {
		s.pool.Close()
	}
	return nil
}

var _ store.Store = (*KVStore)(nil)
