// Package kv implements the durable key/value medium backing the record
// store: each named collection is one key holding a JSON blob, mirroring
// the per-key layout of the storage it replaces.
package kv

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
