// Package session keeps finished runs addressable by ID.
package session

import "context"

type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	// List returns stored values in the order their IDs were first put.
	List(ctx context.Context) ([]T, error)
	NewID() string
}
