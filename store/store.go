// Package store wraps the document database behind a small adapter so
// controllers never touch a driver handle directly. Documents live in
// named collections and are addressed by store-assigned ids returned as
// hex strings.
package store

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable is returned by every operation when no database
	// connection is configured. Callers treat it as fatal for the
	// request.
	ErrUnavailable = errors.New("document store is not available")

	// ErrNotFound is returned by FindOne when no document matches.
	ErrNotFound = errors.New("document not found")
)

// Store is the adapter contract shared by the Mongo-backed store and
// the in-memory store.
type Store interface {
	// Insert persists doc into the named collection and returns the
	// store-assigned id as a hex string.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// Find decodes up to limit matching documents into out, which must
	// be a pointer to a slice. A limit <= 0 means no limit.
	Find(ctx context.Context, collection string, filter any, limit int64, out any) error

	// FindOne decodes the first matching document into out, or returns
	// ErrNotFound.
	FindOne(ctx context.Context, collection string, filter any, out any) error

	// UpdateOne applies a $set-style update to the first matching
	// document.
	UpdateOne(ctx context.Context, collection string, filter any, update any) error

	// Collections lists collection names, for diagnostics.
	Collections(ctx context.Context) ([]string, error)

	// Name reports the database name.
	Name() string
}
