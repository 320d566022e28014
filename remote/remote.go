// Package remote implements the habit sync service client: an opaque
// per-user document store with last-write-wins semantics.
//
// The package deals in serialized documents only; interpreting the bytes
// is the caller's business. A session file next to the habit data holds
// the signed-in identity and its bearer token.
package remote

import (
	"context"
	"time"
)

// Store is a remote document store keyed by user identity. An upsert from
// either side replaces the whole stored document, there is no field level
// merge.
type Store interface {
	// Fetch returns the stored document of a user and its last update
	// time, or ok=false when the user has no document yet.
	Fetch(ctx context.Context, userID string) (state []byte, updatedAt time.Time, ok bool, err error)
	// Upsert stores the document of a user, replacing any previous one.
	Upsert(ctx context.Context, userID string, state []byte, updatedAt time.Time) error
}
