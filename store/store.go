// Package store is the key/value JSON persistence layer. Every record
// set the application owns lives under one well-known key as a single
// JSON document; readers always get a typed default back no matter what
// is (or is not) at the key, and writers swallow storage failures so a
// full or unreachable backend never takes the feed down.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

// Storage keys. The version suffix allows a future format change to
// start from a clean key rather than migrating in place.
const (
	KeyRecipes   = "app_recipes:v1"
	KeyFavorites = "favoriteRecipeIds:v1"
	KeyReviews   = "app_reviews:v1"
	KeyLikes     = "app_likes:v1"
	KeyComments  = "app_comments:v1"
	KeyFollows   = "app_follows:v1"
	KeyUsers     = "app_users:v1"
	KeyFilters   = "app_filters:v1"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Store is a flat key/value bucket of JSON documents. Implementations
// are expected to be safe for concurrent use and last-writer-wins; no
// read-modify-write transaction exists.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
}

// ReadJSON loads and decodes the document at key. Missing keys, backend
// errors and corrupt JSON all degrade to fallback.
func ReadJSON[T any](ctx context.Context, s Store, key string, fallback T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("store: read %s failed: %v", key, err)
		}
		return fallback
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("store: corrupt JSON at %s: %v", key, err)
		return fallback
	}
	return out
}

// WriteJSON encodes and stores value at key, best effort. Serialization
// or backend failures are logged and dropped; the session continues on
// in-memory state.
func WriteJSON(ctx context.Context, s Store, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: marshal %s failed: %v", key, err)
		return
	}
	if err := s.Set(ctx, key, raw); err != nil {
		log.Printf("store: write %s failed: %v", key, err)
	}
}
