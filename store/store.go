// Package store is the gateway to the document store. Each entity gets its
// own interface so controllers can be exercised against in-memory fakes.
//
// The store promises per-document atomicity and nothing more: there are no
// multi-document transactions, and scan order is whatever the store returns.
package store

import (
	"context"

	"github.com/Korux/SnP-REST-API/models"
)

// PlaylistFilter narrows playlist scans. Nil fields are not applied.
type PlaylistFilter struct {
	Owner  *string
	Public *bool
}

type UserStore interface {
	Insert(ctx context.Context, u models.User) error
	// GetByUID resolves a user by the identity provider's subject claim.
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	// Scan returns up to limit users starting at offset.
	Scan(ctx context.Context, offset, limit int64) ([]models.User, error)
}

type SongStore interface {
	Insert(ctx context.Context, s models.Song) (string, error)
	Get(ctx context.Context, id string) (*models.Song, error)
	// Replace overwrites the whole document. Last writer wins.
	Replace(ctx context.Context, id string, s models.Song) error
	Delete(ctx context.Context, id string) error
	// Scan returns all songs from offset onward, with no limit.
	Scan(ctx context.Context, offset int64) ([]models.Song, error)
	// ScanAll backs the (name, artist) uniqueness check.
	ScanAll(ctx context.Context) ([]models.Song, error)
}

type PlaylistStore interface {
	Insert(ctx context.Context, p models.Playlist) (string, error)
	Get(ctx context.Context, id string) (*models.Playlist, error)
	// Replace overwrites the whole document. Last writer wins; a concurrent
	// edit between a Get and this Replace is silently lost.
	Replace(ctx context.Context, id string, p models.Playlist) error
	Delete(ctx context.Context, id string) error
	// Scan returns all matching playlists from offset onward, with no limit.
	Scan(ctx context.Context, f PlaylistFilter, offset int64) ([]models.Playlist, error)
	// ScanAll backs the song-deletion cascade.
	ScanAll(ctx context.Context) ([]models.Playlist, error)
}
