package controllers

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/Korux/SnP-REST-API/helpers"
	"github.com/Korux/SnP-REST-API/models"
	"github.com/Korux/SnP-REST-API/store"
)

// RelationManager keeps the song list embedded in each playlist consistent
// with song existence and membership changes. Consistency is best-effort:
// single playlist documents are written atomically, but nothing spans
// documents, so the cascade can be interrupted half-done and concurrent
// edits to one playlist race last-writer-wins.
type RelationManager struct {
	playlists store.PlaylistStore
	songs     store.SongStore
	baseURL   string
}

func NewRelationManager(playlists store.PlaylistStore, songs store.SongStore, baseURL string) *RelationManager {
	return &RelationManager{playlists: playlists, songs: songs, baseURL: baseURL}
}

// fetchPair resolves the playlist and song concurrently. Either one missing
// collapses to a single ErrNotFound so the caller cannot distinguish which.
func (rm *RelationManager) fetchPair(ctx context.Context, playlistID, songID string) (*models.Playlist, error) {
	var playlist *models.Playlist

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := rm.playlists.Get(gctx, playlistID)
		if err != nil {
			return err
		}
		playlist = p
		return nil
	})
	g.Go(func() error {
		_, err := rm.songs.Get(gctx, songID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return playlist, nil
}

// AddSong appends a song reference to a playlist. The playlist document is
// rewritten whole; an edit that landed between the fetch and this write is
// lost (no version token, by contract).
func (rm *RelationManager) AddSong(ctx context.Context, playlistID, songID, subject string) error {
	playlist, err := rm.fetchPair(ctx, playlistID, songID)
	if err != nil {
		return err
	}

	if !helpers.IsPlaylistOwner(playlist, subject) {
		return models.ErrNotOwner
	}
	if playlist.HasSong(songID) {
		return models.ErrSongInPlaylist
	}

	playlist.Songs = append(playlist.Songs, models.SongRef{
		ID:   songID,
		Self: rm.baseURL + "songs/" + songID,
	})
	playlist.NumSongs = len(playlist.Songs)

	return rm.playlists.Replace(ctx, playlistID, *playlist)
}

// RemoveSong drops a song reference from a playlist.
func (rm *RelationManager) RemoveSong(ctx context.Context, playlistID, songID, subject string) error {
	playlist, err := rm.fetchPair(ctx, playlistID, songID)
	if err != nil {
		return err
	}

	if !helpers.IsPlaylistOwner(playlist, subject) {
		return models.ErrNotOwner
	}
	if !playlist.HasSong(songID) {
		return models.ErrSongNotInPlaylist
	}

	kept := make([]models.SongRef, 0, len(playlist.Songs)-1)
	for _, ref := range playlist.Songs {
		if ref.ID != songID {
			kept = append(kept, ref)
		}
	}
	playlist.Songs = kept
	playlist.NumSongs = len(kept)

	return rm.playlists.Replace(ctx, playlistID, *playlist)
}

// CascadeSongDelete rewrites every playlist referencing the song, then
// deletes the song itself. Each playlist is written independently; a failed
// rewrite is logged and skipped, and the song delete proceeds regardless.
// A crash mid-loop leaves some playlists rewritten and others still holding
// the stale reference — accepted behavior of the store's consistency model.
func (rm *RelationManager) CascadeSongDelete(ctx context.Context, songID string) error {
	playlists, err := rm.playlists.ScanAll(ctx)
	if err != nil {
		return err
	}

	for _, playlist := range playlists {
		if !playlist.HasSong(songID) {
			continue
		}

		kept := make([]models.SongRef, 0, len(playlist.Songs)-1)
		for _, ref := range playlist.Songs {
			if ref.ID != songID {
				kept = append(kept, ref)
			}
		}
		playlist.Songs = kept
		playlist.NumSongs = len(kept)

		if err := rm.playlists.Replace(ctx, playlist.ID.Hex(), playlist); err != nil {
			log.Printf("⚠️ [CascadeSongDelete] playlist %s still references song %s: %v", playlist.ID.Hex(), songID, err)
		}
	}

	return rm.songs.Delete(ctx, songID)
}

// CheckUnique scans every song for another with the same (name, artist).
// excludeID skips the song being replaced so an identity-preserving replace
// succeeds. The scan and the subsequent insert are not atomic: two
// concurrent creates of one pair can both pass — a known gap, kept as-is.
func (rm *RelationManager) CheckUnique(ctx context.Context, name, artist, excludeID string) error {
	songs, err := rm.songs.ScanAll(ctx)
	if err != nil {
		return err
	}

	for _, s := range songs {
		if s.ID.Hex() == excludeID {
			continue
		}
		if s.Name == name && s.Artist == artist {
			return models.ErrSongExists
		}
	}
	return nil
}

// IsConflict reports whether an error is one of the membership/uniqueness
// conflicts, which this API surfaces as 403.
func IsConflict(err error) bool {
	return errors.Is(err, models.ErrSongExists) ||
		errors.Is(err, models.ErrSongInPlaylist) ||
		errors.Is(err, models.ErrSongNotInPlaylist)
}
