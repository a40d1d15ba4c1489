package controllers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Korux/SnP-REST-API/controllers"
	"github.com/Korux/SnP-REST-API/models"
)

const testBaseURL = "https://snp.example.com/"

func seedRelations(t *testing.T) (*controllers.RelationManager, *fakeSongStore, *fakePlaylistStore) {
	t.Helper()
	songs := newFakeSongStore()
	playlists := newFakePlaylistStore()
	return controllers.NewRelationManager(playlists, songs, testBaseURL), songs, playlists
}

func seedSong(t *testing.T, songs *fakeSongStore, name, artist string) string {
	t.Helper()
	id, err := songs.Insert(context.Background(), models.Song{
		Name: name, Artist: artist, Length: 180, BPM: 120,
		Vocals: []string{}, Genres: []string{},
	})
	if err != nil {
		t.Fatalf("seed song: %v", err)
	}
	return id
}

func seedPlaylist(t *testing.T, playlists *fakePlaylistStore, owner string, public bool, songIDs ...string) string {
	t.Helper()
	p := models.Playlist{
		Name: "mix", Description: "test mix", Public: public, Owner: owner,
		Songs: []models.SongRef{},
	}
	for _, id := range songIDs {
		p.Songs = append(p.Songs, models.SongRef{ID: id, Self: testBaseURL + "songs/" + id})
	}
	p.NumSongs = len(p.Songs)
	id, err := playlists.Insert(context.Background(), p)
	if err != nil {
		t.Fatalf("seed playlist: %v", err)
	}
	return id
}

func mustGetPlaylist(t *testing.T, playlists *fakePlaylistStore, id string) *models.Playlist {
	t.Helper()
	p, err := playlists.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get playlist: %v", err)
	}
	return p
}

func TestAddSongAppendsRefAndCount(t *testing.T) {
	rm, songs, playlists := seedRelations(t)
	sid := seedSong(t, songs, "Aerodynamic", "Daft Punk")
	pid := seedPlaylist(t, playlists, "auth0|u1", true)

	if err := rm.AddSong(context.Background(), pid, sid, "auth0|u1"); err != nil {
		t.Fatalf("AddSong: %v", err)
	}

	p := mustGetPlaylist(t, playlists, pid)
	if p.NumSongs != 1 || len(p.Songs) != 1 {
		t.Fatalf("numsongs=%d len(songs)=%d, want 1/1", p.NumSongs, len(p.Songs))
	}
	if p.Songs[0].ID != sid {
		t.Errorf("ref id = %q, want %q", p.Songs[0].ID, sid)
	}
	if want := testBaseURL + "songs/" + sid; p.Songs[0].Self != want {
		t.Errorf("ref self = %q, want %q", p.Songs[0].Self, want)
	}
}

func TestAddSongMissingEntities(t *testing.T) {
	rm, songs, playlists := seedRelations(t)
	sid := seedSong(t, songs, "One More Time", "Daft Punk")
	pid := seedPlaylist(t, playlists, "auth0|u1", true)

	cases := []struct {
		name     string
		playlist string
		song     string
	}{
		{"missing playlist", "ffffffffffffffffffffffff", sid},
		{"missing song", pid, "ffffffffffffffffffffffff"},
		{"missing both", "ffffffffffffffffffffffff", "eeeeeeeeeeeeeeeeeeeeeeee"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := rm.AddSong(context.Background(), tc.playlist, tc.song, "auth0|u1")
			if !errors.Is(err, models.ErrNotFound) {
				t.Errorf("AddSong = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestAddSongNotOwner(t *testing.T) {
	rm, songs, playlists := seedRelations(t)
	sid := seedSong(t, songs, "Digital Love", "Daft Punk")
	pid := seedPlaylist(t, playlists, "auth0|u1", true)

	err := rm.AddSong(context.Background(), pid, sid, "auth0|u2")
	if !errors.Is(err, models.ErrNotOwner) {
		t.Fatalf("AddSong = %v, want ErrNotOwner", err)
	}
	if p := mustGetPlaylist(t, playlists, pid); p.NumSongs != 0 {
		t.Errorf("playlist mutated by denied add")
	}
}

func TestAddSongDuplicateLeavesPlaylistUnchanged(t *testing.T) {
	rm, songs, playlists := seedRelations(t)
	sid := seedSong(t, songs, "Harder Better", "Daft Punk")
	pid := seedPlaylist(t, playlists, "auth0|u1", true, sid)

	err := rm.AddSong(context.Background(), pid, sid, "auth0|u1")
	if !errors.Is(err, models.ErrSongInPlaylist) {
		t.Fatalf("AddSong = %v, want ErrSongInPlaylist", err)
	}

	p := mustGetPlaylist(t, playlists, pid)
	if p.NumSongs != 1 || len(p.Songs) != 1 {
		t.Errorf("numsongs=%d len(songs)=%d, want 1/1 (unchanged)", p.NumSongs, len(p.Songs))
	}
}

func TestRemoveSongDropsRefAndCount(t *testing.T) {
	rm, songs, playlists := seedRelations(t)
	sid1 := seedSong(t, songs, "Voyager", "Daft Punk")
	sid2 := seedSong(t, songs, "Veridis Quo", "Daft Punk")
	pid := seedPlaylist(t, playlists, "auth0|u1", false, sid1, sid2)

	if err := rm.RemoveSong(context.Background(), pid, sid1, "auth0|u1"); err != nil {
		t.Fatalf("RemoveSong: %v", err)
	}

	p := mustGetPlaylist(t, playlists, pid)
	if p.NumSongs != 1 || len(p.Songs) != 1 {
		t.Fatalf("numsongs=%d len(songs)=%d, want 1/1", p.NumSongs, len(p.Songs))
	}
	if p.Songs[0].ID != sid2 {
		t.Errorf("wrong song removed: remaining %q", p.Songs[0].ID)
	}
}

func TestRemoveSongAbsentLeavesPlaylistUnchanged(t *testing.T) {
	rm, songs, playlists := seedRelations(t)
	sid := seedSong(t, songs, "Face To Face", "Daft Punk")
	other := seedSong(t, songs, "Short Circuit", "Daft Punk")
	pid := seedPlaylist(t, playlists, "auth0|u1", true, sid)

	err := rm.RemoveSong(context.Background(), pid, other, "auth0|u1")
	if !errors.Is(err, models.ErrSongNotInPlaylist) {
		t.Fatalf("RemoveSong = %v, want ErrSongNotInPlaylist", err)
	}

	p := mustGetPlaylist(t, playlists, pid)
	if p.NumSongs != 1 || len(p.Songs) != 1 || p.Songs[0].ID != sid {
		t.Errorf("playlist mutated by rejected remove")
	}
}

func TestCascadeClearsEveryReferencingPlaylist(t *testing.T) {
	rm, songs, playlists := seedRelations(t)
	doomed := seedSong(t, songs, "Superheroes", "Daft Punk")
	kept := seedSong(t, songs, "High Life", "Daft Punk")

	p1 := seedPlaylist(t, playlists, "auth0|u1", true, doomed, kept)
	p2 := seedPlaylist(t, playlists, "auth0|u2", false, doomed)
	p3 := seedPlaylist(t, playlists, "auth0|u3", true, kept)

	if err := rm.CascadeSongDelete(context.Background(), doomed); err != nil {
		t.Fatalf("CascadeSongDelete: %v", err)
	}

	if _, err := songs.Get(context.Background(), doomed); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("song still present after cascade")
	}

	for _, pid := range []string{p1, p2, p3} {
		p := mustGetPlaylist(t, playlists, pid)
		if p.HasSong(doomed) {
			t.Errorf("playlist %s still references deleted song", pid)
		}
		if p.NumSongs != len(p.Songs) {
			t.Errorf("playlist %s count %d != len %d", pid, p.NumSongs, len(p.Songs))
		}
	}
	if p := mustGetPlaylist(t, playlists, p3); !p.HasSong(kept) {
		t.Errorf("cascade touched an unrelated membership")
	}
}

func TestCascadeIsBestEffort(t *testing.T) {
	rm, songs, playlists := seedRelations(t)
	doomed := seedSong(t, songs, "Emotion", "Daft Punk")

	stuck := seedPlaylist(t, playlists, "auth0|u1", true, doomed)
	fine := seedPlaylist(t, playlists, "auth0|u2", true, doomed)
	playlists.replaceErr[stuck] = errors.New("write timeout")

	if err := rm.CascadeSongDelete(context.Background(), doomed); err != nil {
		t.Fatalf("CascadeSongDelete: %v", err)
	}

	// The song is gone and the healthy playlist was rewritten; the failed
	// one keeps its stale reference. That is the documented behavior.
	if _, err := songs.Get(context.Background(), doomed); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("song survived a partially failed cascade")
	}
	if p := mustGetPlaylist(t, playlists, fine); p.HasSong(doomed) {
		t.Errorf("healthy playlist was not rewritten")
	}
	if p := mustGetPlaylist(t, playlists, stuck); !p.HasSong(doomed) {
		t.Errorf("failed playlist should keep the stale reference")
	}
}

func TestCheckUnique(t *testing.T) {
	rm, songs, _ := seedRelations(t)
	existing := seedSong(t, songs, "Around The World", "Daft Punk")

	if err := rm.CheckUnique(context.Background(), "Around The World", "Daft Punk", ""); !errors.Is(err, models.ErrSongExists) {
		t.Errorf("duplicate pair: got %v, want ErrSongExists", err)
	}
	if err := rm.CheckUnique(context.Background(), "Around The World", "ATC", ""); err != nil {
		t.Errorf("same name, different artist: got %v, want nil", err)
	}
	if err := rm.CheckUnique(context.Background(), "Around The World", "Daft Punk", existing); err != nil {
		t.Errorf("self replace: got %v, want nil", err)
	}
}
