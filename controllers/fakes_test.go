package controllers_test

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Korux/SnP-REST-API/models"
	"github.com/Korux/SnP-REST-API/store"
)

// In-memory stores backing controller and relation-manager tests. Insertion
// order is kept so scans page deterministically.

type fakeSongStore struct {
	songs map[string]models.Song
	order []string
}

func newFakeSongStore() *fakeSongStore {
	return &fakeSongStore{songs: map[string]models.Song{}}
}

func (f *fakeSongStore) Insert(_ context.Context, s models.Song) (string, error) {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	id := s.ID.Hex()
	f.songs[id] = s
	f.order = append(f.order, id)
	return id, nil
}

func (f *fakeSongStore) Get(_ context.Context, id string) (*models.Song, error) {
	s, ok := f.songs[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &s, nil
}

func (f *fakeSongStore) Replace(_ context.Context, id string, s models.Song) error {
	if _, ok := f.songs[id]; !ok {
		return models.ErrNotFound
	}
	oid, _ := primitive.ObjectIDFromHex(id)
	s.ID = oid
	f.songs[id] = s
	return nil
}

func (f *fakeSongStore) Delete(_ context.Context, id string) error {
	if _, ok := f.songs[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.songs, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeSongStore) Scan(_ context.Context, offset int64) ([]models.Song, error) {
	if offset > int64(len(f.order)) {
		return nil, nil
	}
	var out []models.Song
	for _, id := range f.order[offset:] {
		out = append(out, f.songs[id])
	}
	return out, nil
}

func (f *fakeSongStore) ScanAll(ctx context.Context) ([]models.Song, error) {
	return f.Scan(ctx, 0)
}

type fakePlaylistStore struct {
	playlists map[string]models.Playlist
	order     []string
	// replaceErr injects a write failure for one playlist id, for the
	// best-effort cascade tests.
	replaceErr map[string]error
}

func newFakePlaylistStore() *fakePlaylistStore {
	return &fakePlaylistStore{
		playlists:  map[string]models.Playlist{},
		replaceErr: map[string]error{},
	}
}

func (f *fakePlaylistStore) Insert(_ context.Context, p models.Playlist) (string, error) {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	id := p.ID.Hex()
	f.playlists[id] = p
	f.order = append(f.order, id)
	return id, nil
}

func (f *fakePlaylistStore) Get(_ context.Context, id string) (*models.Playlist, error) {
	p, ok := f.playlists[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &p, nil
}

func (f *fakePlaylistStore) Replace(_ context.Context, id string, p models.Playlist) error {
	if err := f.replaceErr[id]; err != nil {
		return err
	}
	if _, ok := f.playlists[id]; !ok {
		return models.ErrNotFound
	}
	oid, _ := primitive.ObjectIDFromHex(id)
	p.ID = oid
	f.playlists[id] = p
	return nil
}

func (f *fakePlaylistStore) Delete(_ context.Context, id string) error {
	if _, ok := f.playlists[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.playlists, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakePlaylistStore) Scan(_ context.Context, filter store.PlaylistFilter, offset int64) ([]models.Playlist, error) {
	var matched []models.Playlist
	for _, id := range f.order {
		p := f.playlists[id]
		if filter.Owner != nil && p.Owner != *filter.Owner {
			continue
		}
		if filter.Public != nil && p.Public != *filter.Public {
			continue
		}
		matched = append(matched, p)
	}
	if offset > int64(len(matched)) {
		return nil, nil
	}
	return matched[offset:], nil
}

func (f *fakePlaylistStore) ScanAll(ctx context.Context) ([]models.Playlist, error) {
	return f.Scan(ctx, store.PlaylistFilter{}, 0)
}

type fakeUserStore struct {
	users map[string]models.User
	order []string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) Insert(_ context.Context, u models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.UID] = u
	f.order = append(f.order, u.UID)
	return nil
}

func (f *fakeUserStore) GetByUID(_ context.Context, uid string) (*models.User, error) {
	u, ok := f.users[uid]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) Scan(_ context.Context, offset, limit int64) ([]models.User, error) {
	if offset > int64(len(f.order)) {
		return nil, nil
	}
	var out []models.User
	for _, uid := range f.order[offset:] {
		if int64(len(out)) == limit {
			break
		}
		out = append(out, f.users[uid])
	}
	return out, nil
}
