package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SongRef is the embedded membership entry. There is no join collection;
// a song's presence in a playlist is exactly its presence in Songs.
type SongRef struct {
	ID   string `bson:"id" json:"id"`
	Self string `bson:"self" json:"self"`
}

// Playlist invariants maintained by the relation manager:
// NumSongs == len(Songs), and no song id appears twice in Songs.
// Owner is the creator's subject claim and never changes after creation.
type Playlist struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	NumSongs    int                `bson:"numsongs" json:"numsongs"`
	Songs       []SongRef          `bson:"songs" json:"songs"`
	Public      bool               `bson:"public" json:"public"`
	Owner       string             `bson:"owner" json:"owner"`
}

// HasSong reports membership of a song id.
func (p Playlist) HasSong(songID string) bool {
	for _, ref := range p.Songs {
		if ref.ID == songID {
			return true
		}
	}
	return false
}

type PlaylistView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	NumSongs    int       `json:"numsongs"`
	Songs       []SongRef `json:"songs"`
	Public      bool      `json:"public"`
	Owner       string    `json:"owner"`
	Self        string    `json:"self"`
}

func (p Playlist) View(baseURL string) PlaylistView {
	v := PlaylistView{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		NumSongs:    p.NumSongs,
		Songs:       p.Songs,
		Public:      p.Public,
		Owner:       p.Owner,
		Self:        baseURL + "playlists/" + p.ID.Hex(),
	}
	if v.Songs == nil {
		v.Songs = []SongRef{}
	}
	return v
}

type PlaylistListView struct {
	Total     int64          `json:"total"`
	Playlists []PlaylistView `json:"playlists"`
	Next      string         `json:"next,omitempty"`
}
