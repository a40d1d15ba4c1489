package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Song is global and unowned: any authenticated caller may mutate any song.
// (Name, Artist) pairs are kept unique by a scan at write time, not by an
// index constraint.
type Song struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name   string             `bson:"name" json:"name"`
	Artist string             `bson:"artist" json:"artist"`
	Length float64            `bson:"length" json:"length"`
	BPM    float64            `bson:"bpm" json:"bpm"`
	Vocals []string           `bson:"vocals" json:"vocals"`
	Genres []string           `bson:"genres" json:"genres"`
}

type SongView struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Artist string   `json:"artist"`
	Length float64  `json:"length"`
	BPM    float64  `json:"bpm"`
	Vocals []string `json:"vocals"`
	Genres []string `json:"genres"`
	Self   string   `json:"self"`
}

func (s Song) View(baseURL string) SongView {
	v := SongView{
		ID:     s.ID.Hex(),
		Name:   s.Name,
		Artist: s.Artist,
		Length: s.Length,
		BPM:    s.BPM,
		Vocals: s.Vocals,
		Genres: s.Genres,
		Self:   baseURL + "songs/" + s.ID.Hex(),
	}
	if v.Vocals == nil {
		v.Vocals = []string{}
	}
	if v.Genres == nil {
		v.Genres = []string{}
	}
	return v
}

type SongListView struct {
	Total int64      `json:"total"`
	Songs []SongView `json:"songs"`
	Next  string     `json:"next,omitempty"`
}
