package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Korux/SnP-REST-API/helpers"
	"github.com/Korux/SnP-REST-API/models"
	"github.com/Korux/SnP-REST-API/store"
)

type SongController struct {
	songs     store.SongStore
	relations *RelationManager
	baseURL   string
}

func NewSongController(songs store.SongStore, relations *RelationManager, baseURL string) *SongController {
	return &SongController{songs: songs, relations: relations, baseURL: baseURL}
}

func applySongValues(song *models.Song, values map[string]any) {
	for key, v := range values {
		switch key {
		case "name":
			song.Name = v.(string)
		case "artist":
			song.Artist = v.(string)
		case "length":
			song.Length = v.(float64)
		case "bpm":
			song.BPM = v.(float64)
		case "vocals":
			song.Vocals = v.([]string)
		case "genres":
			song.Genres = v.([]string)
		}
	}
}

// -------------------- CREATE SONG --------------------
func (sc *SongController) CreateSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := bindBody(c)
		if !ok {
			return
		}

		values, err := helpers.ValidateFull(helpers.SongSchema, body)
		if err != nil {
			respondValidation(c, err)
			return
		}

		var song models.Song
		applySongValues(&song, values)

		ctx := c.Request.Context()
		if err := sc.relations.CheckUnique(ctx, song.Name, song.Artist, ""); err != nil {
			if IsConflict(err) {
				respondError(c, http.StatusForbidden, msgSongExists)
				return
			}
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		id, err := sc.songs.Insert(ctx, song)
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}
		song.ID, _ = primitive.ObjectIDFromHex(id)

		c.JSON(http.StatusCreated, song.View(sc.baseURL))
	}
}

// -------------------- LIST SONGS --------------------
func (sc *SongController) GetAllSongs() gin.HandlerFunc {
	return func(c *gin.Context) {
		offset := helpers.PageOffset(c.Query("page"))

		songs, err := sc.songs.Scan(c.Request.Context(), offset)
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		page, next, total := helpers.Paginate(songs, offset, sc.baseURL+"songs")
		views := make([]models.SongView, 0, len(page))
		for _, s := range page {
			views = append(views, s.View(sc.baseURL))
		}

		c.JSON(http.StatusOK, models.SongListView{Total: total, Songs: views, Next: next})
	}
}

// -------------------- GET SONG --------------------
func (sc *SongController) GetSongByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		song, err := sc.songs.Get(c.Request.Context(), c.Param("songid"))
		if errors.Is(err, models.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgSongNotFound)
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		if !acceptsJSON(c) {
			respondError(c, http.StatusNotAcceptable, msgNotAcceptable)
			return
		}
		c.JSON(http.StatusOK, song.View(sc.baseURL))
	}
}

// -------------------- REPLACE SONG --------------------
func (sc *SongController) ReplaceSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := bindBody(c)
		if !ok {
			return
		}

		values, err := helpers.ValidateFull(helpers.SongSchema, body)
		if err != nil {
			respondValidation(c, err)
			return
		}

		ctx := c.Request.Context()
		id := c.Param("songid")

		song, err := sc.songs.Get(ctx, id)
		if errors.Is(err, models.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgSongNotFound)
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		applySongValues(song, values)

		if err := sc.relations.CheckUnique(ctx, song.Name, song.Artist, id); err != nil {
			if IsConflict(err) {
				respondError(c, http.StatusForbidden, msgSongExists)
				return
			}
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		if err := sc.songs.Replace(ctx, id, *song); err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}
		c.JSON(http.StatusOK, song.View(sc.baseURL))
	}
}

// -------------------- PATCH SONG --------------------
func (sc *SongController) PatchSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := bindBody(c)
		if !ok {
			return
		}

		values, err := helpers.ValidatePartial(helpers.SongSchema, body)
		if err != nil {
			respondValidation(c, err)
			return
		}

		ctx := c.Request.Context()
		id := c.Param("songid")

		song, err := sc.songs.Get(ctx, id)
		if errors.Is(err, models.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgSongNotFound)
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		applySongValues(song, values)

		// A patch that touches the song's identity must not collide with
		// another song's (name, artist).
		_, nameChanged := values["name"]
		_, artistChanged := values["artist"]
		if nameChanged || artistChanged {
			if err := sc.relations.CheckUnique(ctx, song.Name, song.Artist, id); err != nil {
				if IsConflict(err) {
					respondError(c, http.StatusForbidden, msgSongExists)
					return
				}
				respondError(c, http.StatusInternalServerError, msgServerError)
				return
			}
		}

		if err := sc.songs.Replace(ctx, id, *song); err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}
		c.JSON(http.StatusOK, song.View(sc.baseURL))
	}
}

// -------------------- DELETE SONG --------------------
func (sc *SongController) DeleteSong() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("songid")

		if _, err := sc.songs.Get(ctx, id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				respondError(c, http.StatusNotFound, msgSongNotFound)
				return
			}
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		if err := sc.relations.CascadeSongDelete(ctx, id); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				respondError(c, http.StatusNotFound, msgSongNotFound)
				return
			}
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
