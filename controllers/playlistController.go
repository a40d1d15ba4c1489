package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Korux/SnP-REST-API/helpers"
	"github.com/Korux/SnP-REST-API/middleware"
	"github.com/Korux/SnP-REST-API/models"
	"github.com/Korux/SnP-REST-API/store"
)

type PlaylistController struct {
	playlists store.PlaylistStore
	users     store.UserStore
	relations *RelationManager
	baseURL   string
}

func NewPlaylistController(playlists store.PlaylistStore, users store.UserStore, relations *RelationManager, baseURL string) *PlaylistController {
	return &PlaylistController{playlists: playlists, users: users, relations: relations, baseURL: baseURL}
}

func applyPlaylistValues(playlist *models.Playlist, values map[string]any) {
	for key, v := range values {
		switch key {
		case "name":
			playlist.Name = v.(string)
		case "description":
			playlist.Description = v.(string)
		case "public":
			playlist.Public = v.(bool)
		}
	}
}

// -------------------- CREATE PLAYLIST --------------------
func (pc *PlaylistController) CreatePlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := bindBody(c)
		if !ok {
			return
		}

		values, err := helpers.ValidateFull(helpers.PlaylistSchema, body)
		if err != nil {
			respondValidation(c, err)
			return
		}

		playlist := models.Playlist{
			Songs: []models.SongRef{},
			Owner: middleware.Subject(c),
		}
		applyPlaylistValues(&playlist, values)

		id, err := pc.playlists.Insert(c.Request.Context(), playlist)
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}
		playlist.ID, _ = primitive.ObjectIDFromHex(id)

		c.JSON(http.StatusCreated, playlist.View(pc.baseURL))
	}
}

// -------------------- LIST PLAYLISTS --------------------
// Authenticated callers get their own playlists; anonymous callers get the
// public ones. Same route, same paging.
func (pc *PlaylistController) GetPlaylists() gin.HandlerFunc {
	return func(c *gin.Context) {
		offset := helpers.PageOffset(c.Query("page"))

		var filter store.PlaylistFilter
		if subject := middleware.Subject(c); subject != "" {
			filter.Owner = &subject
		} else {
			public := true
			filter.Public = &public
		}

		playlists, err := pc.playlists.Scan(c.Request.Context(), filter, offset)
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		page, next, total := helpers.Paginate(playlists, offset, pc.baseURL+"playlists")
		views := make([]models.PlaylistView, 0, len(page))
		for _, p := range page {
			views = append(views, p.View(pc.baseURL))
		}

		c.JSON(http.StatusOK, models.PlaylistListView{Total: total, Playlists: views, Next: next})
	}
}

// -------------------- LIST A USER'S PUBLIC PLAYLISTS --------------------
func (pc *PlaylistController) GetUserPlaylists() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		uid := c.Param("userid")

		if _, err := pc.users.GetByUID(ctx, uid); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				respondError(c, http.StatusNotFound, msgUserNotFound)
				return
			}
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		offset := helpers.PageOffset(c.Query("page"))
		public := true
		filter := store.PlaylistFilter{Owner: &uid, Public: &public}

		playlists, err := pc.playlists.Scan(ctx, filter, offset)
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		page, next, total := helpers.Paginate(playlists, offset, pc.baseURL+"users/"+uid+"/playlists")
		views := make([]models.PlaylistView, 0, len(page))
		for _, p := range page {
			views = append(views, p.View(pc.baseURL))
		}

		c.JSON(http.StatusOK, models.PlaylistListView{Total: total, Playlists: views, Next: next})
	}
}

// -------------------- GET PLAYLIST --------------------
func (pc *PlaylistController) GetPlaylistByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		playlist, err := pc.playlists.Get(c.Request.Context(), c.Param("playlistid"))
		if errors.Is(err, models.ErrNotFound) {
			respondError(c, http.StatusNotFound, msgPlaylistNotFound)
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}

		if !helpers.CanViewPlaylist(playlist, middleware.Subject(c)) {
			respondError(c, http.StatusForbidden, msgNoPermission)
			return
		}

		if !acceptsJSON(c) {
			respondError(c, http.StatusNotAcceptable, msgNotAcceptable)
			return
		}
		c.JSON(http.StatusOK, playlist.View(pc.baseURL))
	}
}

// fetchOwned resolves a playlist and checks write access in the order the
// contract fixes: absent is 404, not-owner is 403.
func (pc *PlaylistController) fetchOwned(c *gin.Context) (*models.Playlist, bool) {
	playlist, err := pc.playlists.Get(c.Request.Context(), c.Param("playlistid"))
	if errors.Is(err, models.ErrNotFound) {
		respondError(c, http.StatusNotFound, msgPlaylistNotFound)
		return nil, false
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, msgServerError)
		return nil, false
	}

	if !helpers.IsPlaylistOwner(playlist, middleware.Subject(c)) {
		respondError(c, http.StatusForbidden, msgNotOwner)
		return nil, false
	}
	return playlist, true
}

// -------------------- REPLACE PLAYLIST --------------------
// Replace covers the caller-supplied attributes only: the song list, count
// and owner ride along unchanged.
func (pc *PlaylistController) ReplacePlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := bindBody(c)
		if !ok {
			return
		}

		values, err := helpers.ValidateFull(helpers.PlaylistSchema, body)
		if err != nil {
			respondValidation(c, err)
			return
		}

		playlist, ok := pc.fetchOwned(c)
		if !ok {
			return
		}
		applyPlaylistValues(playlist, values)

		if err := pc.playlists.Replace(c.Request.Context(), c.Param("playlistid"), *playlist); err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}
		c.JSON(http.StatusOK, playlist.View(pc.baseURL))
	}
}

// -------------------- PATCH PLAYLIST --------------------
func (pc *PlaylistController) PatchPlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := bindBody(c)
		if !ok {
			return
		}

		values, err := helpers.ValidatePartial(helpers.PlaylistSchema, body)
		if err != nil {
			respondValidation(c, err)
			return
		}

		playlist, ok := pc.fetchOwned(c)
		if !ok {
			return
		}
		applyPlaylistValues(playlist, values)

		if err := pc.playlists.Replace(c.Request.Context(), c.Param("playlistid"), *playlist); err != nil {
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}
		c.JSON(http.StatusOK, playlist.View(pc.baseURL))
	}
}

// -------------------- DELETE PLAYLIST --------------------
func (pc *PlaylistController) DeletePlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := pc.fetchOwned(c); !ok {
			return
		}

		if err := pc.playlists.Delete(c.Request.Context(), c.Param("playlistid")); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				respondError(c, http.StatusNotFound, msgPlaylistNotFound)
				return
			}
			respondError(c, http.StatusInternalServerError, msgServerError)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// -------------------- ADD SONG TO PLAYLIST --------------------
func (pc *PlaylistController) AddSongToPlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := pc.relations.AddSong(c.Request.Context(), c.Param("playlistid"), c.Param("songid"), middleware.Subject(c))
		pc.respondRelation(c, err)
	}
}

// -------------------- REMOVE SONG FROM PLAYLIST --------------------
func (pc *PlaylistController) RemoveSongFromPlaylist() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := pc.relations.RemoveSong(c.Request.Context(), c.Param("playlistid"), c.Param("songid"), middleware.Subject(c))
		pc.respondRelation(c, err)
	}
}

func (pc *PlaylistController) respondRelation(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, models.ErrNotFound):
		respondError(c, http.StatusNotFound, msgPairNotFound)
	case errors.Is(err, models.ErrNotOwner):
		respondError(c, http.StatusForbidden, msgNotOwner)
	case errors.Is(err, models.ErrSongInPlaylist):
		respondError(c, http.StatusForbidden, msgSongInPlaylist)
	case errors.Is(err, models.ErrSongNotInPlaylist):
		respondError(c, http.StatusForbidden, msgSongNotInPlaylist)
	default:
		respondError(c, http.StatusInternalServerError, msgServerError)
	}
}
