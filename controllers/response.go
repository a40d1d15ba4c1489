package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Korux/SnP-REST-API/models"
)

// Response messages, shared by every endpoint that can produce them.
const (
	msgSongNotFound      = "No song with this song_id exists"
	msgPlaylistNotFound  = "No playlist with this playlist_id exists"
	msgUserNotFound      = "No user with this user_id exists"
	msgPairNotFound      = "The specified playlist and/or song does not exist"
	msgNotOwner          = "You do not own this playlist"
	msgNoPermission      = "You do not have permission to view this playlist"
	msgSongExists        = "Song is already in the database"
	msgSongInPlaylist    = "The song is already in this playlist"
	msgSongNotInPlaylist = "The song is not in this playlist"
	msgBadAttrCount      = "Number of attributes is invalid"
	msgBadAttrValue      = "One or more of the required attributes is invalid"
	msgNotAcceptable     = "Not Acceptable"
	msgServerError       = "Unknown server error"
)

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"Error": msg})
}

// acceptsJSON runs the Accept check for single-entity reads, where 404/403
// take precedence over 406 and the check therefore cannot be middleware.
func acceptsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEJSON) != ""
}

// bindBody decodes a request body into a raw JSON object so the validator
// can count attributes. Bodies that are not JSON objects fail as invalid
// attribute values.
func bindBody(c *gin.Context) (map[string]any, bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, msgBadAttrValue)
		return nil, false
	}
	return body, true
}

func respondValidation(c *gin.Context, err error) {
	if errors.Is(err, models.ErrInvalidAttributeCount) {
		respondError(c, http.StatusBadRequest, msgBadAttrCount)
		return
	}
	respondError(c, http.StatusBadRequest, msgBadAttrValue)
}
