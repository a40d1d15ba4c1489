package models

import "errors"

// Classification errors shared across store, helpers and controllers.
// Controllers translate these into status codes and response messages;
// note that membership and uniqueness conflicts surface as 403 in this
// API, not 409.
var (
	ErrNotFound              = errors.New("entity does not exist")
	ErrNotOwner              = errors.New("caller does not own this playlist")
	ErrNoPermission          = errors.New("caller may not view this playlist")
	ErrSongExists            = errors.New("song is already in the database")
	ErrSongInPlaylist        = errors.New("song is already in this playlist")
	ErrSongNotInPlaylist     = errors.New("song is not in this playlist")
	ErrInvalidAttributeCount = errors.New("number of attributes is invalid")
	ErrInvalidAttributeValue = errors.New("one or more of the required attributes is invalid")
	ErrInvalidToken          = errors.New("jwt missing or invalid")
)
