package helpers

import (
	"github.com/Korux/SnP-REST-API/models"
)

// Authorization decisions over already-resolved entities. Subject is the
// verified token subject; "" means anonymous. Existence (404) is decided
// before these run, so a deny here never leaks whether an entity exists
// beyond what the caller already proved.

// CanViewPlaylist: public playlists are readable by anyone, private ones
// only by their owner.
func CanViewPlaylist(p *models.Playlist, subject string) bool {
	if p.Public {
		return true
	}
	return subject != "" && subject == p.Owner
}

// IsPlaylistOwner gates every playlist write and membership change.
func IsPlaylistOwner(p *models.Playlist, subject string) bool {
	return subject != "" && subject == p.Owner
}
