package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/Korux/SnP-REST-API/controllers"
	"github.com/Korux/SnP-REST-API/middleware"
)

func PlaylistRoute(router *gin.Engine, playlist *controller.PlaylistController) {
	// Listing and reads serve both anonymous (public view) and
	// authenticated (owner view) callers.
	router.GET("/playlists", middleware.OptionalAuthentication(), middleware.RequireJSONAccept(), playlist.GetPlaylists())
	router.GET("/playlists/:playlistid", middleware.OptionalAuthentication(), playlist.GetPlaylistByID())

	// Writes require a verified subject.
	playlistGroup := router.Group("/playlists")
	playlistGroup.Use(middleware.Authentication())
	{
		playlistGroup.POST("", middleware.RequireJSONBody(), playlist.CreatePlaylist())
		playlistGroup.PUT("/:playlistid", middleware.RequireJSONBody(), playlist.ReplacePlaylist())
		playlistGroup.PATCH("/:playlistid", playlist.PatchPlaylist())
		playlistGroup.DELETE("/:playlistid", playlist.DeletePlaylist())

		playlistGroup.PUT("/:playlistid/songs/:songid", playlist.AddSongToPlaylist())
		playlistGroup.DELETE("/:playlistid/songs/:songid", playlist.RemoveSongFromPlaylist())
	}
}
