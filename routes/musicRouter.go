package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/Korux/SnP-REST-API/controllers"
	"github.com/Korux/SnP-REST-API/middleware"
)

func MusicRoute(router *gin.Engine, song *controller.SongController) {
	// Public
	router.GET("/songs", middleware.RequireJSONAccept(), song.GetAllSongs())
	router.GET("/songs/:songid", song.GetSongByID())

	// Protected
	songGroup := router.Group("/songs")
	songGroup.Use(middleware.Authentication())
	{
		songGroup.POST("", middleware.RequireJSONBody(), song.CreateSong())
		songGroup.PUT("/:songid", middleware.RequireJSONBody(), song.ReplaceSong())
		songGroup.PATCH("/:songid", song.PatchSong())
		songGroup.DELETE("/:songid", song.DeleteSong())
	}
}
