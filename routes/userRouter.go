package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/Korux/SnP-REST-API/controllers"
	"github.com/Korux/SnP-REST-API/middleware"
)

func UserRoute(router *gin.Engine, user *controller.UserController, playlist *controller.PlaylistController) {
	router.GET("/users", middleware.RequireJSONAccept(), user.GetAllUsers())
	router.GET("/users/:userid", user.GetUserByID())
	router.GET("/users/:userid/playlists", middleware.RequireJSONAccept(), playlist.GetUserPlaylists())

	// Users are created by signup and never edited through this surface.
	router.POST("/users", user.MethodNotAllowed())
	router.PUT("/users/:userid", user.MethodNotAllowed())
	router.PATCH("/users/:userid", user.MethodNotAllowed())
	router.DELETE("/users/:userid", user.MethodNotAllowed())
}
