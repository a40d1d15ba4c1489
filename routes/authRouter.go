package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	controller "github.com/Korux/SnP-REST-API/controllers"
)

func AuthRoute(router *gin.Engine, auth *controller.AuthController) {
	router.POST("/login", auth.Login())
	router.POST("/signup", auth.Signup())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "SnP REST API")
	})
}
