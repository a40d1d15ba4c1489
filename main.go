package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Korux/SnP-REST-API/controllers"
	"github.com/Korux/SnP-REST-API/database"
	"github.com/Korux/SnP-REST-API/helpers"
	"github.com/Korux/SnP-REST-API/middleware"
	"github.com/Korux/SnP-REST-API/routes"
	"github.com/Korux/SnP-REST-API/store"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️ [main] No .env file found, relying on environment")
	}

	database.InitDB()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080/"
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	users := store.NewUserStore(database.OpenCollection(database.Client, "users"))
	songs := store.NewSongStore(database.OpenCollection(database.Client, "songs"))
	playlists := store.NewPlaylistStore(database.OpenCollection(database.Client, "playlists"))

	relations := controllers.NewRelationManager(playlists, songs, baseURL)

	userController := controllers.NewUserController(users, baseURL)
	songController := controllers.NewSongController(songs, relations, baseURL)
	playlistController := controllers.NewPlaylistController(playlists, users, relations, baseURL)
	authController := controllers.NewAuthController(users, helpers.NewIdentityClient())

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.UserRoute(router, userController, playlistController)
	routes.MusicRoute(router, songController)
	routes.PlaylistRoute(router, playlistController)
	routes.AuthRoute(router, authController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 [main] Server running on port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("❌ [main] Server stopped:", err)
	}
}
