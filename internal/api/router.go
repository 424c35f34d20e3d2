package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Fosberg-codex/AI-Models-Base/internal/api/v1/ai_model"
	"github.com/Fosberg-codex/AI-Models-Base/internal/middleware"
	"github.com/Fosberg-codex/AI-Models-Base/internal/utils"
)

func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.NewSuccessResponse("ok", nil))
	})

	// API v1
	v1 := router.Group("/api/v1")
	{
		ai_model.RegisterRoutes(v1)
	}

	return router
}
