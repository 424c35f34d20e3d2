package ai_model

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	modelGroup := router.Group("/models")
	{
		modelGroup.POST("", CreateModel)
		modelGroup.GET("", ListModels)
		modelGroup.GET("/search/type", SearchModelsByType)
		modelGroup.GET("/search/tag", SearchModelsByTag)
		modelGroup.GET("/:id", GetModel)
		modelGroup.PATCH("/:id", UpdateModel)
		modelGroup.DELETE("/:id", DeleteModel)
	}
}
