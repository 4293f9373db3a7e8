package checkout

import (
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	co := r.Group("/checkout")
	co.Use(middleware.DeviceID())
	{
		co.POST("/preview", handler.Preview)
	}
}
