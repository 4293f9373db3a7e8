package wishlist

import (
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wl := r.Group("/wishlist")
	wl.Use(middleware.DeviceID())
	{
		wl.POST("/items", handler.Add)
		wl.GET("", handler.List)
		wl.DELETE("/items/:productId", handler.Remove)
	}
}
