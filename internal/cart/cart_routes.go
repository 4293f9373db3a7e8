package cart

import (
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/carts")
	carts.Use(middleware.DeviceID())
	{
		carts.GET("/detail", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.POST("/items", handler.AddItem)
		carts.DELETE("", handler.Clear)

		items := carts.Group("/items/:lineId")
		{
			items.PATCH("", handler.UpdateQty)
			items.POST("/increment", handler.Increment)
			items.POST("/decrement", handler.Decrement)
			items.DELETE("", handler.RemoveItem)
		}
	}
}
