package catalog

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/catalog/products")
	{
		products.GET("", handler.Query)
		products.GET("/:productId", handler.GetByID)
	}
}
