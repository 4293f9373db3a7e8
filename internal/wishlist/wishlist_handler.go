package wishlist

import (
	"net/http"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (c *Handler) Add(ctx *gin.Context) {
	userID := ctx.GetString("device_id")

	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	if err := c.service.Add(ctx, userID, req.ProductID); err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, "Product added to wishlist", nil)
}

func (c *Handler) List(ctx *gin.Context) {
	userID := ctx.GetString("device_id")
	res, err := c.service.List(ctx, userID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Wishlist fetched", res)
}

func (c *Handler) Remove(ctx *gin.Context) {
	userID := ctx.GetString("device_id")
	if err := c.service.Remove(ctx, userID, ctx.Param("productId")); err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Product removed from wishlist", nil)
}
