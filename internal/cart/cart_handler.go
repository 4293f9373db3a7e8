package cart

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

func (c *Handler) Detail(ctx *gin.Context) {
	userID := ctx.GetString("device_id")
	res, err := c.service.Detail(ctx, userID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Cart fetched", res)
}

func (c *Handler) Count(ctx *gin.Context) {
	userID := ctx.GetString("device_id")
	count, err := c.service.Count(ctx, userID)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Cart count fetched", CartCountResponse{Count: count})
}

func (c *Handler) AddItem(ctx *gin.Context) {
	userID := ctx.GetString("device_id")

	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := c.service.AddItem(ctx, userID, req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusCreated, "Item added to cart", res)
}

func (c *Handler) UpdateQty(ctx *gin.Context) {
	userID := ctx.GetString("device_id")

	var req UpdateQtyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := c.service.UpdateQty(ctx, userID, ctx.Param("lineId"), req)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Quantity updated", res)
}

func (c *Handler) Increment(ctx *gin.Context) {
	userID := ctx.GetString("device_id")
	res, err := c.service.Increment(ctx, userID, ctx.Param("lineId"))
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Quantity incremented", res)
}

func (c *Handler) Decrement(ctx *gin.Context) {
	userID := ctx.GetString("device_id")
	res, err := c.service.Decrement(ctx, userID, ctx.Param("lineId"))
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Quantity decremented", res)
}

func (c *Handler) RemoveItem(ctx *gin.Context) {
	userID := ctx.GetString("device_id")
	res, err := c.service.RemoveItem(ctx, userID, ctx.Param("lineId"))
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Item removed", res)
}

func (c *Handler) Clear(ctx *gin.Context) {
	userID := ctx.GetString("device_id")
	if err := c.service.Clear(ctx, userID); err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Cart cleared", nil)
}
