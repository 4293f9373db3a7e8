package checkout

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

func (c *Handler) Preview(ctx *gin.Context) {
	userID := ctx.GetString("device_id")

	var req PreviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", err.Error())
		return
	}

	res, err := c.service.Preview(ctx, userID, req.CouponCode)
	if err != nil {
		response.FromError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Checkout preview computed", res)
}
