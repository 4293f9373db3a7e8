package pricing

import (
	"net/http"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pkg/apperror"
)

var (
	ErrCouponNotFound = apperror.New(
		apperror.CodeNotFound,
		"Coupon code not found",
		http.StatusNotFound,
	)

	ErrCouponIneligible = apperror.New(
		apperror.CodeCouponIneligible,
		"Cart total does not meet the coupon minimum order",
		http.StatusUnprocessableEntity,
	)
)
