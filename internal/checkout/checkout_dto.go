package checkout

import "github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pricing"

type PreviewRequest struct {
	CouponCode string `json:"couponCode"`
}

type PreviewResponse struct {
	Breakdown     pricing.Breakdown `json:"breakdown"`
	AppliedCoupon string            `json:"appliedCoupon,omitempty"`
}
