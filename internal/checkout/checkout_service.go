package checkout

import (
	"context"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/cart"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pricing"
	"go.uber.org/zap"
)

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	Preview(ctx context.Context, userID, couponCode string) (PreviewResponse, error)
}

type service struct {
	cartSvc cart.Service
	coupons pricing.CouponRepository
	pricer  *pricing.Engine
	logger  *zap.Logger
}

type Deps struct {
	CartSvc cart.Service
	Coupons pricing.CouponRepository
	Pricer  *pricing.Engine
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		cartSvc: deps.CartSvc,
		coupons: deps.Coupons,
		pricer:  deps.Pricer,
		logger:  deps.Logger,
	}
}

// Preview prices the user's cart with an optional tentative coupon. An
// ineligible coupon is a reported error, never a silently ignored one,
// so the review screen can tell the user why no discount applied.
func (s *service) Preview(ctx context.Context, userID, couponCode string) (PreviewResponse, error) {
	lines, err := s.cartSvc.Lines(ctx, userID)
	if err != nil {
		return PreviewResponse{}, err
	}

	if len(lines) == 0 {
		return PreviewResponse{}, ErrEmptyCart
	}

	pricingLines := cart.PricingLines(lines)

	var coupon *pricing.Coupon
	if couponCode != "" {
		found, err := s.coupons.FindByCode(ctx, couponCode)
		if err != nil {
			return PreviewResponse{}, err
		}

		subtotal := s.pricer.Compute(pricingLines, nil).Subtotal
		if err := s.pricer.ValidateCoupon(found, subtotal); err != nil {
			s.logger.Info("coupon rejected",
				zap.String("user_id", userID),
				zap.String("coupon", found.Code),
				zap.Int64("subtotal", subtotal),
			)
			return PreviewResponse{}, err
		}
		coupon = &found
	}

	breakdown := s.pricer.Compute(pricingLines, coupon)

	res := PreviewResponse{
		Breakdown: breakdown,
	}
	if coupon != nil {
		res.AppliedCoupon = coupon.Code
	}
	return res, nil
}
