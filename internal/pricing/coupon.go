package pricing

import (
	"context"
	"strings"
)

// CouponKind discriminates the two discount strategies explicitly. The
// kind is always carried with the coupon; it is never inferred from the
// magnitude of the value.
type CouponKind string

const (
	// KindFlat subtracts a fixed rupee amount.
	KindFlat CouponKind = "flat"
	// KindPercent subtracts a percentage of the subtotal.
	KindPercent CouponKind = "percent"
)

type Coupon struct {
	Code     string     `json:"code"`
	Kind     CouponKind `json:"kind"`
	Value    int64      `json:"value"`
	MinOrder int64      `json:"minOrder"`
}

//go:generate mockgen -source=coupon.go -destination=../mock/pricing/coupon_repo_mock.go -package=mock
type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (Coupon, error)
}

// staticRepository serves the coupon table shipped as reference data.
// Lookup is case-insensitive on the code.
type staticRepository struct {
	byCode map[string]Coupon
}

func NewStaticRepository(coupons []Coupon) CouponRepository {
	byCode := make(map[string]Coupon, len(coupons))
	for _, c := range coupons {
		byCode[strings.ToUpper(c.Code)] = c
	}
	return &staticRepository{byCode: byCode}
}

func (r *staticRepository) FindByCode(_ context.Context, code string) (Coupon, error) {
	c, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Coupon{}, ErrCouponNotFound
	}
	return c, nil
}
