package pricing

import "github.com/shopspring/decimal"

// Config holds the delivery pricing constants. Values are whole rupees.
type Config struct {
	DeliveryFee           int64
	FreeDeliveryThreshold int64
}

func DefaultConfig() Config {
	return Config{
		DeliveryFee:           40,
		FreeDeliveryThreshold: 499,
	}
}

// Line is the pricing view of one cart line: unit price, unit MRP and
// quantity. The cart module maps its lines into this shape so pricing
// stays free of cart internals.
type Line struct {
	UnitPrice int64
	UnitMRP   int64
	Quantity  int
}

// Breakdown is the advisory client-side price estimate shown at cart
// and checkout. It is a value object, never persisted.
type Breakdown struct {
	Subtotal       int64 `json:"subtotal"`
	TotalMRP       int64 `json:"totalMrp"`
	MRPDiscount    int64 `json:"mrpDiscount"`
	DeliveryFee    int64 `json:"deliveryFee"`
	CouponDiscount int64 `json:"couponDiscount"`
	FinalTotal     int64 `json:"finalTotal"`
	TotalSavings   int64 `json:"totalSavings"`
}

// Engine computes price breakdowns. It is pure and stateless; the cart
// service calls it after every mutation and checkout calls it directly
// with a tentative coupon.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Compute derives the full breakdown for the given lines. A nil coupon
// or a coupon whose minimum order is not met contributes no discount;
// eligibility rejection is the caller's job via ValidateCoupon.
func (e *Engine) Compute(lines []Line, coupon *Coupon) Breakdown {
	var subtotal, totalMRP int64
	for _, l := range lines {
		qty := int64(l.Quantity)
		subtotal += l.UnitPrice * qty
		mrp := l.UnitMRP
		if mrp == 0 {
			mrp = l.UnitPrice
		}
		totalMRP += mrp * qty
	}

	mrpDiscount := totalMRP - subtotal
	if mrpDiscount < 0 {
		mrpDiscount = 0
	}

	var deliveryFee int64
	feeWaived := false
	if subtotal > 0 {
		if subtotal > e.cfg.FreeDeliveryThreshold {
			feeWaived = true
		} else {
			deliveryFee = e.cfg.DeliveryFee
		}
	}

	var couponDiscount int64
	if coupon != nil && subtotal >= coupon.MinOrder {
		couponDiscount = coupon.DiscountFor(subtotal)
	}

	finalTotal := subtotal + deliveryFee - couponDiscount
	if finalTotal < 0 {
		finalTotal = 0
	}

	savings := mrpDiscount + couponDiscount
	if feeWaived {
		savings += e.cfg.DeliveryFee
	}

	return Breakdown{
		Subtotal:       subtotal,
		TotalMRP:       totalMRP,
		MRPDiscount:    mrpDiscount,
		DeliveryFee:    deliveryFee,
		CouponDiscount: couponDiscount,
		FinalTotal:     finalTotal,
		TotalSavings:   savings,
	}
}

// ValidateCoupon reports ErrCouponIneligible when the subtotal is below
// the coupon's minimum order. Callers must check this before presenting
// a coupon as applied, so the rejection reaches the user instead of the
// discount silently staying zero.
func (e *Engine) ValidateCoupon(coupon Coupon, subtotal int64) error {
	if subtotal < coupon.MinOrder {
		return ErrCouponIneligible
	}
	return nil
}

// DiscountFor returns the rupee discount this coupon grants on the
// given subtotal. Percentage coupons round half away from zero, the
// same rounding the storefront displays.
func (c Coupon) DiscountFor(subtotal int64) int64 {
	switch c.Kind {
	case KindFlat:
		return c.Value
	case KindPercent:
		return decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromInt(c.Value)).
			Div(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	default:
		return 0
	}
}
