package reference

import "github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pricing"

// Coupons returns the static coupon table shown on the offers screen.
// Each coupon carries its kind explicitly; the value alone never
// decides between flat and percent.
func Coupons() []pricing.Coupon {
	return []pricing.Coupon{
		{Code: "SAVE10", Kind: pricing.KindPercent, Value: 10, MinOrder: 0},
		{Code: "WELCOME60", Kind: pricing.KindPercent, Value: 60, MinOrder: 1999},
		{Code: "FLAT150", Kind: pricing.KindFlat, Value: 150, MinOrder: 999},
		{Code: "KIDS50", Kind: pricing.KindFlat, Value: 50, MinOrder: 499},
	}
}
