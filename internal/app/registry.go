package app

import (
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/cart"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/catalog"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/checkout"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/messaging/kafka/producer"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/middleware"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pricing"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/wishlist"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Catalog       *catalog.Catalog
	Pricer        *pricing.Engine
	Coupons       pricing.CouponRepository
	CartStore     cart.Store
	WishlistStore wishlist.Store
	Events        producer.Sink
	Logger        *zap.Logger
}

func registerModules(router *gin.Engine, deps Deps) {
	router.Use(middleware.RequestID())

	// --- Engines ---
	queryEngine := catalog.NewEngine()

	// --- Services ---
	cartService := cart.NewService(cart.Deps{
		Store:   deps.CartStore,
		Catalog: deps.Catalog,
		Pricer:  deps.Pricer,
		Events:  deps.Events,
		Logger:  deps.Logger,
	})
	checkoutService := checkout.NewService(checkout.Deps{
		CartSvc: cartService,
		Coupons: deps.Coupons,
		Pricer:  deps.Pricer,
		Logger:  deps.Logger,
	})
	wishlistService := wishlist.NewService(wishlist.Deps{
		Store:   deps.WishlistStore,
		Catalog: deps.Catalog,
		Logger:  deps.Logger,
	})

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(queryEngine, deps.Catalog)
	cartHandler := cart.NewHandler(cartService)
	checkoutHandler := checkout.NewHandler(checkoutService)
	wishlistHandler := wishlist.NewHandler(wishlistService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
	}
}
