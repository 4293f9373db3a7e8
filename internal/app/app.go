package app

import (
	"os"
	"strconv"

	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/cart"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/catalog"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/messaging/kafka/producer"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/pricing"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/shared/reference"
	"github.com/NIBODH77/Jiokidzstore-APP-sub000/internal/wishlist"
	"github.com/gin-gonic/gin"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// BuildApp assembles the storefront: static reference data, the
// persistence collaborator, optional event publishing, and the module
// routes. The commerce core itself holds no ambient state; everything
// it needs is constructed here and passed down.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	// 1. Static reference data
	productCatalog := catalog.NewCatalog(reference.Products())
	couponRepo := pricing.NewStaticRepository(reference.Coupons())
	pricer := pricing.NewEngine(pricingConfigFromEnv())

	// 2. Persistence collaborator
	var cartStore cart.Store
	var wishlistStore wishlist.Store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err := connectRedisWithRetry(addr, 5, logger)
		if err != nil {
			return err
		}
		cartStore = cart.NewRedisStore(rdb)
		wishlistStore = wishlist.NewRedisStore(rdb)
	} else {
		logger.Info("REDIS_ADDR not set, using in-memory cart storage")
		cartStore = cart.NewMemoryStore()
		wishlistStore = wishlist.NewMemoryStore()
	}

	// 3. Event publishing (optional)
	var writer *kafka.Writer
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		w, err := connectKafkaWithRetry(broker, "storefront.cart", 5, logger)
		if err != nil {
			return err
		}
		writer = w
	}
	events := producer.NewPublisher(writer, logger)

	// 4. Register modules and routes
	registerModules(router, Deps{
		Catalog:       productCatalog,
		Pricer:        pricer,
		Coupons:       couponRepo,
		CartStore:     cartStore,
		WishlistStore: wishlistStore,
		Events:        events,
		Logger:        logger,
	})

	return nil
}

// pricingConfigFromEnv reads the delivery constants, keeping the
// defaults when unset or malformed.
func pricingConfigFromEnv() pricing.Config {
	cfg := pricing.DefaultConfig()
	if v := os.Getenv("DELIVERY_FEE"); v != "" {
		if fee, err := strconv.ParseInt(v, 10, 64); err == nil && fee >= 0 {
			cfg.DeliveryFee = fee
		}
	}
	if v := os.Getenv("FREE_DELIVERY_THRESHOLD"); v != "" {
		if threshold, err := strconv.ParseInt(v, 10, 64); err == nil && threshold >= 0 {
			cfg.FreeDeliveryThreshold = threshold
		}
	}
	return cfg
}
