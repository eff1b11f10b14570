package router

import (
	"fmt"
	"strings"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	publichandlers "github.com/storefront-next/internal/http/handlers/public"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sf"
	}
	redisClient := cache.Client()
	couponRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:coupon", redisPrefix),
		WindowSeconds: cfg.Security.CouponRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CouponRateLimit.MaxRequests,
		MessageKey:    "error.coupon_too_many",
	}
	orderRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:order", redisPrefix),
		WindowSeconds: cfg.Security.OrderRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.OrderRateLimit.MaxRequests,
		MessageKey:    "error.order_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/banners", publicHandler.GetPublicBanners)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/payment-methods", publicHandler.GetPaymentMethods)
		}

		apiV1.POST("/session", publicHandler.CreateSession)
		apiV1.DELETE("/session", RequireSessionMiddleware(c.SessionStore), publicHandler.DeleteSession)

		// 会话接口
		scoped := apiV1.Group("")
		scoped.Use(SessionMiddleware(c.SessionStore))
		{
			scoped.GET("/home", publicHandler.GetHome)
			scoped.POST("/home/carousel/next", publicHandler.CarouselNext)
			scoped.POST("/home/carousel/prev", publicHandler.CarouselPrev)
			scoped.POST("/home/carousel/goto", publicHandler.CarouselGoTo)
			scoped.POST("/home/search-hint/pause", publicHandler.PauseSearchHint)
			scoped.POST("/home/search-hint/resume", publicHandler.ResumeSearchHint)

			scoped.GET("/cart", publicHandler.GetCart)
			scoped.POST("/cart/items", publicHandler.AddCartItem)
			scoped.PUT("/cart/items/:product_id", publicHandler.UpdateCartItem)
			scoped.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)
			scoped.POST("/cart/coupon", RateLimitMiddleware(redisClient, couponRule, KeyByIP), publicHandler.ApplyCoupon)
			scoped.DELETE("/cart/coupon", publicHandler.ClearCoupon)

			scoped.PUT("/checkout/payment-method", publicHandler.SelectPaymentMethod)
			scoped.POST("/checkout/orders", RateLimitMiddleware(redisClient, orderRule, KeyBySession), publicHandler.PlaceOrder)
		}
	}

	return r
}
