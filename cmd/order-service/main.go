package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/food-orders/docs"
	"github.com/MikeMC777/food-orders/internal/checkout"
	"github.com/MikeMC777/food-orders/internal/config"
	"github.com/MikeMC777/food-orders/internal/httpx"
	"github.com/MikeMC777/food-orders/internal/payment"
	"github.com/MikeMC777/food-orders/internal/store"
)

// @title                       Food Orders API
// @version                     1.0
// @description                 Order listing and Stripe hosted checkout for the food ordering app.
// @host                        localhost:8082
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	if cfg.StripeKey == "" {
		log.Fatal("[config] STRIPE_SECRET_KEY is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("[config] JWT_SECRET is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.Open(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	defer st.Close()

	svc := checkout.NewService(st.Orders, st.Restaurants, payment.NewStripeProvider(cfg.StripeKey), cfg.FrontendURL)

	srv := &http.Server{
		Addr:              cfg.OrderSvcAddr,
		Handler:           newRouter(svc, []byte(cfg.JWTSecret), cfg.RequestTimeout),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("order-service listening on %s", cfg.OrderSvcAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down order-service...")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
}

func newRouter(svc *checkout.Service, secret []byte, timeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	orders := r.Group("/api/v1/order", httpx.Auth(secret))
	orders.GET("", getOrdersHandler(svc, timeout))
	orders.POST("/checkout/create-checkout-session", createCheckoutSessionHandler(svc, timeout))
	return r
}
