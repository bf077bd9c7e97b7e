package api

import (
	_ "valens/docs"
	coinhandler "valens/internal/coin/handler"
	purchasehandler "valens/internal/purchase/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(coinHandler *coinhandler.Handler, purchaseHandler *purchasehandler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Get("/api/v1/coins", coinHandler.ListCoins)
	router.Get("/api/v1/coins/refreshes/{id}", coinHandler.GetRefresh)
	router.Get("/api/v1/coins/{address:0x[0-9a-fA-F]{40}}/price", coinHandler.GetPrice)
	router.Post("/api/v1/coins/{address:0x[0-9a-fA-F]{40}}/refresh", coinHandler.ScheduleRefresh)

	router.Post("/api/v1/quotes", purchaseHandler.CreateQuote)
	router.Post("/api/v1/purchases", purchaseHandler.SubmitPurchase)
	router.Post("/api/v1/sells", purchaseHandler.SubmitSell)
	router.Get("/api/v1/orders/{id}", purchaseHandler.GetOrder)
	return router
}
