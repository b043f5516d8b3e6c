package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sellaya/trucktrack/internal/handler"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	r.Route("/webhook/whatsapp", func(r chi.Router) {
		r.Get("/", h.VerifyWebhook)
		r.Post("/", h.ReceiveWebhook)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/messages", h.ListMessages)
		r.Get("/expenses", h.ListExpenses)
		r.Get("/expenses/summary", h.ExpenseSummary)
	})

	return r
}
