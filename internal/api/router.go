package api

import (
	"context"
	"fmt"
	"net/http"

	"patient_feedback_service/configs"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func NewRouter(ctx context.Context, config configs.HTTP, handler *Handler, logger *zap.SugaredLogger) *mux.Router {
	router := mux.NewRouter()
	router.Use(recoveryMiddleware(logger))
	router.Use(loggingMiddleware(logger))
	router.Use(corsMiddleware(config.AllowedOrigins()))

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	limiter := NewRateLimiter(ctx, config.RateLimitWindow, config.RateLimitMaxRequests)
	vote := api.PathPrefix("/vote").Subrouter()
	vote.Use(limiter.Middleware())
	vote.HandleFunc("", handler.SubmitVote).Methods(http.MethodPost, http.MethodOptions)
	vote.HandleFunc("/validate", handler.ValidateToken).Methods(http.MethodGet, http.MethodOptions)

	admin := api.NewRoute().Subrouter()
	admin.Use(adminAuthMiddleware(config.AdminToken))
	admin.HandleFunc("/rdv", handler.CreateAppointment).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/rdv/{id}/send-mail", handler.MarkInvitationSent).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/rdv/{id}/resend", handler.ResendInvitation).Methods(http.MethodPost, http.MethodOptions)
	admin.HandleFunc("/stats", handler.Stats).Methods(http.MethodGet, http.MethodOptions)

	return router
}
