package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rituraj-gharat/trackmycash/internal/auth"
	"github.com/rituraj-gharat/trackmycash/internal/http/importcsv"
	"github.com/rituraj-gharat/trackmycash/internal/http/ledger"
	"github.com/rituraj-gharat/trackmycash/internal/http/transaction"
)

func New(
	authMiddleware func(http.Handler) http.Handler,
	allowedOrigins []string,
	transactionsV1 *transaction.Handler,
	ledgerV1 *ledger.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/me", me)

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/ledger", ledgerV1.Routes)

		r.Route("/import", importV1.Routes)
	})

	return router
}

func me(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromRequest(r)
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	_ = json.NewEncoder(w).Encode(map[string]string{
		"user_id": identity.UserID,
		"name":    identity.Name,
	})
}
