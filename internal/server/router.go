package server

import (
	"net/http"

	"kiosk/internal/config"
	membermod "kiosk/internal/member"
	productmod "kiosk/internal/product"
	"kiosk/internal/report"
	restockctrl "kiosk/internal/restock/controller"
	salectrl "kiosk/internal/sale/controller"
	"kiosk/internal/suggestion"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Members     *membermod.Controller
	Products    *productmod.Controller
	Sales       *salectrl.SaleController
	Restocks    *restockctrl.RestockController
	Suggestions *suggestion.Controller
	Reports     *report.Controller
}

func NewRouter(ctrls Controllers, corsCfg config.CORSConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/members", ctrls.Members.HandleList)
		r.Get("/products", ctrls.Products.HandleList)
		r.Post("/purchase", ctrls.Sales.HandlePurchase)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/restock/import", ctrls.Restocks.HandleImport)

			r.Route("/restock-history", func(r chi.Router) {
				r.Get("/", ctrls.Restocks.HandleList)
				r.Post("/", ctrls.Restocks.HandleCreate)
				r.Put("/{id}", ctrls.Restocks.HandleUpdate)
				r.Delete("/{id}", ctrls.Restocks.HandleDelete)
			})

			r.Get("/restock-suggestions", ctrls.Suggestions.HandleSuggestions)
			r.Get("/invoice-summary", ctrls.Reports.HandleInvoiceSummary)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
