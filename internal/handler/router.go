package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	debateHandler "github.com/minsplit/minsplit/backend/internal/handler/debate"
	personaHandler "github.com/minsplit/minsplit/backend/internal/handler/persona"
	middlewarePkg "github.com/minsplit/minsplit/backend/internal/middleware"
	personaModel "github.com/minsplit/minsplit/backend/internal/model/persona"
	debateService "github.com/minsplit/minsplit/backend/internal/service/debate"
	"github.com/minsplit/minsplit/backend/internal/store"
	"github.com/minsplit/minsplit/backend/pkg/utils"
)

// Diagnostics carries the store facts reported by the /test endpoint.
type Diagnostics struct {
	ConvStore          store.Store
	StoreKind          string
	DatabaseConfigured bool
}

// NewRouter wires HTTP routes to core services.
func NewRouter(personas personaModel.Store, debateSvc *debateService.Service, diag Diagnostics) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "MinSplit API is running"})
	})

	// Best-effort diagnostic; always answers 200 even when the store is down.
	r.Get("/test", func(w http.ResponseWriter, req *http.Request) {
		response := map[string]interface{}{
			"backend":           "running",
			"store":             diag.StoreKind,
			"database_url":      "not set",
			"connection_status": "not connected",
		}
		if diag.DatabaseConfigured {
			response["database_url"] = "set"
		}
		if err := diag.ConvStore.Ping(req.Context()); err != nil {
			response["connection_status"] = "error: " + err.Error()
		} else {
			response["connection_status"] = "connected"
		}
		utils.RespondJSON(w, http.StatusOK, response)
	})

	r.Route("/api", func(api chi.Router) {
		api.Get("/hello", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Hello from MinSplit backend!"})
		})

		personaHandler.New(personas).RegisterRoutes(api)
		debateHandler.New(debateSvc).RegisterRoutes(api)
	})

	return r
}
