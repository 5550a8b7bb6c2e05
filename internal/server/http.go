package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	attributeHandler "github.com/fekuna/omnipos-catalog-service/internal/attribute/handler"
	categoryHandler "github.com/fekuna/omnipos-catalog-service/internal/category/handler"
	"github.com/fekuna/omnipos-catalog-service/internal/metrics"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/response"
)

const (
	FindAttributesOperation  = "GET /attributes"
	GetCategoryTreeOperation = "GET /categories/tree"
)

type HTTPDeps struct {
	Attributes *attributeHandler.HTTPHandler
	Categories *categoryHandler.HTTPHandler
	Recorder   metrics.Recorder
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	// Ping backs /health; nil means always healthy.
	Ping   func(ctx context.Context) error
	Logger logger.ZapLogger
}

func NewRouter(d HTTPDeps) http.Handler {
	recorder := d.Recorder
	if recorder == nil {
		recorder = metrics.NopRecorder{}
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(AccessLog(d.Logger))
	r.Use(Recoverer(d.Logger))

	r.With(Instrument(FindAttributesOperation, recorder)).Get("/attributes", d.Attributes.FindAttributes)
	r.With(Instrument(GetCategoryTreeOperation, recorder)).Get("/categories/tree", d.Categories.GetCategoryTree)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if d.Ping != nil {
			if err := d.Ping(req.Context()); err != nil {
				response.Error(w, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable")
				return
			}
		}
		response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	return r
}
