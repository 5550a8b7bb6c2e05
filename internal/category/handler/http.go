package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/httputil"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/response"
)

type HTTPHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewHTTPHandler(uc category.UseCase, log logger.ZapLogger) *HTTPHandler {
	return &HTTPHandler{
		uc:     uc,
		logger: log,
	}
}

// GetCategoryTree serves GET /categories/tree.
func (h *HTTPHandler) GetCategoryTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.uc.BuildTree(r.Context(), httputil.Bool(r.URL.Query(), "includeCounts"))
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}
	response.JSON(w, http.StatusOK, tree)
}
