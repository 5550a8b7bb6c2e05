package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-catalog-service/internal/attribute"
	"github.com/fekuna/omnipos-catalog-service/internal/attribute/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/httputil"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/response"
)

type HTTPHandler struct {
	uc     attribute.UseCase
	logger logger.ZapLogger
}

func NewHTTPHandler(uc attribute.UseCase, log logger.ZapLogger) *HTTPHandler {
	return &HTTPHandler{
		uc:     uc,
		logger: log,
	}
}

// FindAttributes serves GET /attributes.
func (h *HTTPHandler) FindAttributes(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}

	result, err := h.uc.FindAttributes(r.Context(), filters)
	if err != nil {
		httputil.WriteError(w, r, h.logger, err)
		return
	}

	response.Paginated(w, result.Data, response.PaginationInfo{
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}

func parseFilters(r *http.Request) (dto.AttributeFilters, error) {
	q := r.URL.Query()

	page, err := httputil.PositiveInt(q, "page")
	if err != nil {
		return dto.AttributeFilters{}, err
	}
	limit, err := httputil.PositiveInt(q, "limit")
	if err != nil {
		return dto.AttributeFilters{}, err
	}
	categoryIDs, err := httputil.IDs(q, "categoryIds")
	if err != nil {
		return dto.AttributeFilters{}, err
	}

	var linkTypes []model.LinkType
	for _, t := range httputil.List(q, "linkTypes") {
		linkTypes = append(linkTypes, model.LinkType(t))
	}

	return dto.AttributeFilters{
		Search:        q.Get("search"),
		Page:          page,
		Limit:         limit,
		SortBy:        q.Get("sortBy"),
		SortOrder:     q.Get("sortOrder"),
		CategoryIDs:   categoryIDs,
		LinkTypes:     linkTypes,
		NotApplicable: httputil.Bool(q, "notApplicable"),
	}, nil
}
