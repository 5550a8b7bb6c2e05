// Package httputil holds the request parsing and error rendering shared by the HTTP handlers.
package httputil

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-catalog-service/internal/apperror"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/pkg/response"
)

// WriteError renders err in the error envelope. Server-side failures are logged and
// their details withheld from the client.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.ZapLogger, err error) {
	status := apperror.HTTPStatus(err)
	code := apperror.KindOf(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("kind", string(code)),
			zap.Error(err),
		)
		code = apperror.KindInternal
	}
	response.Error(w, status, string(code), apperror.PublicMessage(err))
}

// PositiveInt reads an optional integer parameter that must be at least 1 when present.
func PositiveInt(q url.Values, key string) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, apperror.Validation(fmt.Sprintf("%s must be a positive integer", key))
	}
	return v, nil
}

// Bool is true only for the literal "true", as a query flag.
func Bool(q url.Values, key string) bool {
	return q.Get(key) == "true"
}

// List collects a parameter given repeatedly and/or as a comma or space separated list.
func List(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		out = append(out, strings.FieldsFunc(raw, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})...)
	}
	return out
}

func IDs(q url.Values, key string) ([]int64, error) {
	parts := List(q, key)
	if len(parts) == 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, apperror.Validation(fmt.Sprintf("%s must be a list of integers", key))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
