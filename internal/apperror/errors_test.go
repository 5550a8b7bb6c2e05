package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   Kind
		status int
		public string
	}{
		{"validation", Validation("page must be >= 1"), KindValidation, http.StatusBadRequest, "page must be >= 1"},
		{"not found", NotFound("categories"), KindNotFound, http.StatusNotFound, "categories not found"},
		{"graph integrity", GraphIntegrity("cycle at %d", 4), KindGraphIntegrity, http.StatusInternalServerError, "internal server error"},
		{"internal", Internal("query failed", errors.New("boom")), KindInternal, http.StatusInternalServerError, "internal server error"},
		{"plain error", errors.New("connection reset"), KindInternal, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
			assert.Equal(t, tt.public, PublicMessage(tt.err))
		})
	}
}

func TestWrappedErrorsKeepKind(t *testing.T) {
	err := fmt.Errorf("resolve scope: %w", NotFound("categories"))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsGraphIntegrity(nil))
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("bad tag")
	err := ValidationWrap("invalid filters", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "VALIDATION: invalid filters: bad tag", err.Error())
}
