package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{music_models.NewValidationError(music_models.KindDurationExceeded, "too long"), http.StatusBadRequest, "DURATION_EXCEEDED"},
		{music_models.NewValidationError(music_models.KindEmptyQuery, "blank"), http.StatusBadRequest, "EMPTY_QUERY"},
		{music_models.NewValidationError(music_models.KindForbidden, "nope"), http.StatusForbidden, "FORBIDDEN"},
		{music_models.NewValidationError(music_models.KindConflict, "dup"), http.StatusConflict, "CONFLICT"},
		{fmt.Errorf("wrapped: %w", music_models.NewValidationError(music_models.KindNotFound, "gone")), http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("%w: song", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("%w: email", domain.ErrDuplicate), http.StatusConflict, "CONFLICT"},
		{errors.New("boom"), http.StatusInternalServerError, "SERVER_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/api/x", nil)

			HandleError(ctx, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body["code"])
		})
	}
}
