package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
)

func ErrorResponse(ctx *gin.Context, status int, code, message string) {
	ctx.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func SuccessResponse(ctx *gin.Context, key string, data interface{}, count int) {
	ctx.JSON(http.StatusOK, gin.H{
		key:     data,
		"count": count,
	})
}

var kindStatus = map[music_models.ErrorKind]int{
	music_models.KindInvalidFormat:    http.StatusBadRequest,
	music_models.KindExtractionFailed: http.StatusBadRequest,
	music_models.KindDurationExceeded: http.StatusBadRequest,
	music_models.KindNotAnArtist:      http.StatusBadRequest,
	music_models.KindMissingUpload:    http.StatusBadRequest,
	music_models.KindEmptyQuery:       http.StatusBadRequest,
	music_models.KindInvalidArgument:  http.StatusBadRequest,
	music_models.KindNotFound:         http.StatusNotFound,
	music_models.KindForbidden:        http.StatusForbidden,
	music_models.KindConflict:         http.StatusConflict,
	music_models.KindUnauthorized:     http.StatusUnauthorized,
}

// HandleError 校验错误按种类映射状态码，其余一律 500
func HandleError(ctx *gin.Context, err error) {
	var ve *music_models.ValidationError
	switch {
	case errors.As(err, &ve):
		status, ok := kindStatus[ve.Kind]
		if !ok {
			status = http.StatusBadRequest
		}
		ErrorResponse(ctx, status, string(ve.Kind), ve.Message)
	case errors.Is(err, domain.ErrNotFound):
		ErrorResponse(ctx, http.StatusNotFound, string(music_models.KindNotFound), err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		ErrorResponse(ctx, http.StatusConflict, string(music_models.KindConflict), err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		log.Error("request timed out", "path", ctx.Request.URL.Path, "error", err)
		ErrorResponse(ctx, http.StatusGatewayTimeout, "TIMEOUT", "request timed out")
	default:
		log.Error("request failed", "path", ctx.Request.URL.Path, "error", err)
		_ = ctx.Error(err)
		ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", "internal server error")
	}
}
