package controller_music

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rhythmiq/rhythmiq-server/api/controller"
	"github.com/rhythmiq/rhythmiq-server/api/middleware"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func currentUser(ctx *gin.Context) (primitive.ObjectID, bool) {
	id, ok := middleware.UserID(ctx)
	if !ok {
		controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication credentials were not provided.")
		return primitive.NilObjectID, false
	}
	return id, true
}

// listValues 同时支持重复参数、key[] 形式与逗号分隔
func listValues(values ...[]string) []string {
	var out []string
	for _, group := range values {
		for _, v := range group {
			for _, part := range strings.Split(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
		}
	}
	return out
}

func formList(ctx *gin.Context, key string) []string {
	return listValues(ctx.PostFormArray(key), ctx.PostFormArray(key+"[]"))
}

func queryList(ctx *gin.Context, key string) []string {
	return listValues(ctx.QueryArray(key), ctx.QueryArray(key+"[]"))
}

// formUpload 字段缺失时返回 nil
func formUpload(ctx *gin.Context, field string) (*music_models.UploadCandidate, io.Closer, error) {
	header, err := ctx.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &music_models.UploadCandidate{Filename: header.Filename, Content: file}, file, nil
}

func closeUpload(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
