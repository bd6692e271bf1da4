package music_route_usecase

import (
	"errors"
	"strings"

	"github.com/rhythmiq/rhythmiq-server/domain"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseID(raw, what string) (primitive.ObjectID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, music_models.NewValidationError(music_models.KindInvalidArgument, "%s is required.", what)
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, music_models.NewValidationError(music_models.KindInvalidArgument, "invalid %s: %s", what, raw)
	}
	return id, nil
}

// notFound 将仓储层的 ErrNotFound 转换为面向用户的错误
func notFound(err error, format string, args ...interface{}) error {
	if errors.Is(err, domain.ErrNotFound) {
		return music_models.NewValidationError(music_models.KindNotFound, format, args...)
	}
	return err
}

func orderByIDs[T any](items []*T, ids []primitive.ObjectID, idOf func(*T) primitive.ObjectID) []*T {
	byID := make(map[primitive.ObjectID]*T, len(items))
	for _, it := range items {
		byID[idOf(it)] = it
	}
	out := make([]*T, 0, len(items))
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			out = append(out, it)
			delete(byID, id)
		}
	}
	return out
}

func songID(s *music_models.Song) primitive.ObjectID { return s.ID }
