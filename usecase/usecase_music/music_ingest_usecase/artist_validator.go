package music_ingest_usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ArtistValidator 所有署名账号必须为艺术家，上传者自动加入
type ArtistValidator struct {
	users music_interface.UserRepository
}

func NewArtistValidator(users music_interface.UserRepository) *ArtistValidator {
	return &ArtistValidator{users: users}
}

// Validate 返回去重后的艺术家 id 列表；任一账号不合格则整体拒绝
func (v *ArtistValidator) Validate(ctx context.Context, proposed []string, uploader primitive.ObjectID) ([]primitive.ObjectID, error) {
	var (
		ids       []primitive.ObjectID
		seen      = make(map[primitive.ObjectID]bool)
		offenders []string
	)
	for _, raw := range proposed {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			offenders = append(offenders, raw)
			continue
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if !uploader.IsZero() && !seen[uploader] {
		seen[uploader] = true
		ids = append(ids, uploader)
	}
	if len(ids) == 0 && len(offenders) == 0 {
		return nil, music_models.NewValidationError(music_models.KindNotAnArtist, "a song needs at least one artist")
	}

	users, err := v.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("look up artists: %w", err)
	}
	byID := make(map[primitive.ObjectID]*music_models.UserProfile, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, id := range ids {
		u, ok := byID[id]
		switch {
		case !ok:
			offenders = append(offenders, id.Hex())
		case !u.IsArtist():
			offenders = append(offenders, u.DisplayName())
		}
	}
	if len(offenders) > 0 {
		return nil, music_models.NewValidationError(music_models.KindNotAnArtist,
			"the following users are not artists: %s", strings.Join(offenders, ", "))
	}
	return ids, nil
}
