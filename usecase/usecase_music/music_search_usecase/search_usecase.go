package music_search_usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_interface"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_util"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/text/cases"
)

const (
	DefaultCandidateWindow = 10
	DefaultResultLimit     = 10
)

// SearchUsecase 先按 _id 取有限候选再打分排序
type SearchUsecase struct {
	songs   music_interface.SongRepository
	window  int64
	limit   int
	timeout time.Duration
}

func NewSearchUsecase(songs music_interface.SongRepository, window, limit int, timeout time.Duration) *SearchUsecase {
	if window <= 0 {
		window = DefaultCandidateWindow
	}
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	return &SearchUsecase{
		songs:   songs,
		window:  int64(window),
		limit:   limit,
		timeout: timeout,
	}
}

func (uc *SearchUsecase) Search(ctx context.Context, query string) ([]*music_models.Song, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil, music_models.NewValidationError(music_models.KindEmptyQuery, "search query must not be empty")
	}

	candidates, err := uc.songs.SearchCandidates(ctx, tokens, uc.window)
	if err != nil {
		return nil, fmt.Errorf("search candidates: %w", err)
	}

	ranked := Rank(candidates, tokens, uc.limit)
	songs := make([]*music_models.Song, len(ranked))
	for i, r := range ranked {
		songs[i] = r.Song
	}
	return songs, nil
}

// Tokenize 先按空白切分再逐个清洗，清洗后为空的 token 丢弃
func Tokenize(query string) []string {
	fields := strings.Fields(query)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := domain_util.SanitizeText(f); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// Score 每个 token：标题 +2，描述 +1，任一流派 +1
func Score(song *music_models.Song, tokens []string) int {
	fold := cases.Fold()
	name := fold.String(song.Name)
	description := fold.String(song.Description)
	genres := make([]string, len(song.Genres))
	for i, g := range song.Genres {
		genres[i] = fold.String(g)
	}

	score := 0
	for _, token := range tokens {
		t := fold.String(token)
		if strings.Contains(name, t) {
			score += 2
		}
		if strings.Contains(description, t) {
			score++
		}
		for _, g := range genres {
			if strings.Contains(g, t) {
				score++
				break
			}
		}
	}
	return score
}

// Rank 去重后按得分降序、id 升序，最多返回 limit 条
func Rank(candidates []*music_models.Song, tokens []string, limit int) []music_models.RelevanceScore {
	h := domain_util.NewRankHeap[music_models.RelevanceScore](limit, worse)
	seen := make(map[primitive.ObjectID]bool, len(candidates))
	for _, song := range candidates {
		if song == nil || seen[song.ID] {
			continue
		}
		seen[song.ID] = true
		h.Offer(music_models.RelevanceScore{Song: song, Score: Score(song, tokens)})
	}
	return h.Drain()
}

func worse(a, b music_models.RelevanceScore) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return bytes.Compare(a.Song.ID[:], b.Song.ID[:]) > 0
}
