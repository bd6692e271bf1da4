package music_ingest_usecase

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dhowden/tag"
	"github.com/go-audio/wav"
	"github.com/rhythmiq/rhythmiq-server/domain/domain_util"
)

type tagDefaults struct {
	Title   string
	Comment string
	Genres  []string
}

// readTagDefaults 读取 ID3 等内嵌标签，WAV 读取 LIST/INFO 块，读不到时返回空值
func readTagDefaults(r io.ReadSeeker, mime string) tagDefaults {
	defer func() {
		_, _ = r.Seek(0, io.SeekStart)
	}()

	if mime == MimeWAV || mime == MimeXWAV {
		return readWavInfo(r)
	}

	m, err := tag.ReadFrom(r)
	if err != nil {
		if err != tag.ErrNoTagsFound {
			log.Debug("skip embedded tags", "err", err)
		}
		return tagDefaults{}
	}
	return tagDefaults{
		Title:   strings.TrimSpace(m.Title()),
		Comment: strings.TrimSpace(m.Comment()),
		Genres:  splitGenres(m.Genre()),
	}
}

func readWavInfo(r io.ReadSeeker) tagDefaults {
	dec := wav.NewDecoder(r)
	dec.ReadMetadata()
	if dec.Metadata == nil {
		if err := dec.Err(); err != nil {
			log.Debug("skip wav info chunk", "err", err)
		}
		return tagDefaults{}
	}
	return tagDefaults{
		Title:   strings.TrimSpace(dec.Metadata.Title),
		Comment: strings.TrimSpace(dec.Metadata.Comments),
		Genres:  splitGenres(dec.Metadata.Genre),
	}
}

func splitGenres(raw string) []string {
	return domain_util.NormalizeGenres(strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '/'
	}))
}
