package music_ingest_usecase

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/rhythmiq/rhythmiq-server/domain/domain_music/music_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferType(t *testing.T) {
	assert.Equal(t, MimeMPEG, InferType("Song.MP3"))
	assert.Equal(t, MimeXWAV, InferType("take.wav"))
	assert.Equal(t, MimeJPEG, InferType("cover.jpeg"))
	assert.Equal(t, MimePNG, InferType("cover.png"))
	assert.Empty(t, InferType("noext"))
	assert.Empty(t, InferType("song.xyz"))
}

func TestSniffAudio(t *testing.T) {
	t.Run("unsupported extensions", func(t *testing.T) {
		for _, name := range []string{"song.flac", "song.ogg", "song.txt", "song"} {
			_, err := SniffAudio(bytes.NewReader(mp3Frames(3)), name)
			assert.True(t, music_models.IsValidationError(err, music_models.KindInvalidFormat), name)
		}
	})

	t.Run("mp3 with frames", func(t *testing.T) {
		r := bytes.NewReader(mp3Frames(3))
		mime, err := SniffAudio(r, "song.mp3")
		require.NoError(t, err)
		assert.Equal(t, MimeMPEG, mime)

		pos, _ := r.Seek(0, io.SeekCurrent)
		assert.Zero(t, pos)
	})

	t.Run("mp3 without frames", func(t *testing.T) {
		_, err := SniffAudio(bytes.NewReader([]byte("definitely not audio")), "song.mp3")
		assert.True(t, music_models.IsValidationError(err, music_models.KindInvalidFormat))
	})

	t.Run("wav accepted by extension", func(t *testing.T) {
		mime, err := SniffAudio(bytes.NewReader(wavOf(1, 1)), "song.wav")
		require.NoError(t, err)
		assert.Equal(t, MimeXWAV, mime)
	})
}

func TestSniffImage(t *testing.T) {
	mime, err := SniffImage(bytes.NewReader(pngBytes), "cover.png")
	require.NoError(t, err)
	assert.Equal(t, MimePNG, mime)

	mime, err = SniffImage(bytes.NewReader(jpegBytes), "cover.jpg")
	require.NoError(t, err)
	assert.Equal(t, MimeJPEG, mime)

	_, err = SniffImage(bytes.NewReader(pngBytes), "cover.gif")
	assert.True(t, music_models.IsValidationError(err, music_models.KindInvalidFormat))

	_, err = SniffImage(bytes.NewReader([]byte("plain text")), "cover.png")
	assert.True(t, music_models.IsValidationError(err, music_models.KindInvalidFormat))
}

func TestExtractDuration(t *testing.T) {
	t.Run("mp3 within one second", func(t *testing.T) {
		d, err := ExtractDuration(bytes.NewReader(mp3OfLength(125*time.Second)), MimeMPEG)
		require.NoError(t, err)
		assert.InDelta(t, 125, d.Seconds(), 1)
	})

	t.Run("wav header", func(t *testing.T) {
		d, err := ExtractDuration(bytes.NewReader(wavOf(2, 2)), MimeXWAV)
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, d)
	})

	t.Run("over the ceiling", func(t *testing.T) {
		_, err := ExtractDuration(bytes.NewReader(wavOf(3700, 1)), MimeXWAV)
		assert.True(t, music_models.IsValidationError(err, music_models.KindDurationExceeded))
	})

	t.Run("garbage wav", func(t *testing.T) {
		_, err := ExtractDuration(bytes.NewReader([]byte("RIFF but not really")), MimeXWAV)
		assert.True(t, music_models.IsValidationError(err, music_models.KindExtractionFailed))
	})

	t.Run("empty mp3", func(t *testing.T) {
		_, err := ExtractDuration(bytes.NewReader(nil), MimeMPEG)
		assert.True(t, music_models.IsValidationError(err, music_models.KindExtractionFailed))
	})
}

func TestReadTagDefaults(t *testing.T) {
	stream := append(id3v23("Love Story", "Pop/Country"), mp3Frames(2)...)
	r := bytes.NewReader(stream)

	tags := readTagDefaults(r, MimeMPEG)
	assert.Equal(t, "Love Story", tags.Title)
	assert.Equal(t, []string{"Pop", "Country"}, tags.Genres)

	pos, _ := r.Seek(0, io.SeekCurrent)
	assert.Zero(t, pos)

	assert.Equal(t, tagDefaults{}, readTagDefaults(bytes.NewReader(mp3Frames(2)), MimeMPEG))
}

func TestReadWavInfoDefaults(t *testing.T) {
	r := bytes.NewReader(wavWithInfo("Rain Song", "Ambient;Jazz", 2))

	tags := readTagDefaults(r, MimeWAV)
	assert.Equal(t, "Rain Song", tags.Title)
	assert.Equal(t, []string{"Ambient", "Jazz"}, tags.Genres)

	pos, _ := r.Seek(0, io.SeekCurrent)
	assert.Zero(t, pos)

	plain := readTagDefaults(bytes.NewReader(wavOf(2, 2)), MimeWAV)
	assert.Empty(t, plain.Title)
	assert.Empty(t, plain.Genres)
}

func TestSplitGenres(t *testing.T) {
	assert.Equal(t, []string{"Pop", "rock"}, splitGenres(" Pop;rock/pop,, Rock"))
}
