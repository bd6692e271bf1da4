package domain_util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "02:05", FormatClock(125*time.Second))
	assert.Equal(t, "59:59", FormatClock(3599*time.Second))
	assert.Equal(t, "01:00:00", FormatClock(time.Hour))
	assert.Equal(t, "00:00", FormatClock(-time.Second))
}

func TestRankHeapKeepsBest(t *testing.T) {
	h := NewRankHeap[int](3, func(a, b int) bool { return a < b })
	for _, v := range []int{5, 1, 9, 3, 7, 2} {
		h.Offer(v)
	}
	assert.Equal(t, []int{9, 7, 5}, h.Drain())
	assert.Equal(t, 0, h.Len())
}

func TestRankHeapZeroLimit(t *testing.T) {
	h := NewRankHeap[int](0, func(a, b int) bool { return a < b })
	h.Offer(1)
	assert.Empty(t, h.Drain())
}

func TestTextHelpers(t *testing.T) {
	assert.True(t, ContainsInvalidChars("bad\x00name"))
	assert.False(t, ContainsInvalidChars("Love Story"))
	assert.Equal(t, "Love", SanitizeText("  Lo\u200bve \n"))
	assert.Equal(t, "love story", OrderTitle("Love Story"))
	assert.Equal(t, "zhongwen 1", OrderTitle("中文 1"))
}

func TestNormalizeGenres(t *testing.T) {
	assert.Equal(t, []string{"Pop", "rock"}, NormalizeGenres([]string{" Pop", "rock", "pop", "", "Rock"}))
	assert.Empty(t, NormalizeGenres(nil))
}
