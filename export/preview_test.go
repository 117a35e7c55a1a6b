package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/require"

	"github.com/gosom/naver-place-reviews/export"
	"github.com/gosom/naver-place-reviews/naver"
)

func TestPreviewHead(t *testing.T) {
	var reviews []naver.Review
	for range 8 {
		reviews = append(reviews, sampleReviews()[0])
	}

	var buf bytes.Buffer

	require.NoError(t, export.Preview(&buf, reviews, export.DefaultPreviewRows, 0))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	require.Contains(t, lines[0], "reviewer_name")
	require.True(t, strings.HasPrefix(lines[5], "4 "))

	// columns line up by display width
	col := strings.Index(lines[0], "visit_date")
	require.Positive(t, col)
	for _, l := range lines[1:] {
		prefix := l[:strings.Index(l, "8.13.수")]
		require.Equal(t, runewidth.StringWidth(lines[0][:col]), runewidth.StringWidth(prefix))
	}
}

func TestPreviewFewerRows(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.Preview(&buf, sampleReviews()[:2], 5, 0))
	require.Equal(t, 3, strings.Count(buf.String(), "\n"))
}

func TestPreviewDisabled(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.Preview(&buf, sampleReviews(), 0, 0))
	require.NoError(t, export.Preview(&buf, nil, 5, 0))
	require.Empty(t, buf.String())
}

func TestPreviewLineWidth(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, export.Preview(&buf, sampleReviews()[:1], 5, 20))

	for _, l := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		require.LessOrEqual(t, runewidth.StringWidth(l), 20)
	}
}
