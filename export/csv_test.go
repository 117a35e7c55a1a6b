package export_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gosom/naver-place-reviews/export"
	"github.com/gosom/naver-place-reviews/naver"
)

func sampleReviews() []naver.Review {
	return []naver.Review{
		{ReviewerName: "넘버 One", VisitDate: "8.13.수", EmojiContent: "😋 맛있어요", VisitTag: "점심에 방문", Rating: 5},
		{ReviewerName: `Kim, "J"`, VisitDate: "8.10.일", EmojiContent: "", VisitTag: "", Rating: 5},
		{ReviewerName: naver.DefaultReviewerName, VisitDate: naver.DefaultVisitDate, EmojiContent: "line\nbreak", Rating: 5},
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 8, 13, 9, 5, 7, 0, time.Local)
	require.Equal(t, "naver_reviews_20240813_090507.csv", export.FileName(now))
}

func TestWriteCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	reviews := sampleReviews()

	require.NoError(t, export.WriteCSV(path, reviews))

	header, rows, err := export.ReadCSV(path)
	require.NoError(t, err)

	require.Equal(t, []string{"reviewer_name", "visit_date", "emoji_content", "visit_tag", "rating"}, header)
	require.Len(t, rows, len(reviews))

	for i := range reviews {
		require.Equal(t, reviews[i].CsvRow(), rows[i])
	}
}

func TestWriteCSVStartsWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, export.WriteCSV(path, sampleReviews()[:1]))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
	require.Equal(t, "reviewer_name,visit_date,emoji_content,visit_tag,rating\n", string(data[3:59]))
}

func TestWriteCSVNoReviews(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, export.WriteCSV(path, nil))

	header, rows, err := export.ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, header, 5)
	require.Empty(t, rows)
}

func TestWriteCSVMissingDirectory(t *testing.T) {
	err := export.WriteCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), sampleReviews())
	require.Error(t, err)
}
