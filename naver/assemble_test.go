package naver_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gosom/naver-place-reviews/naver"
)

func items(prefix string, n int) []string {
	ans := make([]string, n)
	for i := range ans {
		ans[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return ans
}

func TestAssembleCount(t *testing.T) {
	tests := []struct {
		name           string
		dates, authors int
		emojis, tags   int
		want           int
	}{
		{name: "equal", dates: 3, authors: 3, emojis: 3, tags: 3, want: 3},
		{name: "fewer dates", dates: 2, authors: 5, emojis: 5, tags: 5, want: 2},
		{name: "fewer reviewers", dates: 4, authors: 1, emojis: 4, tags: 4, want: 1},
		{name: "extra emojis and tags are dropped", dates: 2, authors: 2, emojis: 7, tags: 9, want: 2},
		{name: "short emojis and tags do not limit", dates: 4, authors: 4, emojis: 1, tags: 0, want: 4},
		{name: "no dates", dates: 0, authors: 3, emojis: 3, tags: 3, want: 0},
		{name: "nothing", want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reviews := naver.Assemble(naver.Fields{
				VisitDates: items("d", tc.dates),
				Reviewers:  items("r", tc.authors),
				Emojis:     items("e", tc.emojis),
				VisitTags:  items("t", tc.tags),
			})

			require.Len(t, reviews, tc.want)

			for _, r := range reviews {
				require.Equal(t, 5, r.Rating)
			}
		})
	}
}

func TestAssemblePairsByIndex(t *testing.T) {
	reviews := naver.Assemble(naver.Fields{
		VisitDates: []string{"8.13.수", "8.10.일"},
		Reviewers:  []string{"넘버 One", "김철수"},
		Emojis:     []string{"😋 맛있어요", "👍 친절해요"},
		VisitTags:  []string{"점심에 방문", "저녁에 방문"},
	})

	require.Equal(t, []naver.Review{
		{ReviewerName: "넘버 One", VisitDate: "8.13.수", EmojiContent: "😋 맛있어요", VisitTag: "점심에 방문", Rating: 5},
		{ReviewerName: "김철수", VisitDate: "8.10.일", EmojiContent: "👍 친절해요", VisitTag: "저녁에 방문", Rating: 5},
	}, reviews)
}

func TestAssembleDefaults(t *testing.T) {
	reviews := naver.Assemble(naver.Fields{
		VisitDates: []string{"8.13.수", "8.10.일", "8.9.토"},
		Reviewers:  []string{"a", "b", "c"},
		Emojis:     []string{"😋"},
	})

	require.Len(t, reviews, 3)

	require.Equal(t, "😋", reviews[0].EmojiContent)
	require.Equal(t, "", reviews[1].EmojiContent)
	require.Equal(t, "", reviews[2].EmojiContent)

	for _, r := range reviews {
		require.Equal(t, "", r.VisitTag)
		require.NotEqual(t, naver.DefaultReviewerName, r.ReviewerName)
		require.NotEqual(t, naver.DefaultVisitDate, r.VisitDate)
	}
}

func TestReviewCsvRow(t *testing.T) {
	r := naver.Review{
		ReviewerName: "넘버 One",
		VisitDate:    "8.13.수",
		EmojiContent: "😋",
		VisitTag:     "점심에 방문",
		Rating:       naver.DefaultRating,
	}

	require.Equal(t, []string{"reviewer_name", "visit_date", "emoji_content", "visit_tag", "rating"}, r.CsvHeaders())
	require.Equal(t, []string{"넘버 One", "8.13.수", "😋", "점심에 방문", "5"}, r.CsvRow())
}
