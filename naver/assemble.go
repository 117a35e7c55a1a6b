package naver

import "github.com/gosom/naver-place-reviews/common/logger"

// Assemble zips the parsed lists into reviews.
//
// The number of reviews is min(len(VisitDates), len(Reviewers)). Emoji and
// visit tag entries beyond that bound are dropped; when those lists are
// shorter the field is left empty.
func Assemble(fields Fields) []Review {
	n := min(len(fields.VisitDates), len(fields.Reviewers))

	if dropped := len(fields.Emojis) - n; dropped > 0 {
		logger.Warn("emoji entries without a matching review were dropped", "dropped", dropped)
	}

	if dropped := len(fields.VisitTags) - n; dropped > 0 {
		logger.Warn("visit tags without a matching review were dropped", "dropped", dropped)
	}

	reviews := make([]Review, 0, n)

	for i := range n {
		reviews = append(reviews, Review{
			ReviewerName: valueAt(fields.Reviewers, i, DefaultReviewerName),
			VisitDate:    valueAt(fields.VisitDates, i, DefaultVisitDate),
			EmojiContent: valueAt(fields.Emojis, i, ""),
			VisitTag:     valueAt(fields.VisitTags, i, ""),
			Rating:       DefaultRating,
		})
	}

	return reviews
}

func valueAt(items []string, i int, fallback string) string {
	if i < len(items) {
		return items[i]
	}

	return fallback
}
