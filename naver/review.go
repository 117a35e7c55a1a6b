package naver

import (
	"strconv"
	"time"
)

const (
	// DefaultReviewerName is used when the reviewer list runs out.
	DefaultReviewerName = "익명"
	// DefaultVisitDate is used when the visit date list runs out.
	DefaultVisitDate = "알 수 없음"
	// DefaultRating is written for every review. The page markup carries no
	// per-review score the parser could read.
	DefaultRating = 5
)

// Review is one row of the output table.
type Review struct {
	ReviewerName string `json:"reviewer_name"`
	VisitDate    string `json:"visit_date"`
	EmojiContent string `json:"emoji_content"`
	VisitTag     string `json:"visit_tag"`
	Rating       int    `json:"rating"`
}

// CsvHeaders returns the column names in output order.
func (r *Review) CsvHeaders() []string {
	return []string{
		"reviewer_name",
		"visit_date",
		"emoji_content",
		"visit_tag",
		"rating",
	}
}

func (r *Review) CsvRow() []string {
	return []string{
		r.ReviewerName,
		r.VisitDate,
		r.EmojiContent,
		r.VisitTag,
		strconv.Itoa(r.Rating),
	}
}

// Page is the markup returned by a fetcher.
type Page struct {
	URL       string
	HTML      string
	FetchedAt time.Time
	Fetcher   string
}
