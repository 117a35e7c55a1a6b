package naver

import (
	"html"
	"regexp"
	"strings"

	"github.com/gosom/naver-place-reviews/common/logger"
)

// DefaultVisitKeyword marks the <em> labels that describe the visit.
const DefaultVisitKeyword = "방문"

var (
	visitDateRegex = regexp.MustCompile(`<time>([^<]+)</time>`)
	reviewerRegex  = regexp.MustCompile(`<div><span><span>([^<]+)</span></span></div>`)
	emojiRegex     = regexp.MustCompile(`<div><a href="#">([^<]+)</a></div>`)
)

// Fields holds the four match lists in document order. The lists are
// independent of each other; Assemble pairs them up by index.
type Fields struct {
	VisitDates []string
	Reviewers  []string
	Emojis     []string
	VisitTags  []string
}

type Parser struct {
	visitTagRegex *regexp.Regexp
}

type ParserOption func(*Parser)

// WithVisitKeyword changes the substring an <em> label must contain to count
// as a visit tag. The keyword is matched literally.
func WithVisitKeyword(keyword string) ParserOption {
	return func(p *Parser) {
		if keyword != "" {
			p.visitTagRegex = visitTagPattern(keyword)
		}
	}
}

func NewParser(opts ...ParserOption) *Parser {
	p := Parser{
		visitTagRegex: visitTagPattern(DefaultVisitKeyword),
	}

	for _, opt := range opts {
		opt(&p)
	}

	return &p
}

func visitTagPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`<em>([^<]*` + regexp.QuoteMeta(keyword) + `[^<]*)</em>`)
}

// Parse runs every pattern over cleaned markup.
func (p *Parser) Parse(markup string) Fields {
	fields := Fields{
		VisitDates: findAll(visitDateRegex, markup),
		Reviewers:  findAll(reviewerRegex, markup),
		Emojis:     findAll(emojiRegex, markup),
		VisitTags:  findAll(p.visitTagRegex, markup),
	}

	logger.Info("parsed review markup",
		"visit_dates", len(fields.VisitDates),
		"reviewers", len(fields.Reviewers),
		"emojis", len(fields.Emojis),
		"visit_tags", len(fields.VisitTags),
	)

	return fields
}

// ParseMarkup parses with the default visit keyword.
func ParseMarkup(markup string) Fields {
	return NewParser().Parse(markup)
}

func findAll(re *regexp.Regexp, markup string) []string {
	matches := re.FindAllStringSubmatch(markup, -1)
	ans := make([]string, 0, len(matches))

	for _, m := range matches {
		// cleaned markup is rendered with entities escaped
		ans = append(ans, strings.TrimSpace(html.UnescapeString(m[1])))
	}

	return ans
}
