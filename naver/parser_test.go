package naver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gosom/naver-place-reviews/naver"
)

const cleanedFixture = `<div><div><span><span>넘버 One</span></span></div>` +
	`<div><a href="#">😋 맛있어요</a></div>` +
	`<div><em>점심에 방문</em><em>대기 시간 바로 입장</em></div>` +
	`<div><time>8.13.수</time></div></div>` +
	`<div><div><span><span>Tom &amp; Jerry</span></span></div>` +
	`<div><a href="#">👍 친절해요</a></div>` +
	`<div><em>저녁에 방문</em></div>` +
	`<div><time>8.10.일</time></div></div>`

func TestParseMarkup(t *testing.T) {
	fields := naver.ParseMarkup(cleanedFixture)

	want := naver.Fields{
		VisitDates: []string{"8.13.수", "8.10.일"},
		Reviewers:  []string{"넘버 One", "Tom & Jerry"},
		Emojis:     []string{"😋 맛있어요", "👍 친절해요"},
		VisitTags:  []string{"점심에 방문", "저녁에 방문"},
	}

	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("unexpected fields (-want +got):\n%s", diff)
	}
}

func TestParseMarkupTrimsCaptures(t *testing.T) {
	markup := "<time>  8.13.수 \n</time>" +
		"<div><span><span> 넘버 One </span></span></div>" +
		"<div><a href=\"#\">\t😋 맛있어요  </a></div>" +
		"<em> 점심에 방문 </em>"

	fields := naver.ParseMarkup(markup)

	want := naver.Fields{
		VisitDates: []string{"8.13.수"},
		Reviewers:  []string{"넘버 One"},
		Emojis:     []string{"😋 맛있어요"},
		VisitTags:  []string{"점심에 방문"},
	}

	if diff := cmp.Diff(want, fields); diff != "" {
		t.Fatalf("captures not trimmed (-want +got):\n%s", diff)
	}

	// inner spacing survives
	require.Equal(t, "넘버 One", fields.Reviewers[0])
}

func TestParseMarkupNoMatches(t *testing.T) {
	fields := naver.ParseMarkup(`<div><p>리뷰가 없습니다</p></div>`)

	require.Empty(t, fields.VisitDates)
	require.Empty(t, fields.Reviewers)
	require.Empty(t, fields.Emojis)
	require.Empty(t, fields.VisitTags)
}

func TestParseMarkupIgnoresAttributedTags(t *testing.T) {
	// the patterns target cleaned markup only
	fields := naver.ParseMarkup(`<time datetime="2024-08-13">8.13.수</time><div><a href="/x">link</a></div>`)

	require.Empty(t, fields.VisitDates)
	require.Empty(t, fields.Emojis)
}

func TestParserWithVisitKeyword(t *testing.T) {
	markup := `<em>1st visit</em><em>점심에 방문</em><em>re.visit</em><em>revisit(2)</em>`

	p := naver.NewParser(naver.WithVisitKeyword("visit"))
	require.Equal(t, []string{"1st visit", "re.visit", "revisit(2)"}, p.Parse(markup).VisitTags)

	// regexp metacharacters are matched literally
	p = naver.NewParser(naver.WithVisitKeyword("t("))
	require.Equal(t, []string{"revisit(2)"}, p.Parse(markup).VisitTags)

	// an empty keyword keeps the default
	p = naver.NewParser(naver.WithVisitKeyword(""))
	require.Equal(t, []string{"점심에 방문"}, p.Parse(markup).VisitTags)
}
