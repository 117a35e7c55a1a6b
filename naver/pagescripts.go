package naver

import (
	"fmt"
	"time"

	"github.com/gosom/scrapemate"
)

// DefaultWaitSelector is present once the review list has rendered.
const DefaultWaitSelector = ".place_section_content"

// blockStylesheets drops stylesheets that are already on the page.
// Only the markup is read, so layout does not matter.
func blockStylesheets(page scrapemate.BrowserPage) {
	_, _ = page.Eval(`() => {
		document.querySelectorAll('link[rel="stylesheet"], style').forEach(el => el.remove());
	}`)
}

// expandReviewsScript clicks every visible "show more" button, pausing
// after each click so the next batch can render.
func expandReviewsScript(pause time.Duration) string {
	return fmt.Sprintf(`async () => {
		const buttons = document.querySelectorAll('.review_more_btn, .btn_more');
		let clicked = 0;
		for (const button of buttons) {
			if (button && button.offsetHeight > 0) {
				button.click();
				clicked++;
				await new Promise(resolve => setTimeout(resolve, %d));
			}
		}
		return clicked;
	}`, pause.Milliseconds())
}

func scrollToBottomScript(pause time.Duration) string {
	return fmt.Sprintf(`async () => {
		window.scrollTo(0, document.body.scrollHeight);
		await new Promise(resolve => setTimeout(resolve, %d));
	}`, pause.Milliseconds())
}
