package pipeline

import "regexp"

var (
	httpURL      = regexp.MustCompile(`https?://\S+`)
	wwwURL       = regexp.MustCompile(`www\.\S+`)
	emailAddress = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Handles and hashtags accept Unicode letters (@josé, #año)
	socialHandle = regexp.MustCompile(`@[\p{L}\p{N}_]+`)
	hashtag      = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
)

// DigitalContentRemover strips URLs, email addresses, handles and hashtags.
func DigitalContentRemover() Step {
	return Step{
		Name:  "digital content removal",
		Code:  CodeDigitalContentRemoval,
		Stage: StagePreProcessing,
		Apply: removeDigitalContent,
	}
}

// Emails go before handles so the local part is not left behind.
func removeDigitalContent(text string) string {
	text = httpURL.ReplaceAllString(text, "")
	text = wwwURL.ReplaceAllString(text, "")
	text = emailAddress.ReplaceAllString(text, "")
	text = socialHandle.ReplaceAllString(text, "")
	return hashtag.ReplaceAllString(text, "")
}
