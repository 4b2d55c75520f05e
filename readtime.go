package tutorsite

import (
	"strconv"
	"strings"
)

// wordsPerMinute is the average adult reading speed commonly used by blogs.
const wordsPerMinute = 200

// EstimateReadTime returns a human-readable reading time for an article
// body, e.g. "3 min read". The estimate always rounds up so a short
// article reads "1 min read" rather than "0 min read". Empty or
// whitespace-only text returns "".
func EstimateReadTime(text string) string {
	words := len(strings.Fields(text))
	if words == 0 {
		return ""
	}
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return strconv.Itoa(minutes) + " min read"
}
