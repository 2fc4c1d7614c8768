package utils

import "github.com/microcosm-cc/bluemonday"

// User-generated text (spot descriptions, post bodies, review comments,
// report reasons) is stored sanitized rather than escaped on output.
var htmlPolicy = bluemonday.UGCPolicy()

// Sanitize strips markup that the UGC policy does not allow.
func Sanitize(input string) string {
	return htmlPolicy.Sanitize(input)
}
