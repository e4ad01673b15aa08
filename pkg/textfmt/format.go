// Package textfmt substitutes positional {N} placeholders in URL and message templates.
package textfmt

import (
	"fmt"
	"regexp"
	"strconv"
)

var placeholder = regexp.MustCompile(`\{(\d+)\}`)

// Format replaces every {N} in template with the string form of values[N].
// Placeholders without a matching value are left untouched.
func Format(template string, values ...any) string {
	return placeholder.ReplaceAllStringFunc(template, func(match string) string {
		idx, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || idx >= len(values) {
			return match
		}
		return fmt.Sprint(values[idx])
	})
}
