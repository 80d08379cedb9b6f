package mime

import (
	"regexp"
	"strings"
)

var commaSeparator = regexp.MustCompile("\\s*,\\s*")

// SplitField will take a comma-separated list, as found in MIME header fields, and return the
// values (without potential blanks in between). Empty values are dropped.
func SplitField(s string) []string {
	res := make([]string, 0)
	for _, v := range commaSeparator.Split(strings.TrimSpace(s), -1) {
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
