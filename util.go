package nswitch

import (
	"strconv"
	"strings"
)

func prependSpace(s string) string {
	if s != "" {
		return " " + s
	}
	return ""
}

func notEmpty(strings ...string) []string {
	n := make([]string, 0, len(strings))
	for _, s := range strings {
		if s != "" {
			n = append(n, s)
		}
	}
	return n
}

// quotedList formats names as "a", "b", "c"
func quotedList(names []string) string {
	q := make([]string, len(names))
	for i, n := range names {
		q[i] = strconv.Quote(n)
	}
	return strings.Join(q, ", ")
}

func containsAny(list []string, want ...string) bool {
	for _, s := range list {
		for _, w := range want {
			if s == w {
				return true
			}
		}
	}
	return false
}
