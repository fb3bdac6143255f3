package util

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ConvertStringToInt converts a string to int.
func ConvertStringToInt(src string) (int, error) {
	parsed, err := strconv.ParseInt(src, 10, 64)
	if err != nil {
		return 0, err
	}
	return int(parsed), nil
}

// HasPrefixes returns true if the string s has any of the given prefixes.
func HasPrefixes(src string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(src, prefix) {
			return true
		}
	}
	return false
}

func GenUUID() string {
	return uuid.New().String()
}

// CountDigits returns the number of digit characters in a decimal string,
// excluding any sign and the decimal point.
func CountDigits(src string) int {
	n := 0
	for _, r := range src {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// PageCount returns the number of pages needed to hold total items with the
// given page size.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Truncate shortens s to at most n runes, appending "..." when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
