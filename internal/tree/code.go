package tree

import (
	"fmt"
	"strconv"
	"strings"
)

// ChildCode returns the code of the child at 0-based index i under parentCode.
func ChildCode(parentCode string, i int) string {
	return parentCode + "." + strconv.Itoa(i+1)
}

// ParseCode splits a dotted code into its 1-based segments. Every segment
// must be a positive integer written without sign or leading zeros.
func ParseCode(code string) ([]int, error) {
	if code == "" {
		return nil, fmt.Errorf("empty code: %w", ErrInvalidCode)
	}
	parts := strings.Split(code, ".")
	segs := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || strconv.Itoa(n) != p {
			return nil, fmt.Errorf("code %q: segment %q: %w", code, p, ErrInvalidCode)
		}
		segs[i] = n
	}
	return segs, nil
}

// ParentCode returns the code one level up. It reports false for
// single-segment codes.
func ParentCode(code string) (string, bool) {
	i := strings.LastIndexByte(code, '.')
	if i < 0 {
		return "", false
	}
	return code[:i], true
}

// IsWithin reports whether code equals ancestor or lies beneath it.
func IsWithin(code, ancestor string) bool {
	return code == ancestor || strings.HasPrefix(code, ancestor+".")
}
