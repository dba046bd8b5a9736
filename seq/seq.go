package seq

import (
	"fmt"
	"strconv"
	"strings"
)

// Clone returns a copy of s. A nil input yields a non-nil empty slice.
func Clone(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// IsAscending reports whether every element is <= its successor.
// Empty and single-element sequences are ascending.
func IsAscending(s []int) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

// IsPermutation reports whether a and b hold the same multiset of values.
func IsPermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// ParseInts converts textual elements into integers. Elements may also be
// comma separated ("5,2,9"). Returns ErrBadElement wrapping the first failure.
func ParseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadElement, field)
			}
			out = append(out, v)
		}
	}
	return out, nil
}
