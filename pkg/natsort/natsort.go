// Package natsort compares strings in natural order, so that embedded
// numbers are treated as numbers rather than character sequences:
//
//	"file2" < "file10"
//	"Alpha 2A-900" < "Alpha 2A-8000"
//
// Strings are split into alternating runs ("chunks") of ASCII digits and
// non-digits. Corresponding digit chunks are compared by run length first
// and then bytewise; everything else compares case-insensitively. Because
// digit runs are never normalized, "007" sorts after "7" even though the
// numeric values are equal. Callers that need numeric-value equality should
// canonicalize their inputs before comparing.
package natsort

import "sort"

// Compare returns a three-way comparison of a and b in natural order:
// negative if a sorts before b, zero if their chunk sequences are
// equivalent, positive if a sorts after b. It is a valid total order for
// sorting; Compare(a, b) == 0 does not imply a == b (chunks compare
// case-insensitively).
func Compare(a, b string) int {
	ia, ib := 0, 0
	for ia < len(a) && ib < len(b) {
		ea := chunkEnd(a, ia)
		eb := chunkEnd(b, ib)
		if r := compareChunks(a[ia:ea], b[ib:eb]); r != 0 {
			return r
		}
		ia, ib = ea, eb
	}
	// All compared chunks were equivalent; the shorter string sorts first.
	return len(a) - len(b)
}

// Less reports whether a sorts before b in natural order. It is directly
// usable with sort.Slice and slices.SortFunc-style helpers.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Sort sorts ss in place in natural order.
func Sort(ss []string) {
	sort.Sort(StringSlice(ss))
}

// StringSlice attaches sort.Interface to []string using natural order.
type StringSlice []string

func (p StringSlice) Len() int           { return len(p) }
func (p StringSlice) Less(i, j int) bool { return Less(p[i], p[j]) }
func (p StringSlice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// chunkEnd returns the index just past the chunk beginning at s[i]. The
// chunk is a maximal run of either digits or non-digits, decided by the
// class of s[i].
func chunkEnd(s string, i int) int {
	digits := isDigit(s[i])
	for i++; i < len(s) && isDigit(s[i]) == digits; i++ {
	}
	return i
}

// compareChunks compares two chunks. Digit chunks compare by length and
// then bytewise (equivalent to numeric comparison once lengths match);
// any other pairing compares case-insensitively.
func compareChunks(a, b string) int {
	if isDigit(a[0]) && isDigit(b[0]) {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		for i := 0; i < len(a); i++ {
			if a[i] != b[i] {
				return int(a[i]) - int(b[i])
			}
		}
		return 0
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := lower(a[i]), lower(b[i])
		if ca != cb {
			return int(ca) - int(cb)
		}
	}
	return len(a) - len(b)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
