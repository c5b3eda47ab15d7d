package emoji

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidRange is returned by ParseRange for malformed intervals.
var ErrInvalidRange = errors.New("invalid code-point range")

// Range is a closed interval of Unicode scalar values.
type Range struct {
	Lo rune
	Hi rune
}

func (r Range) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("U+%04X", r.Lo)
	}
	return fmt.Sprintf("U+%04X-U+%04X", r.Lo, r.Hi)
}

// Len is the number of scalars covered by r.
func (r Range) Len() int { return int(r.Hi-r.Lo) + 1 }

// Table is a sorted list of non-overlapping, non-adjacent ranges.
// The zero value matches nothing.
type Table struct {
	ranges []Range
}

// NewTable sorts the given ranges and merges any that overlap or touch.
// Ranges with Lo > Hi are swapped rather than dropped.
func NewTable(rs ...Range) Table {
	if len(rs) == 0 {
		return Table{}
	}
	sorted := make([]Range, len(rs))
	for i, r := range rs {
		if r.Lo > r.Hi {
			r.Lo, r.Hi = r.Hi, r.Lo
		}
		sorted[i] = r
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	merged := sorted[:1]
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.Lo <= last.Hi+1 {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		merged = append(merged, r)
	}
	return Table{ranges: merged}
}

// Contains reports whether r falls inside any interval of the table.
func (t Table) Contains(r rune) bool {
	i := sort.Search(len(t.ranges), func(i int) bool { return t.ranges[i].Hi >= r })
	return i < len(t.ranges) && t.ranges[i].Lo <= r
}

// Ranges returns a copy of the merged intervals.
func (t Table) Ranges() []Range {
	out := make([]Range, len(t.ranges))
	copy(out, t.ranges)
	return out
}

// Empty reports whether the table matches nothing.
func (t Table) Empty() bool { return len(t.ranges) == 0 }

// ParseRange parses "1F600-1F64F", "U+1F600-U+1F64F", "2702" or "U+2702".
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("%w: empty", ErrInvalidRange)
	}
	lo, hi, isSpan := strings.Cut(s, "-")
	a, err := parseScalar(lo)
	if err != nil {
		return Range{}, fmt.Errorf("%w %q: %v", ErrInvalidRange, s, err)
	}
	b := a
	if isSpan {
		if b, err = parseScalar(hi); err != nil {
			return Range{}, fmt.Errorf("%w %q: %v", ErrInvalidRange, s, err)
		}
	}
	if a > b {
		return Range{}, fmt.Errorf("%w %q: start after end", ErrInvalidRange, s)
	}
	return Range{Lo: a, Hi: b}, nil
}

// ParseTable parses every entry with ParseRange and builds a Table.
func ParseTable(entries []string) (Table, error) {
	rs := make([]Range, 0, len(entries))
	for _, s := range entries {
		r, err := ParseRange(s)
		if err != nil {
			return Table{}, err
		}
		rs = append(rs, r)
	}
	return NewTable(rs...), nil
}

func parseScalar(s string) (rune, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	if v > utf8.MaxRune {
		return 0, fmt.Errorf("%X beyond U+10FFFF", v)
	}
	return rune(v), nil
}
