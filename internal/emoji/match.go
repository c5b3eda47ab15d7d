package emoji

import "unicode/utf8"

// FindRuns returns every maximal run of table members in text, in order,
// duplicates included. An invalid UTF-8 byte always ends a run, even though
// the default table covers U+FFFD itself.
func (t Table) FindRuns(text string) []string {
	var runs []string
	start := -1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !(r == utf8.RuneError && size == 1) && t.Contains(r) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			runs = append(runs, text[start:i])
			start = -1
		}
		i += size
	}
	if start >= 0 {
		runs = append(runs, text[start:])
	}
	return runs
}

// Distinct returns the distinct runs of text in first-seen order.
func (t Table) Distinct(text string) []string {
	runs := t.FindRuns(text)
	if len(runs) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(runs))
	out := runs[:0]
	for _, r := range runs {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

// FindRuns matches text against DefaultTable.
func FindRuns(text string) []string { return DefaultTable.FindRuns(text) }

// Distinct matches text against DefaultTable and deduplicates the runs.
func Distinct(text string) []string { return DefaultTable.Distinct(text) }
