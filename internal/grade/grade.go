// Package grade diffs a compiler's parsed diagnostic log against a parsed
// expectation file and renders the verdict.
package grade

import (
	"sort"

	"github.com/mkpro118/basegen/internal/diaglog"
)

// Finding is one graded diagnostic, keyed by source line.
type Finding struct {
	Line    int
	Message string
}

// Report is the outcome of one grading run.
type Report struct {
	Matched    []Finding
	Missing    []Finding // expected but absent from the log
	Unexpected []Finding // present in the log but not expected
}

// Passed reports whether the log matched the expectation exactly.
func (r *Report) Passed() bool {
	return len(r.Missing) == 0 && len(r.Unexpected) == 0
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func sortFindings(fs []Finding) {
	sort.Slice(fs, func(i, j int) bool {
		if fs[i].Line != fs[j].Line {
			return fs[i].Line < fs[j].Line
		}
		return fs[i].Message < fs[j].Message
	})
}

// Diff compares expected per-line messages against a diagnostic log. Both
// directions are checked: every expected message must appear on its line,
// and every logged message must have been expected there.
func Diff(expected map[int][]string, log *diaglog.Log) *Report {
	actual := log.ByLine()
	r := &Report{}

	for line, msgs := range expected {
		for _, msg := range msgs {
			if contains(actual[line], msg) {
				r.Matched = append(r.Matched, Finding{Line: line, Message: msg})
			} else {
				r.Missing = append(r.Missing, Finding{Line: line, Message: msg})
			}
		}
	}
	for line, msgs := range actual {
		for _, msg := range msgs {
			if !contains(expected[line], msg) {
				r.Unexpected = append(r.Unexpected, Finding{Line: line, Message: msg})
			}
		}
	}

	sortFindings(r.Matched)
	sortFindings(r.Missing)
	sortFindings(r.Unexpected)
	return r
}

// DiffLines is the coarse mode: only the set of erroring lines is graded,
// not the messages. Marked lines must error and unmarked lines must not.
func DiffLines(marked map[int]bool, log *diaglog.Log) *Report {
	actual := make(map[int]bool)
	for _, line := range log.Lines() {
		actual[line] = true
	}

	r := &Report{}
	for line := range marked {
		if actual[line] {
			r.Matched = append(r.Matched, Finding{Line: line, Message: "error reported"})
		} else {
			r.Missing = append(r.Missing, Finding{Line: line, Message: "no error reported"})
		}
	}
	for line := range actual {
		if !marked[line] {
			r.Unexpected = append(r.Unexpected, Finding{Line: line, Message: "unexpected error"})
		}
	}

	sortFindings(r.Matched)
	sortFindings(r.Missing)
	sortFindings(r.Unexpected)
	return r
}
