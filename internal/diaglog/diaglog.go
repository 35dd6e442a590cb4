// Package diaglog parses the diagnostic stream emitted by the base compiler
// so verdicts can be computed against annotated expectation files.
package diaglog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// entryPattern matches one diagnostic line: "<line>:<col> ****ERROR**** <message>".
var entryPattern = regexp.MustCompile(`^(\d+):(\d+)\s*[*]{4}ERROR[*]{4}\s*(.+?)\s*$`)

// ErrSyntaxError is reported when the log contains a syntax error. Grading
// only covers semantic diagnostics; a program that failed to parse cannot be
// graded at all.
var ErrSyntaxError = errors.New("program contains syntax errors")

// Entry is one semantic diagnostic.
type Entry struct {
	Line    int
	Col     int
	Message string
}

// Log is a parsed diagnostic stream.
type Log struct {
	Entries []Entry
	// Malformed holds ERROR lines that did not match the diagnostic
	// format. They never contribute to grading but are surfaced so a
	// broken logger does not pass silently.
	Malformed []string
}

// Parse reads a compiler diagnostic stream. Non-ERROR lines are ignored. A
// syntax error aborts with ErrSyntaxError wrapping the first offending line.
func Parse(r io.Reader) (*Log, error) {
	log := &Log{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "ERROR") {
			continue
		}
		if strings.Contains(line, "Syntax error") {
			return nil, fmt.Errorf("%w: %s", ErrSyntaxError, strings.TrimSpace(line))
		}

		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			log.Malformed = append(log.Malformed, line)
			continue
		}
		lineNum, _ := strconv.Atoi(m[1])
		col, _ := strconv.Atoi(m[2])
		log.Entries = append(log.Entries, Entry{Line: lineNum, Col: col, Message: m[3]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading diagnostic stream: %w", err)
	}
	return log, nil
}

// ParseFile reads a diagnostic log from disk.
func ParseFile(path string) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening diagnostic log: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// ByLine groups diagnostic messages by source line.
func (l *Log) ByLine() map[int][]string {
	out := make(map[int][]string)
	for _, e := range l.Entries {
		out[e.Line] = append(out[e.Line], e.Message)
	}
	return out
}

// Lines returns the sorted distinct source lines carrying diagnostics.
func (l *Log) Lines() []int {
	seen := make(map[int]bool)
	var lines []int
	for _, e := range l.Entries {
		if !seen[e.Line] {
			seen[e.Line] = true
			lines = append(lines, e.Line)
		}
	}
	sort.Ints(lines)
	return lines
}
