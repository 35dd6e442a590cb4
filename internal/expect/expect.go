// Package expect parses annotated expectation files. A hand-authored copy of
// a test program marks each line expected to trigger diagnostics with a
// trailing "!! <comma-separated-codes> |" annotation; codes resolve through
// a numeric error taxonomy to the compiler's exact diagnostic messages.
package expect

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// annotPattern matches the error-code annotation suffix "!! 1,2,3 |".
var annotPattern = regexp.MustCompile(`!!\s*((?:\d+,?)+)\|`)

// Parse reads an annotated expectation file and resolves annotations to the
// diagnostic messages expected per source line (1-based). Unknown codes are
// an error: a typo in an annotation must not silently grade as "no errors
// expected here".
func Parse(r io.Reader, tax Taxonomy) (map[int][]string, error) {
	expected := make(map[int][]string)
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		m := annotPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		for _, tok := range strings.Split(m[1], ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			code, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad error code %q", lineNum, tok)
			}
			msg, ok := tax.Message(code)
			if !ok {
				return nil, fmt.Errorf("line %d: unknown error code %d", lineNum, code)
			}
			expected[lineNum] = append(expected[lineNum], msg)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading expectation file: %w", err)
	}
	return expected, nil
}

// ParseFile reads an annotated expectation file from disk.
func ParseFile(path string, tax Taxonomy) (map[int][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening expectation file: %w", err)
	}
	defer f.Close()
	return Parse(f, tax)
}

// MarkedLines returns the set of 1-based lines carrying any "!!" marker,
// with or without codes. This is the coarse expectation mode: the marked
// lines must error, the exact messages do not matter.
func MarkedLines(r io.Reader) (map[int]bool, error) {
	marked := make(map[int]bool)
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if strings.Contains(scanner.Text(), "!!") {
			marked[lineNum] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading expectation file: %w", err)
	}
	return marked, nil
}
