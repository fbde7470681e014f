package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type ErrorInfo struct {
	Message  string
	Line     int
	Filename string
	Context  string
}

func (e ErrorInfo) String() string {
	if e.Filename == "" {
		return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("%s:%d: error: %s", e.Filename, e.Line, e.Message)
}

// Reporter collects diagnostics for one source text and prints each one as
// it arrives. Its Report method is meant to be handed to the scanner.
type Reporter struct {
	w        io.Writer
	filename string
	lines    []string
	errors   []ErrorInfo
}

// NewReporter writes to w. An empty filename selects the short
// "[line N] Error: ..." form used by the interactive prompt.
func NewReporter(w io.Writer, filename, source string) *Reporter {
	return &Reporter{
		w:        w,
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

func (r *Reporter) Report(line int, msg string) {
	info := ErrorInfo{
		Message:  msg,
		Line:     line,
		Filename: r.filename,
		Context:  r.sourceLine(line),
	}
	r.errors = append(r.errors, info)

	fmt.Fprintln(r.w, info.String())
	if info.Filename != "" && info.Context != "" {
		fmt.Fprintf(r.w, "  %d | %s\n", line, info.Context)
	}
}

func (r *Reporter) HadError() bool {
	return len(r.errors) > 0
}

func (r *Reporter) Errors() []ErrorInfo {
	return r.errors
}

// Reset forgets recorded errors and switches to a new source text.
func (r *Reporter) Reset(source string) {
	r.errors = nil
	r.lines = strings.Split(source, "\n")
}

func (r *Reporter) sourceLine(line int) string {
	if line < 1 || line > len(r.lines) {
		return ""
	}
	return strings.TrimRight(r.lines[line-1], "\r")
}

func Error(msg string) {
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
}
