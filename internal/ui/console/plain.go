package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gopak/minigrep/internal/search"
)

// plainReporter writes each matching line as it arrives. Write errors are
// ignored; standard output is treated as always writable.
type plainReporter struct {
	w       io.Writer
	numbers bool
}

func (r *plainReporter) Line(m search.Match) {
	if r.numbers {
		_, _ = io.WriteString(r.w, strconv.Itoa(m.Number)+":"+m.Text+"\n")
		return
	}
	_, _ = io.WriteString(r.w, m.Text+"\n")
}

func (r *plainReporter) Flush() error { return nil }

type countReporter struct {
	w io.Writer
	n int
}

func (r *countReporter) Line(search.Match) { r.n++ }

func (r *countReporter) Flush() error {
	_, _ = fmt.Fprintln(r.w, r.n)
	return nil
}
