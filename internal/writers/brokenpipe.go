package writers

import (
	"bufio"
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Finish flushes the buffered output and maps the result onto an exit
// code: 0 on success and on broken pipes, 3 on any other flush failure
// (reported to stderr).
func Finish(w *bufio.Writer, stderr io.Writer, tool string) int {
	err := w.Flush()
	if err == nil || IsBrokenPipe(err) {
		return 0
	}
	_, _ = io.WriteString(stderr, tool+": "+err.Error()+"\n")
	return 3
}
