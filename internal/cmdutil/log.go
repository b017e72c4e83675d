// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes a prefixed warning line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Errorf writes a tool-prefixed error line to dst.
func Errorf(dst io.Writer, tool string, err error) {
	_, _ = fmt.Fprintf(dst, "%s: %v\n", tool, err)
}
