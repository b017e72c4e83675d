// internal/output/flat.go
package output

import (
	"io"
	"strconv"
)

// WriteFlat renders one dataset's repeat-length matrix as a single
// tab-separated line in locus-major order: every individual's value for
// locus 0, then for locus 1, and so on. The line carries no trailing
// tab and exactly one newline.
func WriteFlat(w io.Writer, matrix [][]int) error {
	if len(matrix) == 0 {
		_, err := w.Write([]byte{'\n'})
		return err
	}
	loci := len(matrix[0])
	line := make([]byte, 0, len(matrix)*loci*4)
	for l := 0; l < loci; l++ {
		for i := range matrix {
			if len(line) > 0 {
				line = append(line, '\t')
			}
			line = strconv.AppendInt(line, int64(matrix[i][l]), 10)
		}
	}
	line = append(line, '\n')
	_, err := w.Write(line)
	return err
}
