// internal/output/individuals.go
package output

import (
	"io"
	"strconv"
)

// WriteIndividuals renders one dataset's repeat-length matrix as N
// lines, one individual per line with its locus values tab-separated,
// closed by the standalone DatasetTrailer line.
func WriteIndividuals(w io.Writer, matrix [][]int) error {
	block := make([]byte, 0, 256)
	for _, row := range matrix {
		for k, v := range row {
			if k > 0 {
				block = append(block, '\t')
			}
			block = strconv.AppendInt(block, int64(v), 10)
		}
		block = append(block, '\n')
	}
	block = append(block, DatasetTrailer...)
	block = append(block, '\n')
	_, err := w.Write(block)
	return err
}
