// internal/statsout/writers.go
package statsout

import (
	"encoding/json"
	"fmt"
	"io"

	"msat/pkg/api"
)

// TSVHeader is the canonical header row for text/TSV output.
// Keep this as the single source of truth.
const TSVHeader = "dataset\tlocus\tn\tmean\tvariance\tstd_dev"

// Writer receives per-dataset summary rows and owns their presentation.
// Close must be called once after the last dataset.
type Writer interface {
	Write(rows []api.LocusStatsV1) error
	Close() error
}

// New picks the writer for an output format name.
func New(format string, w io.Writer, header bool) (Writer, error) {
	switch format {
	case "text":
		return &textWriter{w: w, header: header}, nil
	case "json":
		return &jsonWriter{w: w, rows: make([]api.LocusStatsV1, 0, 16)}, nil
	case "jsonl":
		return &jsonlWriter{enc: json.NewEncoder(w)}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text, json, or jsonl)", format)
}

type textWriter struct {
	w      io.Writer
	header bool
	wrote  bool
}

func (t *textWriter) ensureHeader() error {
	if !t.header || t.wrote {
		return nil
	}
	t.wrote = true
	_, err := io.WriteString(t.w, TSVHeader+"\n")
	return err
}

func (t *textWriter) Write(rows []api.LocusStatsV1) error {
	if err := t.ensureHeader(); err != nil {
		return err
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(t.w, "%d\t%d\t%d\t%g\t%g\t%g\n",
			r.Dataset, r.Locus, r.N, r.Mean, r.Variance, r.StdDev)
		if err != nil {
			return err
		}
	}
	return nil
}

// Close emits the header even when no datasets arrived.
func (t *textWriter) Close() error { return t.ensureHeader() }

// jsonWriter buffers every row and emits one pretty array on Close, the
// stable v1 wire format.
type jsonWriter struct {
	w    io.Writer
	rows []api.LocusStatsV1
}

func (j *jsonWriter) Write(rows []api.LocusStatsV1) error {
	j.rows = append(j.rows, rows...)
	return nil
}

func (j *jsonWriter) Close() error { return encodePretty(j.w, j.rows) }

// encodePretty writes v as a two-space-indented document, the
// human-facing JSON shape.
func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// jsonlWriter streams one v1 record per line.
type jsonlWriter struct {
	enc *json.Encoder
}

func (j *jsonlWriter) Write(rows []api.LocusStatsV1) error {
	for _, r := range rows {
		if err := j.enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func (j *jsonlWriter) Close() error { return nil }
