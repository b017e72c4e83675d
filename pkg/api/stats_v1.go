// pkg/api/stats_v1.go
package api

// LocusStatsV1 is the stable JSON/JSONL schema for per-locus summary
// rows. Keep fields, names, and types stable. Add new fields only with
// ",omitempty".
type LocusStatsV1 struct {
	Dataset  int     `json:"dataset"`
	Locus    int     `json:"locus"`
	N        int     `json:"n"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}
