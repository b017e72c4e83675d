// Package writers owns the output endgame shared by the msat tools:
// broken-pipe classification and the final flush-to-exit-code mapping.
// Layout knowledge lives in internal/output and internal/statsout.
package writers
