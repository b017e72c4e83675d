package output

// DatasetTrailer is the standalone line closing each dataset block in
// per-individual mode. Keep this as the single source of truth.
const DatasetTrailer = "//"
