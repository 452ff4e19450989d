// internal/output/common.go
package output

// TSVHeader is the canonical header row for text/TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tsequence_id\tstrand\tframe\tstart\tend\tlength\tprotein_length\tprotein"
