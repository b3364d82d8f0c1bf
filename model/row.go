package model

// Row is a flexible map representing one raw registry item as returned by the
// open API. Column names are Korean registry codes (e.g. "PRDLST_NM",
// "BSSH_NM") and values are heterogeneous: string, number, or nil. Schemas
// vary per service ID, so callers must tolerate missing columns.
// Rows are read-only once handed to the pipeline.
type Row map[string]interface{}

// GetString returns the value under key as a string if present and non-empty.
func (r Row) GetString(key string) (string, bool) {
	if v, ok := r[key]; ok {
		if s, sok := v.(string); sok && s != "" {
			return s, true
		}
	}
	return "", false
}

// Clone returns a shallow copy of the row. The pipeline clones rows before
// any internal bookkeeping so caller-supplied tables are never mutated.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
