// Package export renders tabular timetable data as CSV or PDF documents.
package export

// Table defines tabular export content. Rows are keyed by header name so
// sparse timetable grids render empty cells instead of shifting columns.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// row materialises one ordered record for the writer.
func (t Table) row(values map[string]string) []string {
	record := make([]string, len(t.Headers))
	for i, header := range t.Headers {
		record[i] = values[header]
	}
	return record
}
