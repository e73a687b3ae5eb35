package models

import "fmt"

// ImportResult summarizes a bulk import. Failed rows are skipped, not fatal.
type ImportResult struct {
	TotalRows    int      `json:"totalRows"`
	SuccessCount int      `json:"successCount"`
	ErrorCount   int      `json:"errorCount"`
	Errors       []string `json:"errors"`
}

func NewImportResult() *ImportResult {
	return &ImportResult{Errors: []string{}}
}

// AddError records a failed row by its file row number, the header being row 1
func (r *ImportResult) AddError(row int, msg string) {
	r.ErrorCount++
	r.Errors = append(r.Errors, fmt.Sprintf("Row %d: %s", row, msg))
}

func (r *ImportResult) AddSuccess() {
	r.SuccessCount++
}
