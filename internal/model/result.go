package model

// Result is the outcome of one pipeline run over a single statement file.
// Stages return their counts and the pipeline aggregates them here; there
// is no shared mutable state between stages.
type Result struct {
	Success               bool
	TransactionsProcessed int
	DebitsFound           int
	NewEntries            int
	DuplicatesSkipped     int
	NonDebitsSkipped      int
	Err                   string
}

// Failure wraps an error into a failed Result.
func Failure(err error) Result {
	return Result{Err: err.Error()}
}
