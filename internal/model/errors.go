package model

import "fmt"

// DecodeError means no decoding strategy could read the statement file.
type DecodeError struct {
	File string
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("could not read %s in any supported format; check that it is a valid bank statement export (xlsx or delimited text)", e.File)
}

// StructuralError means the decoded table had an unusable column count.
type StructuralError struct {
	Columns int
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("unexpected statement structure with %d columns", e.Columns)
}

// EmptyInputError means no rows survived cleaning. Callers treat it as a
// zero-result success, not a failure.
type EmptyInputError struct{}

func (e EmptyInputError) Error() string {
	return "statement contains no data rows"
}

// PermissionError means the ledger workbook is locked, typically because
// it is open in a spreadsheet program.
type PermissionError struct {
	File string
}

func (e PermissionError) Error() string {
	return fmt.Sprintf("ledger %s is open in another program; close it and try again", e.File)
}

// WriteError is any other failure saving the ledger workbook.
type WriteError struct {
	File string
	Err  error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("saving ledger %s: %v", e.File, e.Err)
}

func (e WriteError) Unwrap() error { return e.Err }
