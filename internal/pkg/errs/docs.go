// Package errs provides the typed errors shared by the order wizard service.
//
// Every error type pairs a sentinel (ErrValueIsRequired, ErrValueIsInvalid, ...)
// with a struct carrying details; Unwrap returns the sentinel so callers can
// classify failures with errors.Is.
//
// ValidationError is the aggregate form used by the wizard: it collects one
// human readable message per failing field and never stops at the first one.
package errs
