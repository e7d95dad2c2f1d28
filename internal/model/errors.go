// Package model holds the data types shared across the inference pipeline:
// word observations, page-number candidates, sequences, and the error kinds
// the pipeline's components can raise.
package model

import "errors"

// ErrInvalidComposite, ErrSchemeMismatch and ErrSyntheticWithObservation
// guard invariants that must hold by construction; seeing them means a
// caller violated a contract.
var (
	// ErrInvalidComposite is raised when a value purported to be composite
	// fails re-parsing against its own template.
	ErrInvalidComposite = errors.New("pagenum: composite value does not match its own template")

	// ErrSchemeMismatch is raised when a candidate of one scheme is attached
	// to a sequence keyed by a different scheme.
	ErrSchemeMismatch = errors.New("pagenum: candidate scheme does not match sequence scheme")

	// ErrSyntheticWithObservation is raised when constructing a candidate
	// marked synthetic while also carrying an observation.
	ErrSyntheticWithObservation = errors.New("pagenum: synthetic candidate must not carry an observation")

	// ErrTrainingUnderdetermined is raised when a classifier would be fit
	// with zero positives or zero negatives. Callers recover by skipping
	// training and falling back to pass-1 output.
	ErrTrainingUnderdetermined = errors.New("pagenum: classifier training set has an empty class")

	// ErrCompositeCapReached indicates the composite scheme registry hit its
	// cap; the caller should log once and silently ignore further composite
	// discovery for the remainder of the run.
	ErrCompositeCapReached = errors.New("pagenum: composite scheme registry cap reached")

	// ErrExternalIO wraps a failure from an OCR or scandata collaborator.
	// It is always fatal to the run.
	ErrExternalIO = errors.New("pagenum: external collaborator I/O failure")
)
