package engine

import (
	"errors"
	"fmt"
)

// Error represents a failure detected while converting a number.
//
// Conversion errors include:
//   - Unknown system: the requested id is not in the registry
//   - Schema defect: the system's table or base cannot express the value
//   - Negative input: conversion is defined for nonnegative integers only
//
// Error includes structured fields so callers can report which system
// and value failed without parsing the message.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// SystemID identifies the affected system.
	SystemID string

	// Number is the input value that triggered the error.
	Number int

	// Details contains additional context.
	Details map[string]string
}

// ErrorCode categorizes conversion errors.
type ErrorCode string

const (
	// ErrCodeSystemNotFound indicates the requested system id is not registered.
	ErrCodeSystemNotFound ErrorCode = "SYSTEM_NOT_FOUND"

	// ErrCodeSchemaDefect indicates the system's schema cannot express the value.
	ErrCodeSchemaDefect ErrorCode = "SCHEMA_DEFECT"

	// ErrCodeNegativeInput indicates the input was below zero.
	ErrCodeNegativeInput ErrorCode = "NEGATIVE_INPUT"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.SystemID != "" {
		return fmt.Sprintf("%s: %s (system=%s)", e.Code, e.Message, e.SystemID)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNotFound returns true if the error is an unknown-system error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeSystemNotFound
	}
	return false
}

// IsSchemaDefect returns true if the error reports a schema that cannot
// express the requested value. Uses errors.As to handle wrapped errors.
func IsSchemaDefect(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeSchemaDefect
	}
	return false
}

// IsNegativeInput returns true if the error rejects a negative input.
// Uses errors.As to handle wrapped errors.
func IsNegativeInput(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeNegativeInput
	}
	return false
}

// NewNotFoundError creates an Error for an unknown system id.
func NewNotFoundError(systemID string) *Error {
	return &Error{
		Code:     ErrCodeSystemNotFound,
		Message:  fmt.Sprintf("no system registered under id %q", systemID),
		SystemID: systemID,
	}
}

// NewNegativeInputError creates an Error for a negative input value.
func NewNegativeInputError(systemID string, n int) *Error {
	return &Error{
		Code:     ErrCodeNegativeInput,
		Message:  fmt.Sprintf("cannot convert negative value %d", n),
		SystemID: systemID,
		Number:   n,
	}
}

// NewStrandedRemainderError creates an Error for an additive table that
// leaves a remainder after greedy reduction.
func NewStrandedRemainderError(systemID string, n, remaining int) *Error {
	return &Error{
		Code:     ErrCodeSchemaDefect,
		Message:  fmt.Sprintf("symbol table cannot express %d: %d left after greedy reduction", n, remaining),
		SystemID: systemID,
		Number:   n,
		Details: map[string]string{
			"remaining": fmt.Sprintf("%d", remaining),
		},
	}
}
