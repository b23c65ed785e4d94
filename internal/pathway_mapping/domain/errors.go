package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyResult = errors.New("pathway is empty")
	ErrRunNotFound = errors.New("conversion run not found")
)

// ParseError means the input is not a readable pathway model.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse BioPAX model: %v", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// PropertyAccessMiss is a property that is undefined for an element or
// holds a value of the wrong shape. It is recovered where it occurs.
type PropertyAccessMiss struct {
	URI      string
	Property string
	Reason   string
}

func (e *PropertyAccessMiss) Error() string {
	return fmt.Sprintf("property %q of %s: %s", e.Property, e.URI, e.Reason)
}

// MalformedXrefError is an xref without a db name or an id.
type MalformedXrefError struct {
	URI   string
	Owner string
}

func (e *MalformedXrefError) Error() string {
	return fmt.Sprintf("xref %s of %s has no db or id", e.URI, e.Owner)
}

// SerializationError means relation output could not be written.
type SerializationError struct {
	Cause error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("cannot write SIF output: %v", e.Cause)
}

func (e *SerializationError) Unwrap() error { return e.Cause }
