package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrEmptySelection = errors.New("selection is empty")
	ErrAborted        = errors.New("aborted by user")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "not_found"
	KindInvalidConfig   ErrorKind = "invalid_config"
	KindUnknownService  ErrorKind = "unknown_service"
	KindEmptySelection  ErrorKind = "empty_selection"
	KindNoMatch         ErrorKind = "no_match"
	KindIO              ErrorKind = "io"
	KindTemplateMissing ErrorKind = "template_missing"
	KindRender          ErrorKind = "render"
	KindAborted         ErrorKind = "aborted"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownServiceError lists every requested name that is absent from the catalog.
type UnknownServiceError struct {
	Names []string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service(s): %s", strings.Join(e.Names, ", "))
}

// NoMatchError reports a catalog filter that left nothing.
type NoMatchError struct {
	Filter string // "tags" or "name"
	Values []string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no services match %s %s", e.Filter, strings.Join(e.Values, ", "))
}

// TemplateMissingError is returned when a selected service has no compose fragment.
type TemplateMissingError struct {
	Service string
	Path    string
}

func (e *TemplateMissingError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("missing compose template for service %q", e.Service)
	}
	return fmt.Sprintf("missing compose template for service %q (%s)", e.Service, e.Path)
}

// RenderError wraps template parse and execution failures.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// KindOf classifies err. It returns "" for errors outside the taxonomy.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}

	// Structured values first: they may be wrapped by an OpError.
	var tm *TemplateMissingError
	if errors.As(err, &tm) {
		return KindTemplateMissing
	}
	var us *UnknownServiceError
	if errors.As(err, &us) {
		return KindUnknownService
	}
	var nm *NoMatchError
	if errors.As(err, &nm) {
		return KindNoMatch
	}
	if errors.Is(err, ErrEmptySelection) {
		return KindEmptySelection
	}
	if errors.Is(err, ErrAborted) {
		return KindAborted
	}

	var re *RenderError
	if errors.As(err, &re) {
		return KindRender
	}

	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
