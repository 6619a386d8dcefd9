// Package form implements the submit lifecycle every screen shares: collect
// field values, validate locally, call the API, surface exactly one status
// banner. Screens differ only in their validate and submit functions.
package form

import (
	"context"
	"errors"
)

// ErrSubmitInFlight is returned when Submit is called while a previous
// submission has not finished. The double-click guard.
var ErrSubmitInFlight = errors.New("submit already in progress")

// StatusKind distinguishes the two banner flavors.
type StatusKind int

const (
	StatusSuccess StatusKind = iota + 1
	StatusError
)

// Status is the single-slot banner shown after a submission attempt.
// Setting a new one replaces whatever was there.
type Status struct {
	Kind    StatusKind
	Message string
}

// ValidationError marks a local pre-submit failure. When Submit returns one,
// no request was issued.
type ValidationError struct {
	err error
}

func (e *ValidationError) Error() string { return e.err.Error() }
func (e *ValidationError) Unwrap() error { return e.err }

// Invalid builds a ValidationError from a plain message.
func Invalid(msg string) *ValidationError {
	return &ValidationError{err: errors.New(msg)}
}

// InvalidErr wraps an existing error (e.g. a validate sentinel) so callers
// can still match it with errors.Is.
func InvalidErr(err error) *ValidationError {
	return &ValidationError{err: err}
}

// ValidateFunc inspects the filled fields before any network traffic.
// Returning a non-nil error aborts the submit locally.
type ValidateFunc func(c *Controller) error

// SubmitFunc performs the request and applies side effects (store the
// session, update the cached profile). It returns the success message to
// display; an empty string falls back to a generic one.
type SubmitFunc func(ctx context.Context, c *Controller) (string, error)

// Controller owns one screen's field values, banner, and in-flight flag.
// Controllers are independent of each other; two screens may have requests
// in flight at the same time, but one controller never does.
type Controller struct {
	fields  map[string]string
	toggles map[string]bool

	status     *Status
	submitting bool

	validate ValidateFunc
	submit   SubmitFunc
}

func New(validate ValidateFunc, submit SubmitFunc) *Controller {
	return &Controller{
		fields:   map[string]string{},
		toggles:  map[string]bool{},
		validate: validate,
		submit:   submit,
	}
}

// SetField stores a text field value. The banner is left untouched.
func (c *Controller) SetField(name, value string) { c.fields[name] = value }

// Field returns the current value of a text field ("" when unset).
func (c *Controller) Field(name string) string { return c.fields[name] }

// SetToggle stores a boolean field value.
func (c *Controller) SetToggle(name string, value bool) { c.toggles[name] = value }

// Toggle returns the current value of a boolean field.
func (c *Controller) Toggle(name string) bool { return c.toggles[name] }

// ClearFields resets the named text fields. Used by screens that must not
// retain secrets after a successful submit.
func (c *Controller) ClearFields(names ...string) {
	for _, name := range names {
		delete(c.fields, name)
	}
}

// Status returns the current banner, nil when none has been set yet.
func (c *Controller) Status() *Status { return c.status }

// Submitting reports whether a submission is in flight.
func (c *Controller) Submitting() bool { return c.submitting }

// Submit runs the screen's validation and, only if it passes, the request.
//
//   - Re-entrant calls fail fast with ErrSubmitInFlight, leaving the banner
//     and the in-flight submission alone.
//   - A validation failure sets an error banner and returns a
//     *ValidationError; the network is never touched.
//   - A request failure sets an error banner with the normalized message.
//   - Success sets a success banner, preferring the server's message.
func (c *Controller) Submit(ctx context.Context) error {
	if c.submitting {
		return ErrSubmitInFlight
	}
	c.submitting = true
	defer func() { c.submitting = false }()

	if c.validate != nil {
		if err := c.validate(c); err != nil {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				verr = InvalidErr(err)
			}
			c.status = &Status{Kind: StatusError, Message: verr.Error()}
			return verr
		}
	}

	msg, err := c.submit(ctx, c)
	if err != nil {
		c.status = &Status{Kind: StatusError, Message: err.Error()}
		return err
	}

	if msg == "" {
		msg = "saved"
	}
	c.status = &Status{Kind: StatusSuccess, Message: msg}
	return nil
}
