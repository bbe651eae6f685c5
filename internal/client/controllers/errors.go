package controllers

import "errors"

var (
	// ErrBusy is returned when a submission is already in flight.
	ErrBusy = errors.New("another request is in progress")
	// ErrInvalidInput is returned when client-side validation blocks a call.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoSession is returned when an operation needs a signed-in user.
	ErrNoSession = errors.New("not signed in")
)
