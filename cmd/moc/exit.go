package main

import (
	"errors"
	"strconv"
)

// Exit statuses shared by the tools.
const (
	exitOK        = 0
	exitUsage     = 1
	exitNoFile    = 10
	exitIOError   = 20
	exitDecode    = 30
	exitExtraChar = 50
)

var errIllegalChars = errors.New("input contains illegal characters")

// exitError carries the status a command wants the process to exit with.
// The cause has already been reported when an exitError is returned.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit status " + strconv.Itoa(e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }
