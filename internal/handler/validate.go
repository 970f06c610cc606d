package handler

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldError is one entry in a validation error response body.
type FieldError struct {
	Msg  string `json:"msg"`
	Path string `json:"path,omitempty"`
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validator collects field errors so a response can report every problem
// at once instead of only the first.
type validator struct {
	errs []FieldError
}

func (v *validator) add(path, msg string) {
	v.errs = append(v.errs, FieldError{Msg: msg, Path: path})
}

// require flags empty or whitespace-only values.
func (v *validator) require(path, value, msg string) {
	if strings.TrimSpace(value) == "" {
		v.add(path, msg)
	}
}

// minLen flags values shorter than n characters.
func (v *validator) minLen(path, value string, n int) {
	if len(value) < n {
		v.add(path, fmt.Sprintf("%s must be at least %d characters", path, n))
	}
}

// email flags values that are not plausible email addresses.
func (v *validator) email(path, value string) {
	if !emailPattern.MatchString(value) {
		v.add(path, "Valid email is required")
	}
}

// ok reports whether no errors were collected.
func (v *validator) ok() bool {
	return len(v.errs) == 0
}
