// Package errs defines the error kinds shared by the prompter packages.
//
// It builds on github.com/cockroachdb/errors. Every sentinel belongs to one
// of the kinds below so callers can classify a failure without knowing the
// concrete sentinel.
//
//	if errs.IsUserInput(err) {
//	    // show the message and abort the action
//	}
package errs

import (
	crdb "github.com/cockroachdb/errors"
)

// Re-exports used across the module.
var (
	New      = crdb.New
	Newf     = crdb.Newf
	Wrap     = crdb.Wrap
	Wrapf    = crdb.Wrapf
	WithHint = crdb.WithHint
	Is       = crdb.Is
	As       = crdb.As
	Hints    = crdb.GetAllHints
)

// Kinds.
var (
	ErrUserInput   = crdb.New("user input error")
	ErrNotFound    = crdb.New("not found")
	ErrPersistence = crdb.New("persistence error")
)

// User input errors.
var (
	ErrNoSuchSection    = userInput("section: no such section")
	ErrCharacterLimit   = userInput("section: character section limit reached")
	ErrLastCharacter    = userInput("section: at least one character section is required")
	ErrUnsupportedGroup = userInput("section: nested groups inside a wrapper are not supported")
	ErrIndexOutOfRange  = userInput("collection: index out of range")
	ErrInvalidWeight    = userInput("collection: invalid weight")
	ErrEmptySelection   = userInput("app: nothing selected")
	ErrNameRequired     = userInput("template: name required")
	ErrTemplateExists   = userInput("template: already exists")
	ErrCategoryRequired = userInput("dictionary: category name required")
	ErrCategoryExists   = userInput("dictionary: category already exists")
	ErrCategoryUnused   = userInput("dictionary: an existing category is unused")
	ErrTagRequired      = userInput("dictionary: tag text required")
)

// Data-not-found errors.
var (
	ErrTemplateNotFound = notFound("template: not found")
	ErrCategoryNotFound = notFound("dictionary: category not found")
	ErrTagNotFound      = notFound("dictionary: tag not found")
)

var (
	userInputErrs []error
	notFoundErrs  []error
)

// Sentinels are registered per kind instead of marked: a marked sentinel
// compares equal to every other sentinel carrying the same mark.
func userInput(msg string) error {
	err := crdb.New(msg)
	userInputErrs = append(userInputErrs, err)
	return err
}

func notFound(msg string) error {
	err := crdb.New(msg)
	notFoundErrs = append(notFoundErrs, err)
	return err
}

func isAny(err error, kind error, members []error) bool {
	if err == nil {
		return false
	}
	if crdb.Is(err, kind) {
		return true
	}
	return crdb.IsAny(err, members...)
}

// Persistence marks err as a persistence failure.
func Persistence(err error, msg string) error {
	if err == nil {
		return nil
	}
	return crdb.Mark(crdb.Wrap(err, msg), ErrPersistence)
}

// UserInput marks err as caused by invalid user input.
func UserInput(err error, msg string) error {
	if err == nil {
		return nil
	}
	return crdb.Mark(crdb.Wrap(err, msg), ErrUserInput)
}

// IsUserInput reports whether err was caused by invalid user input.
func IsUserInput(err error) bool { return isAny(err, ErrUserInput, userInputErrs) }

// IsNotFound reports whether err names something that does not exist.
func IsNotFound(err error) bool { return isAny(err, ErrNotFound, notFoundErrs) }

// IsPersistence reports whether err came from the storage layer.
func IsPersistence(err error) bool { return err != nil && crdb.Is(err, ErrPersistence) }

// Kind returns a short label for the error class, used in JSON output.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsUserInput(err):
		return "user_input"
	case IsNotFound(err):
		return "not_found"
	case IsPersistence(err):
		return "persistence"
	default:
		return "internal"
	}
}
