package seed

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode string

const (
	// CodeParse marks malformed source content or a missing source file.
	CodeParse ErrorCode = "parse"
	// CodeReferenceNotFound marks a name that does not resolve to a stored entity.
	CodeReferenceNotFound ErrorCode = "reference_not_found"
	// CodeDuplicateApplication marks a ledger race lost to another run. Never surfaced by Run.
	CodeDuplicateApplication ErrorCode = "duplicate_application"
	// CodeStorage marks a transactional failure unrelated to the data itself.
	CodeStorage ErrorCode = "storage"
)

type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap tags err with code unless it already carries a seed code.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return NewError(code, op, err.Error(), err)
}

func IsCode(err error, code ErrorCode) bool {
	var se *Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == code
}

func CodeOf(err error) ErrorCode {
	var se *Error
	if !errors.As(err, &se) {
		return ""
	}
	return se.Code
}

func parseError(op, message string, cause error) error {
	return NewError(CodeParse, op, message, cause)
}

func referenceNotFound(kind Kind, name string, from Record) error {
	msg := fmt.Sprintf("%s %q not found", kind, name)
	if from != nil {
		msg = fmt.Sprintf("%s (referenced by %s %q)", msg, from.Kind(), from.Key())
	}
	return NewError(CodeReferenceNotFound, "seed.resolve", msg, nil)
}

// atSource prefixes a seed error's message with the file and record position.
// index < 0 means the error is not tied to a single record.
func atSource(err error, path string, index int) error {
	var se *Error
	if !errors.As(err, &se) {
		return err
	}
	where := path
	if index >= 0 {
		where = fmt.Sprintf("%s record %d", path, index)
	}
	return &Error{
		Code:    se.Code,
		Op:      se.Op,
		Message: fmt.Sprintf("%s: %s", where, se.Message),
		Cause:   se.Cause,
	}
}
