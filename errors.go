package selenium

import (
	"fmt"

	"github.com/pkg/errors"
)

// WebDriver error codes, as sent by remote ends in the "error" field of a
// failed response.
const (
	ErrCodeNoSuchElement          = "no such element"
	ErrCodeNoSuchFrame            = "no such frame"
	ErrCodeNoSuchWindow           = "no such window"
	ErrCodeNoSuchAlert            = "no such alert"
	ErrCodeNoSuchShadowRoot       = "no such shadow root"
	ErrCodeUnknownCommand         = "unknown command"
	ErrCodeStaleElementReference  = "stale element reference"
	ErrCodeElementNotInteractable = "element not interactable"
	ErrCodeInvalidElementState    = "invalid element state"
	ErrCodeInvalidArgument        = "invalid argument"
	ErrCodeInvalidSelector        = "invalid selector"
	ErrCodeJavascriptError        = "javascript error"
	ErrCodeTimeout                = "timeout"
	ErrCodeScriptTimeout          = "script timeout"
	ErrCodeUnexpectedAlertOpen    = "unexpected alert open"
	ErrCodeUnableToSetCookie      = "unable to set cookie"
	ErrCodeInvalidCookieDomain    = "invalid cookie domain"
	ErrCodeUnknownError           = "unknown error"
)

var (
	// ErrUnsupportedOperation is returned when an optional capability, such
	// as script execution, is not implemented by the underlying object.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrInvalidArgument is returned when a required argument is missing.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Error is a failure reported by the browser.
type Error struct {
	// Err is the WebDriver error code, e.g. "no such element".
	Err string
	// Message is the detailed, human-readable message.
	Message string
}

// NewError returns an Error with the given code and formatted message.
func NewError(code, format string, args ...interface{}) *Error {
	return &Error{Err: code, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Err
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Message)
}

// ErrorCode returns the WebDriver error code carried by err, or the empty
// string if err is not, and does not wrap, an *Error.
func ErrorCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Err
	}
	return ""
}

// IsNoSuchElement reports whether err means the locator matched nothing.
func IsNoSuchElement(err error) bool {
	return ErrorCode(err) == ErrCodeNoSuchElement
}

// InvalidArgument returns ErrInvalidArgument annotated with the name of the
// missing argument.
func InvalidArgument(name string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s must not be empty", name)
}

// Unsupported returns ErrUnsupportedOperation annotated with the subject
// lacking the capability.
func Unsupported(subject, capability string) error {
	return errors.Wrapf(ErrUnsupportedOperation, "underlying %s does not implement %s", subject, capability)
}
