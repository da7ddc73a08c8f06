package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error surfaced to the user. Redirect, when
// set, tells the caller where to navigate after showing the message.
type Error struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
	Err      error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on code and message so wrapped copies compare equal to the
// sentinel they were derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Wrap returns a copy of sentinel carrying err as the cause.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{Code: sentinel.Code, Message: sentinel.Message, Redirect: sentinel.Redirect, Err: err}
}

// WithRedirect returns a copy of sentinel with a navigation target attached.
func WithRedirect(sentinel *Error, redirect string) *Error {
	return &Error{Code: sentinel.Code, Message: sentinel.Message, Redirect: redirect, Err: sentinel.Err}
}

// Common error types
var (
	ErrBadRequest     = New(http.StatusBadRequest, "Bad request", nil)
	ErrUnauthorized   = New(http.StatusUnauthorized, "Unauthorized", nil)
	ErrForbidden      = New(http.StatusForbidden, "Forbidden", nil)
	ErrNotFound       = New(http.StatusNotFound, "Not found", nil)
	ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)
)

// Session and checkout error types. Login-related errors carry the login
// redirect so every screen resolves auth failures the same way.
var (
	ErrLoginRequired   = &Error{Code: http.StatusUnauthorized, Message: "Please log in to continue.", Redirect: "/login"}
	ErrSessionExpired  = &Error{Code: http.StatusUnauthorized, Message: "Session expired. Please log in again.", Redirect: "/login"}
	ErrSessionRejected = &Error{Code: http.StatusUnauthorized, Message: "Session may be invalid. Please log in again.", Redirect: "/login"}
	ErrInvalidToken    = New(http.StatusUnauthorized, "Invalid token", nil)
	ErrRoleDenied      = &Error{Code: http.StatusForbidden, Message: "Access denied.", Redirect: "/"}
	ErrEmptyCart       = New(http.StatusBadRequest, "Your cart is empty.", nil)
	ErrNotConfirmed    = New(http.StatusBadRequest, "Order was not confirmed.", nil)
	ErrOrderFailed     = New(http.StatusBadGateway, "Failed to place order. Please try again.", nil)
	ErrUpstream        = New(http.StatusBadGateway, "Request failed. Please try again.", nil)
)

// Respond writes err as the JSON response. Unknown errors become a generic
// internal server error so no raw cause leaks to the user.
func Respond(c *gin.Context, err error) {
	appErr, ok := err.(*Error)
	if !ok {
		appErr = Wrap(ErrInternalServer, err)
	}
	c.JSON(appErr.Code, appErr)
}
