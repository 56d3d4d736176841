package httperr

import (
	"errors"
	"strings"
)

// BusinessError is an expected failure of a use case. Code is machine
// readable and decides the HTTP status; Message is shown to the user.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Message: DefaultMessage(code)}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

var messages = map[string]string{
	"invalid_credentials":      "Invalid credentials",
	"access_denied":            "Access denied",
	"account_blocked":          "Your account has been blocked",
	"email_already_registered": "Email is already registered",
	"invalid_token":            "Invalid or expired token",
	"invalid_refresh_token":    "Session expired, please log in again",
	"invalid_role":             "Invalid role",
	"invalid_status":           "Invalid verification status",
	"cannot_block_admin":       "Admin accounts cannot be blocked",
	"user_not_found":           "User not found",
	"delivery_boy_not_found":   "Delivery boy not found",
	"retailer_not_found":       "Retailer not found",
	"address_not_found":        "Address not found",
	"invalid_image":            "Unsupported image",
}

func DefaultMessage(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return strings.ReplaceAll(code, "_", " ")
}

// StatusFor maps a business code to an HTTP status. Everything that is not
// listed and is not a *_not_found code is a bad request.
func StatusFor(code string) int {
	switch code {
	case "invalid_credentials", "invalid_token", "invalid_refresh_token":
		return 401
	case "access_denied", "account_blocked":
		return 403
	case "email_already_registered":
		return 409
	}
	if strings.HasSuffix(code, "_not_found") {
		return 404
	}
	return 400
}
