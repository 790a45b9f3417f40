// Package krformat provides Korean display formatting and PII masking utilities.
//
// The pad, mask and format subpackages never fail: input they do not recognise is
// returned unchanged. The error codes declared here are only surfaced by the
// explicit Validate and Parse helpers.
package krformat

import (
	"net/http"

	"github.com/Dorico-Dynamics/txova-go-core/errors"
)

// Format-specific error codes extending txova-go-core/errors.
const (
	// CodeInvalidPhone indicates the value is not a recognised phone number shape.
	CodeInvalidPhone errors.Code = "INVALID_PHONE"
	// CodeInvalidBusinessNumber indicates the value is not a 10-digit business registration number.
	CodeInvalidBusinessNumber errors.Code = "INVALID_BUSINESS_NUMBER"
	// CodeInvalidRRN indicates the value is not a 13-digit resident registration number.
	CodeInvalidRRN errors.Code = "INVALID_RRN"
	// CodeInvalidEmail indicates the value does not split into a local part and a domain.
	CodeInvalidEmail errors.Code = "INVALID_EMAIL"
	// CodeInvalidNumber indicates the value could not be parsed as a number.
	CodeInvalidNumber errors.Code = "INVALID_NUMBER"
	// CodeInvalidDate indicates the value could not be parsed as a calendar date.
	CodeInvalidDate errors.Code = "INVALID_DATE"
)

// codeHTTPStatus maps format error codes to HTTP status codes.
var codeHTTPStatus = map[errors.Code]int{
	CodeInvalidPhone:          http.StatusBadRequest,
	CodeInvalidBusinessNumber: http.StatusBadRequest,
	CodeInvalidRRN:            http.StatusBadRequest,
	CodeInvalidEmail:          http.StatusBadRequest,
	CodeInvalidNumber:         http.StatusBadRequest,
	CodeInvalidDate:           http.StatusBadRequest,
}

// HTTPStatus returns the HTTP status code for the given format error code.
// Returns 500 if the code is not a known format code.
func HTTPStatus(code errors.Code) int {
	if status, ok := codeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error constructors for format-specific errors.

// InvalidPhone creates an error indicating an unrecognised phone number.
func InvalidPhone(message string) *errors.AppError {
	return errors.New(CodeInvalidPhone, message)
}

// InvalidBusinessNumber creates an error indicating an invalid business registration number.
func InvalidBusinessNumber(message string) *errors.AppError {
	return errors.New(CodeInvalidBusinessNumber, message)
}

// InvalidRRN creates an error indicating an invalid resident registration number.
func InvalidRRN(message string) *errors.AppError {
	return errors.New(CodeInvalidRRN, message)
}

// InvalidEmail creates an error indicating a malformed email address.
func InvalidEmail(message string) *errors.AppError {
	return errors.New(CodeInvalidEmail, message)
}

// InvalidNumber creates an error indicating a value could not be parsed as a number.
// The cause is wrapped but not exposed to clients.
func InvalidNumber(message string, cause error) *errors.AppError {
	return errors.Wrap(CodeInvalidNumber, message, cause)
}

// InvalidDate creates an error indicating a value could not be parsed as a date.
func InvalidDate(message string) *errors.AppError {
	return errors.New(CodeInvalidDate, message)
}

// Error checking helpers.

// IsInvalidPhone checks if the error is an invalid phone error.
func IsInvalidPhone(err error) bool {
	return errors.IsCode(err, CodeInvalidPhone)
}

// IsInvalidBusinessNumber checks if the error is an invalid business number error.
func IsInvalidBusinessNumber(err error) bool {
	return errors.IsCode(err, CodeInvalidBusinessNumber)
}

// IsInvalidRRN checks if the error is an invalid RRN error.
func IsInvalidRRN(err error) bool {
	return errors.IsCode(err, CodeInvalidRRN)
}

// IsInvalidEmail checks if the error is an invalid email error.
func IsInvalidEmail(err error) bool {
	return errors.IsCode(err, CodeInvalidEmail)
}

// IsInvalidNumber checks if the error is an invalid number error.
func IsInvalidNumber(err error) bool {
	return errors.IsCode(err, CodeInvalidNumber)
}

// IsInvalidDate checks if the error is an invalid date error.
func IsInvalidDate(err error) bool {
	return errors.IsCode(err, CodeInvalidDate)
}
