package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Markup grammar errors
	ErrUnmatchedBracket        ErrorCode = "UNMATCHED_BRACKET"
	ErrNestedBracket           ErrorCode = "NESTED_BRACKET"
	ErrUnknownModifier         ErrorCode = "UNKNOWN_MODIFIER"
	ErrMalformedNumericCode    ErrorCode = "MALFORMED_NUMERIC_CODE"
	ErrMalformedHexCode        ErrorCode = "MALFORMED_HEX_CODE"
	ErrMissingLiteralDelimiter ErrorCode = "MISSING_LITERAL_DELIMITER"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Catalog errors
	ErrCatalogLoad    ErrorCode = "CATALOG_LOAD"
	ErrCatalogParse   ErrorCode = "CATALOG_PARSE"
	ErrCatalogInvalid ErrorCode = "CATALOG_INVALID"

	// Generation errors
	ErrGenerate  ErrorCode = "GENERATE"
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// Detail keys attached to grammar errors
const (
	DetailIndex      = "index"
	DetailToken      = "token"
	DetailSuggestion = "suggestion"
)

// grammarCodes lists the codes produced while scanning markup
var grammarCodes = map[ErrorCode]bool{
	ErrUnmatchedBracket:        true,
	ErrNestedBracket:           true,
	ErrUnknownModifier:         true,
	ErrMalformedNumericCode:    true,
	ErrMalformedHexCode:        true,
	ErrMissingLiteralDelimiter: true,
}

// FancyError represents a structured error with code and details
type FancyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FancyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FancyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FancyError) Is(target error) bool {
	var targetErr *FancyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FancyError with the given code and message
func New(code ErrorCode, message string) *FancyError {
	return &FancyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FancyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FancyError {
	return &FancyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FancyError
func Wrap(err error, code ErrorCode, message string) *FancyError {
	if err == nil {
		return nil
	}
	return &FancyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FancyError {
	if err == nil {
		return nil
	}
	return &FancyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FancyError) WithDetail(key string, value interface{}) *FancyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// At records the rune index and token a grammar error refers to
func (e *FancyError) At(index int, token string) *FancyError {
	return e.WithDetail(DetailIndex, index).WithDetail(DetailToken, token)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fancyErr *FancyError
	if errors.As(err, &fancyErr) {
		return fancyErr.Code == code
	}
	return false
}

// IsGrammarError reports whether err was raised while scanning markup
func IsGrammarError(err error) bool {
	return grammarCodes[GetErrorCode(err)]
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FancyError
func GetErrorCode(err error) ErrorCode {
	var fancyErr *FancyError
	if errors.As(err, &fancyErr) {
		return fancyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FancyError
func GetErrorDetails(err error) map[string]interface{} {
	var fancyErr *FancyError
	if errors.As(err, &fancyErr) {
		return fancyErr.Details
	}
	return nil
}

// Index returns the rune index a grammar error points at
func Index(err error) (int, bool) {
	idx, ok := GetErrorDetails(err)[DetailIndex].(int)
	return idx, ok
}

// Token returns the offending token of a grammar error, or ""
func Token(err error) string {
	tok, _ := GetErrorDetails(err)[DetailToken].(string)
	return tok
}

// Suggestion returns the closest known modifier for an unknown one, or ""
func Suggestion(err error) string {
	s, _ := GetErrorDetails(err)[DetailSuggestion].(string)
	return s
}
