package utils

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures for the transport layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindStateConflict
	KindNoProduct
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStateConflict:
		return "state_conflict"
	case KindNoProduct:
		return "no_product"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// AppError is a classified, client-presentable error.
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Status  int // overrides the status derived from Kind when non-zero
}

func (e *AppError) Error() string {
	return e.Message
}

// NewValidationError reports a missing or malformed input field.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Code: "validation", Message: message}
}

var (
	ErrTokenRequired    = &AppError{Kind: KindValidation, Code: "token_required", Message: "Token is required"}
	ErrTokenNotFound    = &AppError{Kind: KindNotFound, Code: "token_not_found", Message: "Invalid token"}
	ErrTokenInactive    = &AppError{Kind: KindStateConflict, Code: "token_inactive", Message: "Token is inactive"}
	ErrDeviceConflict   = &AppError{Kind: KindStateConflict, Code: "device_conflict", Message: "Token already in use on another device"}
	ErrTokenExists      = &AppError{Kind: KindStateConflict, Code: "token_exists", Message: "Token already exists", Status: http.StatusBadRequest}
	ErrNoProduct        = &AppError{Kind: KindNoProduct, Code: "no_product", Message: "No product found. Please create a product in Synthesise Mode first."}
	ErrInvalidAssetType = &AppError{Kind: KindValidation, Code: "invalid_asset_type", Message: "Invalid asset type"}
)

// KindOf returns the kind of the first AppError or upstream failure in err's
// chain, and KindInternal otherwise.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	var up interface{ Upstream() bool }
	if errors.As(err, &up) && up.Upstream() {
		return KindUpstream
	}
	return KindInternal
}

// StatusFor maps an error to the HTTP status a handler should answer with.
func StatusFor(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Status != 0 {
		return appErr.Status
	}
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound, KindNoProduct:
		return http.StatusNotFound
	case KindStateConflict:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
