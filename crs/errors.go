package crs

import (
	"errors"
	"fmt"
)

var (
	// ErrUserDefinedCRS reports a GeoTIFF model-type key declaring a
	// user-defined (non-registry) CRS, which is not supported.
	ErrUserDefinedCRS = errors.New("user-defined CRS not supported")

	// ErrUnreadableWKT reports a WKT CRS record from which no code could
	// be extracted.
	ErrUnreadableWKT = errors.New("unreadable WKT CRS record")

	// ErrUnreadableGeoKeys reports a GeoTIFF CRS record that is malformed
	// or carries no horizontal code.
	ErrUnreadableGeoKeys = errors.New("unreadable GeoTIFF CRS record")
)

// BadCodeError reports an attempt to build or mutate an EPSG with a code
// outside [MinCode, MaxCode] through the checked path.
type BadCodeError struct {
	Code uint16
}

func (e *BadCodeError) Error() string {
	return fmt.Sprintf("EPSG code %d outside plausible range [%d, %d]", e.Code, MinCode, MaxCode)
}

// BadHorizontalError reports a parsed horizontal code outside the
// plausible EPSG range. The full parsed value is kept for diagnostics.
type BadHorizontalError struct {
	CRS EPSG
}

func (e *BadHorizontalError) Error() string {
	return fmt.Sprintf("parsed horizontal EPSG code %d outside plausible range [%d, %d]",
		e.CRS.Horizontal(), MinCode, MaxCode)
}

// UnsupportedDataError reports a CRS defined through a GeoTIFF payload
// this package does not resolve to an EPSG code (ASCII or double data,
// or an unknown inline model type). The untouched payload is attached so
// callers can still inspect it.
type UnsupportedDataError struct {
	Data KeyData
}

func (e *UnsupportedDataError) Error() string {
	return fmt.Sprintf("CRS defined through unsupported GeoTIFF data %v", e.Data)
}

// UndefinedKeyError reports a GeoKey whose payload location is not
// understood for that key.
type UndefinedKeyError struct {
	ID uint16
}

func (e *UndefinedKeyError) Error() string {
	return fmt.Sprintf("undefined data for GeoTIFF key %d", e.ID)
}
