// Package crs extracts the coordinate reference system of a LAS point
// cloud, as EPSG code(s), from the CRS records in the file header.
//
// LAS files declare their CRS either as a WKT string (LAS 1.4 style) or
// as a GeoTIFF key directory (LAS 1.2 style). Neither encoding guarantees
// that a usable EPSG code is present; extraction is heuristic and every
// failure mode is reported as a distinct error.
//
// Only numeric-range plausibility of extracted codes is checked, not
// whether a code exists in the EPSG registry.
package crs

import "strconv"

// Plausible EPSG code range. Registry codes live in [MinCode, MaxCode];
// anything outside cannot identify a CRS.
const (
	MinCode = 1024
	MaxCode = 32767
)

// EPSG identifies a coordinate reference system by EPSG code: a
// horizontal (planar) code plus an optional vertical (height) code.
// The zero value is not a valid CRS; use New or NewUnchecked.
type EPSG struct {
	horizontal  uint16
	vertical    uint16
	hasVertical bool
}

func codeInRange(code uint16) bool {
	return code >= MinCode && code <= MaxCode
}

// New builds an EPSG with only a horizontal code, rejecting codes outside
// [MinCode, MaxCode] with a *BadCodeError.
func New(horizontal uint16) (EPSG, error) {
	if !codeInRange(horizontal) {
		return EPSG{}, &BadCodeError{Code: horizontal}
	}
	return EPSG{horizontal: horizontal}, nil
}

// NewWithVertical builds an EPSG with both codes, rejecting either code
// outside [MinCode, MaxCode] with a *BadCodeError.
func NewWithVertical(horizontal, vertical uint16) (EPSG, error) {
	c, err := New(horizontal)
	if err != nil {
		return EPSG{}, err
	}
	if err := c.SetVertical(vertical); err != nil {
		return EPSG{}, err
	}
	return c, nil
}

// NewUnchecked builds an EPSG without range validation. Used when the
// caller wants to inspect or report an implausible code rather than
// discard it.
func NewUnchecked(horizontal uint16) EPSG {
	return EPSG{horizontal: horizontal}
}

// NewUncheckedWithVertical builds an EPSG with both codes and no range
// validation. The vertical code is always marked present, even when 0.
func NewUncheckedWithVertical(horizontal, vertical uint16) EPSG {
	return EPSG{horizontal: horizontal, vertical: vertical, hasVertical: true}
}

// Horizontal returns the horizontal EPSG code.
func (c EPSG) Horizontal() uint16 { return c.horizontal }

// Vertical returns the vertical EPSG code and whether one is present.
func (c EPSG) Vertical() (uint16, bool) { return c.vertical, c.hasVertical }

// SetHorizontal replaces the horizontal code, rejecting codes outside
// [MinCode, MaxCode] with a *BadCodeError.
func (c *EPSG) SetHorizontal(code uint16) error {
	if !codeInRange(code) {
		return &BadCodeError{Code: code}
	}
	c.horizontal = code
	return nil
}

// SetVertical replaces the vertical code, rejecting codes outside
// [MinCode, MaxCode] with a *BadCodeError.
func (c *EPSG) SetVertical(code uint16) error {
	if !codeInRange(code) {
		return &BadCodeError{Code: code}
	}
	c.vertical = code
	c.hasVertical = true
	return nil
}

// SetHorizontalUnchecked replaces the horizontal code without validation.
func (c *EPSG) SetHorizontalUnchecked(code uint16) {
	c.horizontal = code
}

// SetVerticalUnchecked replaces the vertical code without validation and
// always marks it present.
func (c *EPSG) SetVerticalUnchecked(code uint16) {
	c.vertical = code
	c.hasVertical = true
}

// ClearVertical marks the vertical code as absent.
func (c *EPSG) ClearVertical() {
	c.vertical = 0
	c.hasVertical = false
}

func (c EPSG) String() string {
	s := "EPSG:" + strconv.Itoa(int(c.horizontal))
	if c.hasVertical {
		s += "+" + strconv.Itoa(int(c.vertical))
	}
	return s
}

// checkParsed applies the post-extraction validation shared by the WKT
// and GeoTIFF paths: an out-of-range horizontal code is an error carrying
// the full parsed value, an out-of-range vertical code is dropped. A CRS
// without a vertical component is still usable, one without a horizontal
// component is not.
func checkParsed(c EPSG) (EPSG, error) {
	if !codeInRange(c.horizontal) {
		return c, &BadHorizontalError{CRS: c}
	}
	if c.hasVertical && !codeInRange(c.vertical) {
		c.ClearVertical()
	}
	return c, nil
}
