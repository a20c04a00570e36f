package crs

import (
	"fmt"

	"github.com/edaniels/golog"
)

// Header is the view of a LAS header the extractor needs: the raw CRS
// records plus the global-encoding declaration bit. The lasfile package
// provides an implementation backed by a LAS file on disk.
type Header interface {
	// HasDeclaredWktCrs reports whether the header's global encoding
	// declares that a WKT CRS record exists.
	HasDeclaredWktCrs() bool

	// WktCrsBytes returns the raw bytes of the WKT CRS record, or nil
	// when the header carries none.
	WktCrsBytes() []byte

	// GeoTiffCrs returns the decoded GeoTIFF key directory, or nil when
	// the header carries none.
	GeoTiffCrs() (*GeoKeyDirectory, error)
}

// Extract returns the CRS declared in the header. A nil result with a
// nil error means the header carries no CRS record of any kind.
//
// When both a WKT and a GeoTIFF record are present the WKT record wins
// and the GeoTIFF record is ignored entirely. Mismatches between the
// header's declaration bit and the records actually found are logged as
// warnings; they never change the result.
func Extract(h Header) (*EPSG, error) {
	if wkt := h.WktCrsBytes(); wkt != nil {
		if !h.HasDeclaredWktCrs() {
			golog.Global.Warn("WKT CRS record found, but the header declares none")
		}
		if gt, err := h.GeoTiffCrs(); err == nil && gt != nil {
			golog.Global.Warn("both WKT and GeoTIFF CRS records found, parsing WKT")
		}
		c, err := ParseWKT(wkt)
		if err != nil {
			return nil, err
		}
		return &c, nil
	}

	gt, err := h.GeoTiffCrs()
	if err != nil {
		return nil, fmt.Errorf("reading GeoTIFF CRS record: %w", err)
	}
	if gt != nil {
		if h.HasDeclaredWktCrs() {
			golog.Global.Warn("header declares a WKT CRS record, but only a GeoTIFF record was found")
		}
		c, err := gt.EPSG()
		if err != nil {
			return nil, err
		}
		return &c, nil
	}

	if h.HasDeclaredWktCrs() {
		golog.Global.Warn("header declares a WKT CRS record, but none was found")
	}
	return nil, nil
}
