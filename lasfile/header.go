// Package lasfile exposes the CRS records of a LAS file header through
// the crs.Header interface, using lidario for the file access.
package lasfile

import (
	"fmt"
	"strings"

	"github.com/jblindsay/lidario"

	"github.com/pspoerri/lascrs/crs"
)

// CRS (E)VLR record IDs, all under the LASF_Projection user ID.
const (
	projectionUserID = "lasf_projection"

	recordWktCRS          = 2112
	recordGeoKeyDirectory = 34735
	recordGeoDoubleParams = 34736
	recordGeoASCIIParams  = 34737
)

// wktCrsBit is bit 4 of the header's global encoding field (LAS 1.4):
// set when the CRS is stored as WKT rather than GeoTIFF keys.
const wktCrsBit = 0x10

// Header holds the CRS-relevant signals of one LAS header. It implements
// crs.Header.
type Header struct {
	declaredWkt bool
	wkt         []byte
	directory   []byte
	doubles     []byte
	ascii       []byte
}

// Open reads the header and variable length records of the LAS file at
// path. Point data is not read.
func Open(path string) (*Header, error) {
	lf, err := lidario.NewLasFile(path, "rh")
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer lf.Close()
	return NewHeader(lf), nil
}

// NewHeader collects the CRS records of an already-open LAS file.
func NewHeader(lf *lidario.LasFile) *Header {
	h := &Header{
		declaredWkt: lf.Header.GlobalEncoding.Value&wktCrsBit != 0,
	}
	for _, vlr := range lf.VlrData {
		userID := strings.TrimRight(vlr.UserID, "\x00 ")
		if !strings.EqualFold(userID, projectionUserID) {
			continue
		}
		switch vlr.RecordID {
		case recordWktCRS:
			h.wkt = vlr.BinaryData
		case recordGeoKeyDirectory:
			h.directory = vlr.BinaryData
		case recordGeoDoubleParams:
			h.doubles = vlr.BinaryData
		case recordGeoASCIIParams:
			h.ascii = vlr.BinaryData
		}
	}
	return h
}

// HasDeclaredWktCrs reports the header's WKT-CRS global encoding bit.
func (h *Header) HasDeclaredWktCrs() bool { return h.declaredWkt }

// WktCrsBytes returns the raw WKT CRS record, or nil.
func (h *Header) WktCrsBytes() []byte { return h.wkt }

// GeoTiffCrs decodes the GeoTIFF key directory record, or returns nil
// when the header carries none.
func (h *Header) GeoTiffCrs() (*crs.GeoKeyDirectory, error) {
	if h.directory == nil {
		return nil, nil
	}
	dir, err := crs.DecodeGeoKeys(h.directory, h.doubles, h.ascii)
	if err != nil {
		return nil, err
	}
	return &dir, nil
}
