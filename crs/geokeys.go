package crs

import (
	"encoding/binary"
	"fmt"
	"math"
)

// GeoKey IDs relevant for CRS extraction. Remaining keys carry units,
// citations and descriptions and are ignored.
const (
	keyModelType    = 1024 // projected / geographic / user-defined indicator
	keyGeodeticCRS  = 2048 // geographic EPSG code
	keyProjectedCRS = 3072 // projected EPSG code
	keyVerticalCRS  = 4096 // vertical EPSG code
)

// Model-type values for key 1024.
const (
	modelTypeProjected   = 1
	modelTypeGeographic  = 2
	modelTypeGeocentric  = 3
	modelTypeUserDefined = 32767
)

// TIFF tags holding out-of-line GeoKey payloads.
const (
	geoDoubleParamsTag = 34736
	geoASCIIParamsTag  = 34737
)

// KeyData is one decoded GeoKey payload: an inline short, text from the
// ASCII params record, or values from the double params record. Only
// KeyShort payloads are resolved to EPSG codes; the other kinds are
// carried so callers can inspect them.
type KeyData interface {
	isKeyData()
}

// KeyShort is a payload stored inline in the key entry.
type KeyShort uint16

// KeyASCII is a payload read from the ASCII params record.
type KeyASCII string

// KeyDoubles is a payload read from the double params record.
type KeyDoubles []float64

func (KeyShort) isKeyData()   {}
func (KeyASCII) isKeyData()   {}
func (KeyDoubles) isKeyData() {}

// GeoKeyEntry is one GeoKey directory entry with its payload resolved.
type GeoKeyEntry struct {
	ID   uint16
	Data KeyData
}

// GeoKeyDirectory is a decoded GeoTIFF key directory, entries in
// directory order.
type GeoKeyDirectory struct {
	Entries []GeoKeyEntry
}

// DecodeGeoKeys decodes a GeoTIFF key directory record. Out-of-line
// payloads are resolved against the double params and ASCII params
// records; an entry referencing a record that was not supplied, or
// reaching past its end, fails with ErrUnreadableGeoKeys.
//
// Directory layout: four little-endian uint16 header fields (directory
// version, revision, minor revision, entry count), then per entry four
// little-endian uint16 fields (key id, payload location tag, value
// count, value/offset). The version fields are conventionally fixed and
// not validated.
func DecodeGeoKeys(directory, doubles, ascii []byte) (GeoKeyDirectory, error) {
	if len(directory) < 8 {
		return GeoKeyDirectory{}, fmt.Errorf("%w: directory header truncated (%d bytes)", ErrUnreadableGeoKeys, len(directory))
	}
	count := int(binary.LittleEndian.Uint16(directory[6:8]))

	entries := make([]GeoKeyEntry, 0, count)
	for i := 0; i < count; i++ {
		base := 8 + i*8
		if base+8 > len(directory) {
			return GeoKeyDirectory{}, fmt.Errorf("%w: directory truncated at entry %d of %d", ErrUnreadableGeoKeys, i, count)
		}
		id := binary.LittleEndian.Uint16(directory[base:])
		location := binary.LittleEndian.Uint16(directory[base+2:])
		valueCount := int(binary.LittleEndian.Uint16(directory[base+4:]))
		value := binary.LittleEndian.Uint16(directory[base+6:])

		var data KeyData
		switch location {
		case 0:
			// Payload is the value field itself.
			data = KeyShort(value)
		case geoDoubleParamsTag:
			// The offset is an element index into the doubles record.
			if doubles == nil {
				return GeoKeyDirectory{}, fmt.Errorf("%w: key %d needs the double params record", ErrUnreadableGeoKeys, id)
			}
			off := int(value) * 8
			if off+valueCount*8 > len(doubles) {
				return GeoKeyDirectory{}, fmt.Errorf("%w: key %d reads past the double params record", ErrUnreadableGeoKeys, id)
			}
			vals := make(KeyDoubles, valueCount)
			for j := range vals {
				vals[j] = math.Float64frombits(binary.LittleEndian.Uint64(doubles[off+8*j:]))
			}
			data = vals
		case geoASCIIParamsTag:
			// The offset is a byte offset into the ASCII record.
			if ascii == nil {
				return GeoKeyDirectory{}, fmt.Errorf("%w: key %d needs the ASCII params record", ErrUnreadableGeoKeys, id)
			}
			off := int(value)
			if off+valueCount > len(ascii) {
				return GeoKeyDirectory{}, fmt.Errorf("%w: key %d reads past the ASCII params record", ErrUnreadableGeoKeys, id)
			}
			data = KeyASCII(ascii[off : off+valueCount])
		default:
			return GeoKeyDirectory{}, &UndefinedKeyError{ID: id}
		}
		entries = append(entries, GeoKeyEntry{ID: id, Data: data})
	}
	return GeoKeyDirectory{Entries: entries}, nil
}

// EPSG reduces the directory to EPSG codes.
//
// Key 1024 gates the whole directory: 0 means no CRS was written, 32767
// means a user-defined CRS, and anything but projected/geographic/
// geocentric means the CRS is defined through data this package does not
// resolve. Keys 2048 and 3072 supply the horizontal code (they are not
// expected to coexist; when they do, the last entry wins), key 4096 the
// vertical code. An implausible horizontal code fails with a
// *BadHorizontalError; an implausible vertical code is dropped.
func (d GeoKeyDirectory) EPSG() (EPSG, error) {
	var horizontal, vertical uint16
	var hasHorizontal, hasVertical bool

	for _, e := range d.Entries {
		switch e.ID {
		case keyModelType:
			v, ok := e.Data.(KeyShort)
			if !ok {
				return EPSG{}, &UnsupportedDataError{Data: e.Data}
			}
			switch uint16(v) {
			case 0:
				return EPSG{}, fmt.Errorf("%w: model type 0", ErrUnreadableGeoKeys)
			case modelTypeProjected, modelTypeGeographic, modelTypeGeocentric:
			case modelTypeUserDefined:
				return EPSG{}, ErrUserDefinedCRS
			default:
				return EPSG{}, &UnsupportedDataError{Data: e.Data}
			}
		case keyGeodeticCRS, keyProjectedCRS:
			v, ok := e.Data.(KeyShort)
			if !ok {
				return EPSG{}, &UndefinedKeyError{ID: e.ID}
			}
			horizontal = uint16(v)
			hasHorizontal = true
		case keyVerticalCRS:
			v, ok := e.Data.(KeyShort)
			if !ok {
				return EPSG{}, &UndefinedKeyError{ID: e.ID}
			}
			vertical = uint16(v)
			hasVertical = true
		}
	}

	if !hasHorizontal || horizontal == 0 {
		return EPSG{}, fmt.Errorf("%w: no horizontal code", ErrUnreadableGeoKeys)
	}
	c := NewUnchecked(horizontal)
	if hasVertical {
		c.SetVerticalUnchecked(vertical)
	}
	return checkParsed(c)
}
