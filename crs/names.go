package crs

// Name returns a human-readable name for well-known EPSG codes, "" for
// codes not in the table. This is a convenience for display only and
// says nothing about whether a code exists in the EPSG registry.
func Name(code uint16) string {
	switch code {
	case 2056:
		return "CH1903+ / LV95"
	case 2992:
		return "NAD83 / Oregon Lambert (ft)"
	case 3857:
		return "WGS 84 / Pseudo-Mercator"
	case 4258:
		return "ETRS89"
	case 4326:
		return "WGS 84"
	case 5941:
		return "NN2000 height"
	case 25832:
		return "ETRS89 / UTM zone 32N"
	case 25833:
		return "ETRS89 / UTM zone 33N"
	case 28992:
		return "Amersfoort / RD New"
	case 31370:
		return "BD72 / Belgian Lambert 72"
	default:
		return ""
	}
}
