package crs

import "testing"

func TestName(t *testing.T) {
	if got := Name(25832); got != "ETRS89 / UTM zone 32N" {
		t.Errorf("Name(25832) = %q", got)
	}
	if got := Name(9999); got != "" {
		t.Errorf("Name(9999) = %q, want empty", got)
	}
}
