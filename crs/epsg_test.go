package crs

import (
	"errors"
	"testing"
)

func TestNew_AcceptsPlausibleCodes(t *testing.T) {
	for _, code := range []uint16{MinCode, 2056, 25832, MaxCode} {
		c, err := New(code)
		if err != nil {
			t.Fatalf("New(%d): unexpected error %v", code, err)
		}
		if got := c.Horizontal(); got != code {
			t.Errorf("Horizontal() = %d, want %d", got, code)
		}
		if _, ok := c.Vertical(); ok {
			t.Errorf("New(%d): vertical present, want absent", code)
		}
	}
}

func TestNew_RejectsOutOfRangeCodes(t *testing.T) {
	for _, code := range []uint16{0, 1, 1023, 32768, 65535} {
		_, err := New(code)
		var bad *BadCodeError
		if !errors.As(err, &bad) {
			t.Fatalf("New(%d): error = %v, want *BadCodeError", code, err)
		}
		if bad.Code != code {
			t.Errorf("New(%d): error carries code %d", code, bad.Code)
		}
	}
}

func TestNewWithVertical(t *testing.T) {
	tests := []struct {
		name                 string
		horizontal, vertical uint16
		wantErr              bool
	}{
		{"both plausible", 25832, 5941, false},
		{"range edges", MinCode, MaxCode, false},
		{"bad vertical", 25832, 500, true},
		{"bad horizontal", 500, 5941, true},
		{"both bad", 0, 65535, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewWithVertical(tt.horizontal, tt.vertical)
			if tt.wantErr {
				var bad *BadCodeError
				if !errors.As(err, &bad) {
					t.Fatalf("error = %v, want *BadCodeError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := c.Horizontal(); got != tt.horizontal {
				t.Errorf("Horizontal() = %d, want %d", got, tt.horizontal)
			}
			v, ok := c.Vertical()
			if !ok || v != tt.vertical {
				t.Errorf("Vertical() = %d, %v, want %d, true", v, ok, tt.vertical)
			}
		})
	}
}

func TestSetters_Checked(t *testing.T) {
	c := NewUnchecked(25832)

	if err := c.SetHorizontal(100); err == nil {
		t.Error("SetHorizontal(100): no error")
	}
	if got := c.Horizontal(); got != 25832 {
		t.Errorf("failed SetHorizontal wrote anyway: Horizontal() = %d", got)
	}

	if err := c.SetVertical(100); err == nil {
		t.Error("SetVertical(100): no error")
	}
	if _, ok := c.Vertical(); ok {
		t.Error("failed SetVertical marked the vertical present")
	}

	if err := c.SetHorizontal(2056); err != nil {
		t.Errorf("SetHorizontal(2056): %v", err)
	}
	if err := c.SetVertical(5941); err != nil {
		t.Errorf("SetVertical(5941): %v", err)
	}
	if got := c.Horizontal(); got != 2056 {
		t.Errorf("Horizontal() = %d, want 2056", got)
	}
	if v, ok := c.Vertical(); !ok || v != 5941 {
		t.Errorf("Vertical() = %d, %v, want 5941, true", v, ok)
	}
}

func TestSetters_Unchecked(t *testing.T) {
	c := NewUnchecked(25832)

	c.SetHorizontalUnchecked(0)
	if got := c.Horizontal(); got != 0 {
		t.Errorf("Horizontal() = %d, want 0", got)
	}

	// The unchecked vertical setter always marks the code present, even
	// when it is implausible.
	c.SetVerticalUnchecked(0)
	if v, ok := c.Vertical(); !ok || v != 0 {
		t.Errorf("Vertical() = %d, %v, want 0, true", v, ok)
	}

	c.ClearVertical()
	if _, ok := c.Vertical(); ok {
		t.Error("ClearVertical left the vertical present")
	}
}

func TestString(t *testing.T) {
	c := NewUnchecked(25832)
	if got := c.String(); got != "EPSG:25832" {
		t.Errorf("String() = %q, want %q", got, "EPSG:25832")
	}
	c.SetVerticalUnchecked(5941)
	if got := c.String(); got != "EPSG:25832+5941" {
		t.Errorf("String() = %q, want %q", got, "EPSG:25832+5941")
	}
}
