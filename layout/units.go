package layout

import (
	"strconv"
	"strings"
)

// This file defines unit-safe types and helpers for lengths. The engine's
// canonical unit is the PDF point (pt); type-definition files may specify
// lengths in mm/cm/in and get converted here.

// Unit represents the original unit of a length value as written by the author.
type Unit int

const (
	UnitNone Unit = iota // unit-less numbers, treated as pt
	UnitPT               // points
	UnitMM               // millimeters
	UnitCM               // centimeters
	UnitIN               // inches
)

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitPT:
		return "pt"
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	case UnitIN:
		return "in"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

func (l Length) IsZero() bool { return l.Value == 0 }

// To converts this length to the target unit. Supported targets: UnitPT, UnitMM.
func (l Length) To(target Unit) float64 {
	mm := 0.0
	switch l.Unit {
	case UnitMM:
		mm = l.Value
	case UnitCM:
		mm = l.Value * 10
	case UnitIN:
		mm = l.Value * 25.4
	case UnitPT, UnitNone:
		if target == UnitMM {
			return l.Value * PtToMm
		}
		return l.Value
	default:
		return l.Value
	}
	if target == UnitMM {
		return mm
	}
	return mm * MmToPt
}

func (l Length) ToPT() float64 { return l.To(UnitPT) }
func (l Length) ToMM() float64 { return l.To(UnitMM) }

// ParseLength parses a length string like "36pt", "5mm" or "12.5" preserving
// its unit. Unit-less numbers stay UnitNone (interpreted as pt by To).
func ParseLength(value string) Length {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"pt", UnitPT}, {"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}
	}
	return Length{Value: f, Unit: unit}
}
