package model

import "fmt"

// Field is a numeric quote attribute that a provider may or may not report.
// Absent attributes stay distinguishable from legitimate zero values.
type Field struct {
	Value float64
	Known bool
}

// Known wraps a reported value.
func Known(v float64) Field { return Field{Value: v, Known: true} }

// String formats the raw value, or "unknown" when the provider omitted it.
func (f Field) String() string {
	if !f.Known {
		return "unknown"
	}
	return fmt.Sprintf("%v", f.Value)
}

// Descriptor is the fixed quote summary for one ticker. Every field is
// optional on the provider side.
type Descriptor struct {
	Symbol        string
	CurrentPrice  Field
	High52w       Field
	Low52w        Field
	MarketCap     Field
	PERatio       Field
	DividendYield Field
	PreviousClose Field
}

// AllUnknown reports whether the provider returned nothing usable for the
// symbol. Callers treat such a descriptor like an unknown ticker.
func (d Descriptor) AllUnknown() bool {
	for _, f := range []Field{
		d.CurrentPrice, d.High52w, d.Low52w,
		d.MarketCap, d.PERatio, d.DividendYield, d.PreviousClose,
	} {
		if f.Known {
			return false
		}
	}
	return true
}
