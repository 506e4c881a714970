package model

// PriceObservation is one persisted price point: the closing price recorded
// for a symbol on a capture date. Dates are ISO-8601 (YYYY-MM-DD) strings so
// lexicographic order equals chronological order.
type PriceObservation struct {
	Symbol string
	Date   string
	Price  float64
}
