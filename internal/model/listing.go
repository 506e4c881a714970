package model

// Listing is one row of an exchange index constituent list.
type Listing struct {
	Company string
	Symbol  string
}
