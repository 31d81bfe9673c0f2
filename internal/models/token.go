// Package models defines the core value types shared across the extraction
// pipeline and the tax engine: positioned tokens, the account ledger,
// company metadata and calculation results.
package models

// PositionedToken is a single piece of text with its bounding box on a page,
// as produced by a positioned-text source. Coordinates grow rightward (x)
// and downward (top).
type PositionedToken struct {
	Text      string
	X0        float64
	X1        float64
	Top       float64
	PageWidth float64
}

// XCenter returns the horizontal midpoint of the token's bounding box.
func (t PositionedToken) XCenter() float64 {
	return (t.X0 + t.X1) / 2
}

// Page is one page of a positioned-text document. Text carries the raw page
// text and is only consumed by the company header parser on page one.
type Page struct {
	Width  float64
	Tokens []PositionedToken
	Text   string
}
