package generation

import "unicode/utf8"

// LengthStatus grades a description length for the editor preview.
type LengthStatus string

// Length grades shown next to a generated description.
const (
	LengthOptimal LengthStatus = "optimal"
	LengthWarning LengthStatus = "warning"
	LengthDanger  LengthStatus = "danger"
)

// ClassifyLength returns the character count of description and its grade:
// 155-160 characters is optimal, 120-200 is acceptable, anything else is
// likely to be cut off or too thin for search results.
func ClassifyLength(description string) (int, LengthStatus) {
	n := utf8.RuneCountInString(description)
	switch {
	case n >= 155 && n <= 160:
		return n, LengthOptimal
	case n >= 120 && n <= 200:
		return n, LengthWarning
	default:
		return n, LengthDanger
	}
}
