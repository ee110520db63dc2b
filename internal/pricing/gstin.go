package pricing

import "regexp"

// 15-character GSTIN: 2-digit state code, 5 letters, 4 digits, 1 letter,
// 1 entity code, the literal Z, 1 check character.
var gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// ValidateGSTIN reports whether a GSTIN matches the standard format. A
// failure is a soft warning for the operator; it never blocks bill creation.
func ValidateGSTIN(gstin string) bool {
	return gstinPattern.MatchString(gstin)
}

// DetectIGST decides the default tax split for a customer GSTIN: a state-code
// prefix differing from the shop's means an inter-state sale, so IGST. An
// empty GSTIN defaults to the intra-state split. The operator can still
// override the result on the bill.
func DetectIGST(gstin, shopStateCode string) bool {
	if len(gstin) < 2 {
		return false
	}
	return gstin[:2] != shopStateCode
}
