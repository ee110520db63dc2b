package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jewelpos/internal/pricing"
)

func TestValidateGSTIN(t *testing.T) {
	tests := []struct {
		name  string
		gstin string
		want  bool
	}{
		{"valid Maharashtra", "27AAPFU0939F1ZV", true},
		{"valid Uttar Pradesh", "09AAACH7409R1ZZ", true},
		{"too short", "27AAPFU0939F1Z", false},
		{"lowercase letters", "27aapfu0939f1zv", false},
		{"missing Z at position 14", "27AAPFU0939F1XV", false},
		{"non-digit state code", "XXAAPFU0939F1ZV", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.ValidateGSTIN(tt.gstin))
		})
	}
}

func TestDetectIGST(t *testing.T) {
	// Shop registered in Maharashtra (27).
	assert.False(t, pricing.DetectIGST("27AAPFU0939F1ZV", "27"), "same state is intra-state")
	assert.True(t, pricing.DetectIGST("09AAACH7409R1ZZ", "27"), "different state is inter-state")
	assert.False(t, pricing.DetectIGST("", "27"), "no GSTIN defaults to intra-state")
	assert.False(t, pricing.DetectIGST("2", "27"), "truncated GSTIN defaults to intra-state")
}
