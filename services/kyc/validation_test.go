package kyc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidAccountNumber(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"0123456789", true},
		{"012345678901", true},
		{"012345678", false},
		{"0123456789012", false},
		{"01234a6789", false},
		{"0123 56789", false},
		{"", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ValidAccountNumber(tt.number), "number %q", tt.number)
	}
}

func TestValidBVN(t *testing.T) {
	tests := []struct {
		bvn  string
		want bool
	}{
		{"12345678901", true},
		{"1234567890", false},
		{"123456789012", false},
		{"1234567890a", false},
		{"", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ValidBVN(tt.bvn), "bvn %q", tt.bvn)
	}
}

func TestMatchNames(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		resolved  string
		want      string
	}{
		{"same order", "John Doe", "JOHN DOE", MatchExact},
		{"bank order differs", "John Doe", "DOE JOHN", MatchExact},
		{"bank holds extra middle name", "John Doe", "JOHN ADEWALE DOE", MatchExact},
		{"only surname matches", "John Doe", "JAMES DOE", MatchPartial},
		{"different person", "John Doe", "ADAEZE OKAFOR", MatchNone},
		{"nothing submitted", "", "JOHN DOE", MatchPartial},
		{"nothing resolved", "John Doe", "", MatchNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, matchNames(tt.submitted, tt.resolved))
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		fullName  string
		wantFirst string
		wantLast  string
	}{
		{"John Doe", "John", "Doe"},
		{"John Adewale Doe", "John", "Doe"},
		{"Cher", "Cher", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		first, last := splitName(tt.fullName)
		require.Equal(t, tt.wantFirst, first)
		require.Equal(t, tt.wantLast, last)
	}
}
