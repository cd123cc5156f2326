package form_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/acme/internal/form"
)

func TestCents(t *testing.T) {
	type testCase struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{name: "WholeDollars", raw: "49", want: 4900},
		{name: "DollarsAndCents", raw: "49.99", want: 4999},
		{name: "SingleFractionDigit", raw: "0.5", want: 50},
		{name: "SubCentRoundsHalfUp", raw: "0.005", want: 1},
		{name: "SubCentRoundsDown", raw: "0.004", want: 0},
		{name: "LeadingDot", raw: ".25", want: 25},
		{name: "TrailingDot", raw: "12.", want: 1200},
		{name: "Negative", raw: "-3.50", want: -350},
		{name: "Whitespace", raw: "  19.99 ", want: 1999},
		{name: "Zero", raw: "0", want: 0},
		{name: "Empty", raw: "", wantErr: true},
		{name: "DotOnly", raw: ".", wantErr: true},
		{name: "NotANumber", raw: "abc", wantErr: true},
		{name: "Scientific", raw: "1e2", wantErr: true},
		{name: "CommaGrouping", raw: "1,000", wantErr: true},
		{name: "BadFraction", raw: "1.x9", wantErr: true},
		{name: "DoubledSign", raw: "--5", wantErr: true},
		{name: "DoubledSignFraction", raw: "--5.25", wantErr: true},
		{name: "MixedSigns", raw: "+-5", wantErr: true},
		{name: "InnerSign", raw: "5-2", wantErr: true},
		{name: "WholeOverflow", raw: "922337203685477581", wantErr: true},
		{name: "LargeButRepresentable", raw: "92233720368547757.99", want: 9223372036854775799},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := form.Cents(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Cents must agree with exact arithmetic for every two-decimal amount;
// no floating point drift across a spread of trial values.
func TestCents_NoDrift(t *testing.T) {
	for i := 1; i <= 100; i++ {
		dollars := int64(i * 7)
		cents := int64(i % 100)

		raw := fmt.Sprintf("%d.%02d", dollars, cents)
		want := dollars*100 + cents

		got, err := form.Cents(raw)
		require.NoError(t, err, "amount %q", raw)
		assert.Equal(t, want, got, "amount %q", raw)
	}
}
