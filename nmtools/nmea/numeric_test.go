package nmea_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"nmea-tools/nmtools/nmea"
)

func TestIsNumeric(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input string
		want  bool
	}{
		"integer":          {input: "231110", want: true},
		"fraction":         {input: "01.03232", want: true},
		"negative":         {input: "-5152.4175", want: true},
		"positive_sign":    {input: "+11.90", want: true},
		"leading_point":    {input: ".5", want: true},
		"trailing_point":   {input: "5.", want: true},
		"empty":            {input: "", want: false},
		"sign_only":        {input: "-", want: false},
		"point_only":       {input: ".", want: false},
		"letter":           {input: "01.03f232", want: false},
		"two_points":       {input: "01.03.232", want: false},
		"exponent":         {input: "1e5", want: false},
		"infinity":         {input: "Inf", want: false},
		"not_a_number":     {input: "NaN", want: false},
		"hex":              {input: "0x1F", want: false},
		"spaces":           {input: " 11.90", want: false},
		"comma_separator":  {input: "11,90", want: false},
		"thousands_groups": {input: "1_000", want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(tc.want, nmea.IsNumeric(tc.input))
		})
	}
}
