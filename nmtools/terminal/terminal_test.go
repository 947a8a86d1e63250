package terminal_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"nmea-tools/nmtools/terminal"
)

func capture(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	output, colors := terminal.Output, terminal.Colors
	terminal.Output, terminal.Colors = &buf, false
	t.Cleanup(func() {
		terminal.Output, terminal.Colors = output, colors
	})
	return &buf
}

func TestError(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		err  error
		want string
	}{
		"with_error":    {err: errors.New("no such file"), want: "Failed to read 'track.nmea' [no such file]\n"},
		"without_error": {err: nil, want: "Failed to read 'track.nmea'\n"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			buf := capture(t)
			terminal.Error(tc.err, "Failed to read '%s'", "track.nmea")
			require.Equal(tc.want, buf.String())
		})
	}
}

func TestWarn(t *testing.T) {
	require := require.New(t)
	buf := capture(t)

	terminal.Warn("Skipped %d invalid sentence(s)", 3)

	require.Equal("Skipped 3 invalid sentence(s)\n", buf.String())
}

func TestOperation(t *testing.T) {
	require := require.New(t)
	buf := capture(t)

	terminal.NewOperation("Exporting %d records", 2).Success("Records exported to %s", "out.json")
	terminal.NewOperation("Exporting %d records", 2).Error(errors.New("disk full"), "Failed to export records")

	require.Equal("✓ Records exported to out.json \n✗ Failed to export records [disk full] \n", buf.String())
}
