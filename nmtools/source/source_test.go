package source_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nmea-tools/nmtools/source"
)

type line struct {
	no   int
	text string
}

func TestScan(t *testing.T) {
	require := require.New(t)

	input := "  $GPRMC,a*00 \r\n\n\t\n$GPRMC,b*00\r\n$GPRMC,c*00"

	var got []line
	err := source.Scan(strings.NewReader(input), func(no int, text string) error {
		got = append(got, line{no, text})
		return nil
	})

	require.NoError(err)
	require.Equal([]line{
		{1, "$GPRMC,a*00"},
		{4, "$GPRMC,b*00"},
		{5, "$GPRMC,c*00"},
	}, got)
}

func TestScanStopsOnError(t *testing.T) {
	require := require.New(t)

	stop := errors.New("stop")
	calls := 0
	err := source.Scan(strings.NewReader("a\nb\nc\n"), func(no int, text string) error {
		calls++
		if text == "b" {
			return stop
		}
		return nil
	})

	require.ErrorIs(err, stop)
	require.Equal(2, calls)
}

func TestIsSerial(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		input string
		want  bool
	}{
		"usb":       {input: "/dev/ttyUSB0", want: true},
		"acm":       {input: "/dev/ttyACM0", want: true},
		"by_id":     {input: "/dev/serial/by-id/usb-u-blox", want: true},
		"file":      {input: "track.nmea", want: false},
		"stdin":     {input: source.Stdin, want: false},
		"dev_null":  {input: "/dev/null", want: false},
		"tty_alike": {input: "./dev/ttyUSB0", want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(tc.want, source.IsSerial(tc.input))
		})
	}
}

func TestOpenFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "track.nmea")
	require.NoError(os.WriteFile(path, []byte("$GPRMC,a*00\n"), 0644))

	r, err := source.Open(path, 0)
	require.NoError(err)
	defer r.Close()

	var got []string
	require.NoError(source.Scan(r, func(_ int, text string) error {
		got = append(got, text)
		return nil
	}))
	require.Equal([]string{"$GPRMC,a*00"}, got)
}

func TestOpenMissingFile(t *testing.T) {
	require := require.New(t)

	_, err := source.Open(filepath.Join(t.TempDir(), "missing.nmea"), 0)
	require.Error(err)
}
