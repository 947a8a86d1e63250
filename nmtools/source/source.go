// Package source reads NMEA sentences line by line from a file, the standard
// input or a serial GPS receiver.
package source

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"
	"strings"

	serial "github.com/jacobsa/go-serial/serial"
)

// Stdin is the name selecting the standard input.
const Stdin = "-"

// DefaultBaudRate is the NMEA 0183 standard baud rate.
const DefaultBaudRate = 4800

// Open opens the named source. Device paths under /dev/tty and /dev/serial
// are opened as 8N1 serial ports at the given baud rate.
func Open(name string, baud int) (io.ReadCloser, error) {
	switch {
	case name == Stdin || name == "":
		return ioutil.NopCloser(os.Stdin), nil
	case IsSerial(name):
		if baud <= 0 {
			baud = DefaultBaudRate
		}
		return serial.Open(serial.OpenOptions{
			PortName:        name,
			BaudRate:        uint(baud),
			DataBits:        8,
			StopBits:        1,
			MinimumReadSize: 1,
			ParityMode:      serial.PARITY_NONE,
		})
	default:
		return os.Open(name)
	}
}

// IsSerial reports whether the name looks like a serial device.
func IsSerial(name string) bool {
	return strings.HasPrefix(name, "/dev/tty") || strings.HasPrefix(name, "/dev/serial")
}

// Scan calls fn for every non blank line of r, trimmed of surrounding spaces
// and line terminators. lineNo starts at 1 and counts blank lines. Scanning
// stops at the first error returned by fn.
func Scan(r io.Reader, fn func(lineNo int, line string) error) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
