package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"nmea-tools/nmtools/log"
)

func setup(t *testing.T, verbose bool) *bytes.Buffer {
	var buf bytes.Buffer
	previous := slog.Default()
	log.Setup(&buf, verbose)
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestLevels(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	buf := setup(t, false)
	log.Debug(ctx, "hidden")
	log.Info(ctx, "reading", slog.String("source", "track.nmea"))
	log.Error(ctx, "failed", log.Err(errors.New("boom")))

	out := buf.String()
	require.NotContains(out, "hidden")
	require.Contains(out, "level=INFO msg=reading source=track.nmea")
	require.Contains(out, "level=ERROR msg=failed err=boom")
}

func TestVerbose(t *testing.T) {
	require := require.New(t)

	buf := setup(t, true)
	log.Debug(context.Background(), "rejected sentence", slog.Int("line", 3))
	log.Warn(context.Background(), "slow receiver")

	require.Contains(buf.String(), "level=DEBUG msg=\"rejected sentence\" line=3")
	require.Contains(buf.String(), "level=WARN msg=\"slow receiver\"")
}
