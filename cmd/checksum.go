package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"

	"nmea-tools/nmtools/nmea"
	"nmea-tools/nmtools/terminal"
)

type checksumCmd struct{}

func (*checksumCmd) Name() string     { return "checksum" }
func (*checksumCmd) Synopsis() string { return "Compute the checksum of a sentence." }
func (*checksumCmd) Usage() string {
	return `checksum <sentence>
	Print the XOR checksum of the characters between '$' and '*'.
  `
}

func (c *checksumCmd) SetFlags(f *flag.FlagSet) {}

func (c *checksumCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	sentence := strings.Join(f.Args(), " ")
	sum, err := nmea.Checksum(sentence)
	if err != nil {
		terminal.Error(err, "Could not compute checksum")
		return subcommands.ExitFailure
	}
	fmt.Println(sum)

	return subcommands.ExitSuccess
}
