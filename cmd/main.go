package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"nmea-tools/nmtools/config"
	"nmea-tools/nmtools/log"
	"nmea-tools/nmtools/terminal"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&validateCmd{}, "sentences")
	subcommands.Register(&decodeCmd{}, "sentences")
	subcommands.Register(&checksumCmd{}, "sentences")
	subcommands.Register(&distanceCmd{}, "routes")
	subcommands.Register(&compareCmd{}, "routes")
	subcommands.Register(&exportCmd{}, "routes")

	configPath := flag.String("config", os.Getenv("NMEA_CONFIG"), "YAML configuration file")
	verbose := flag.Bool("v", false, "log rejected sentences and debug information")
	flag.Parse()

	log.Setup(os.Stderr, *verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		terminal.Error(err, "Failed to load config")
		os.Exit(int(subcommands.ExitFailure))
	}

	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx, cfg)))
}
