package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/deploykit/globaltables"
)

var version = "dev"

var (
	configFlag   = flag.String("config", "serverless.yml", "Path to the deployment descriptor")
	regionFlag   = flag.String("region", "", "Override the descriptor's deploy region")
	disabledFlag = flag.Bool("disabled", false, "Disable replication for this run")
	versionFlag  = flag.Bool("version", false, "Show version information")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("globaltables %s\n", version)
		os.Exit(0)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// deploy environments commonly stage AWS credentials in a .env file
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			logger.Warn().Err(err).Msg("failed to load .env")
		}
	}

	desc, err := globaltables.LoadDescriptor(*configFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load deployment descriptor")
	}

	if *regionFlag != "" {
		desc.Provider.Region = *regionFlag
	}

	if *disabledFlag {
		disabled := false
		desc.Custom.GlobalTables.Enabled = &disabled
	}

	orc := globaltables.NewOrchestrator(desc, globaltables.WithLogger(logger))

	if err := orc.Run(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("global table replication failed")
	}
}
