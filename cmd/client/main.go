package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/accountcli/internal/buildinfo"
	"github.com/dmitrijs2005/accountcli/internal/client/cli"
	"github.com/dmitrijs2005/accountcli/internal/client/config"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, sync, err := logging.NewProduction(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer sync()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
