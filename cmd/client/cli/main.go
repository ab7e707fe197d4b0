package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/rosetta/internal/client/cli"
	"github.com/dmitrijs2005/rosetta/internal/client/config"
	"github.com/dmitrijs2005/rosetta/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg, logging.NewDefault())
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
