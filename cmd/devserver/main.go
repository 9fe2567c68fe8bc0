package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/blogpessoal/internal/buildinfo"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver"
	"github.com/dmitrijs2005/blogpessoal/internal/devserver/config"
	"github.com/dmitrijs2005/blogpessoal/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	app := devserver.NewApp(cfg, logger)

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
