package main

import (
	"context"

	"careerdesk/internal/client/cli"
	"careerdesk/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(context.Background())
}
