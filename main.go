package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	serve := func(c *cli.Context) error {
		entrypoint.Run(config.NewConfig(), Version)
		return nil
	}

	app := &cli.App{
		Name:    "catalog",
		Usage:   "Local library catalog",
		Version: fmt.Sprintf("%s (%s)", Version, Commit),
		Action:  serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server (default if no command given)",
				Action: serve,
			},
			{
				Name:  "seed",
				Usage: "load genres, authors, books and copies from a YAML file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "path to the catalog YAML file",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					result, err := entrypoint.Seed(c.Context, config.NewConfig(), c.String("file"))
					if err != nil {
						return err
					}
					fmt.Printf("Imported %d genres, %d authors, %d books, %d copies\n",
						result.Genres, result.Authors, result.Books, result.Instances)
					return nil
				},
			},
			{
				Name:  "stats",
				Usage: "print the catalog record counts",
				Action: func(c *cli.Context) error {
					dashboard, err := entrypoint.Stats(c.Context, config.NewConfig())
					if err != nil {
						return err
					}
					fmt.Printf("Books:            %d\n", dashboard.NumBooks)
					fmt.Printf("Copies:           %d\n", dashboard.NumInstances)
					fmt.Printf("Copies available: %d\n", dashboard.NumInstancesAvailable)
					fmt.Printf("Authors:          %d\n", dashboard.NumAuthors)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
