package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/Harshalogy/tailorbird/internal/runner"
	"github.com/Harshalogy/tailorbird/internal/scratch"
	"github.com/Harshalogy/tailorbird/internal/session"
)

var version = "0.1.0"

func dataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// RunCommand returns the run command, which sequences the acceptance suites
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run acceptance suites in dependency order",
		ArgsUsage: "[suite name, 1-based position, or 'all']...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the runner configuration",
				Value: "suites.toml",
			},
		},
		Action: func(c *cli.Context) error {
			config, err := runner.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}

			r, err := runner.New(runner.Dependencies{
				Config:  config,
				WorkDir: ".",
				DataDir: dataDir(),
			})
			if err != nil {
				return err
			}

			return r.Run(c.Context, c.Args().Slice())
		},
	}
}

// CleanCommand returns the clean command, which removes cross-run state
func CleanCommand() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Remove scratch handoff files and stored sessions",
		Action: func(c *cli.Context) error {
			dir := dataDir()
			if err := scratch.NewStore(dir).Clean(); err != nil {
				return err
			}
			if err := session.NewStore(dir).Clean(); err != nil {
				return err
			}
			log.Printf("Removed scratch and session state under %s", dir)
			return nil
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "tailorbird-e2e",
		Usage:   "Acceptance suite runner for the Tailorbird application",
		Version: version,
		Commands: []*cli.Command{
			RunCommand(),
			CleanCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
