package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/theoremus-urban-solutions/mvg-incidents/config"
	"github.com/theoremus-urban-solutions/mvg-incidents/internal"
	"github.com/theoremus-urban-solutions/mvg-incidents/pipeline"
	"github.com/theoremus-urban-solutions/mvg-incidents/server"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

type appFlags struct {
	logLevel    string
	configPath  string
	url         string
	messageType string
	timeout     string
	format      string
	output      string
	compact     bool
	port        int64

	// cfg is loaded in the Before hook and available to all commands.
	cfg config.AppConfig
}

func main() {
	if err := internal.SetupLogging("info"); err != nil {
		panic(err)
	}

	flags := &appFlags{}

	app := &cli.Command{
		Name:      "mvg-incidents",
		Usage:     "Fetch disruption messages from the MVG API",
		UsageText: "mvg-incidents [global options] [command]",
		Description: `mvg-incidents performs one fetch against the MVG messages endpoint, keeps
the messages of the configured type, normalizes their HTML text and
timestamps, and prints the result to stdout. Status output goes to stderr.

Run 'mvg-incidents' with no arguments for the incident list as JSON.
Run 'mvg-incidents serve' to expose the same data over HTTP.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("MVG_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.logLevel,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file (optional)",
				Sources:     cli.EnvVars("MVG_CONFIG"),
				Destination: &flags.configPath,
			},
			&cli.StringFlag{
				Name:        "url",
				Usage:       "messages endpoint URL",
				Destination: &flags.url,
			},
			&cli.StringFlag{
				Name:        "type",
				Usage:       "message type to keep",
				Destination: &flags.messageType,
			},
			&cli.StringFlag{
				Name:        "timeout",
				Usage:       "fetch timeout (e.g. 10s)",
				Destination: &flags.timeout,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output document: json, siri, siri-xml, gtfsrt, gtfsrt-json",
				Destination: &flags.format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write the document to a file instead of stdout",
				Destination: &flags.output,
			},
			&cli.BoolFlag{
				Name:        "compact",
				Usage:       "single-line JSON instead of indented",
				Destination: &flags.compact,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := internal.SetupLogging(flags.logLevel); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return ctx, err
			}
			if err := applyOverrides(&cfg, c, flags); err != nil {
				return ctx, err
			}
			if err := config.Validate(cfg); err != nil {
				return ctx, err
			}

			flags.cfg = cfg
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unknown command %q. Run 'mvg-incidents --help' for usage", c.Args().First())
			}
			return runOnce(ctx, flags)
		},
		Commands: []*cli.Command{
			{
				Name:      "serve",
				Usage:     "Serve the incident feed over HTTP",
				UsageText: "mvg-incidents serve [--port N]",
				Description: `Starts an HTTP server exposing the incident list, the SIRI-SX response
(JSON and XML) and the GTFS-RT service alerts feed. Every request fetches
fresh data from the upstream API.`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "port",
						Usage:       "listen port",
						Destination: &flags.port,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.IsSet("port") {
						flags.cfg.Server.Port = int(flags.port)
					}
					return runServe(flags)
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}

// applyOverrides layers command line flags over the loaded configuration.
func applyOverrides(cfg *config.AppConfig, c *cli.Command, flags *appFlags) error {
	if c.IsSet("url") {
		cfg.API.URL = flags.url
	}
	if c.IsSet("type") {
		cfg.API.MessageType = flags.messageType
	}
	if c.IsSet("timeout") {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", flags.timeout, err)
		}
		cfg.API.TimeoutMS = int(d.Milliseconds())
	}
	if c.IsSet("format") {
		cfg.Output.Format = flags.format
	}
	if c.IsSet("compact") {
		cfg.Output.Compact = flags.compact
	}
	return nil
}

// runOnce executes a single fetch-transform-emit cycle.
func runOnce(ctx context.Context, flags *appFlags) error {
	logger := log.With().Str("component", "pipeline").Logger()

	var out io.Writer = os.Stdout
	if flags.output != "" {
		f, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	p, err := pipeline.New(flags.cfg, out, logger)
	if err != nil {
		return err
	}
	if err := p.Run(ctx); err != nil {
		return err
	}

	if flags.output != "" {
		logger.Info().Str("path", flags.output).Msg("document written")
	}
	return nil
}

// runServe starts the HTTP server and blocks until a shutdown signal.
func runServe(flags *appFlags) error {
	logger := log.With().Str("component", "server").Logger()

	s, err := server.New(flags.cfg, logger)
	if err != nil {
		return err
	}
	s.Start()
	s.WaitForShutdown()
	return nil
}
