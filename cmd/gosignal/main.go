package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/evdnx/gosignal/config"
	"github.com/evdnx/gosignal/feed"
	"github.com/evdnx/gosignal/indicator"
	"github.com/evdnx/gosignal/indicator/core"
	"github.com/evdnx/gosignal/internal/logger"
	"github.com/evdnx/gosignal/suite"
)

const schemaName = "gosignal-config.json"

// loadSeries reads bars from --file, or generates --demo bars when set.
func loadSeries(cmd *cli.Command) (core.Series, error) {
	if n := int(cmd.Int("demo")); n > 0 {
		gen := feed.NewGenerator(int64(cmd.Int("seed")))
		cfg := feed.DefaultGeneratorConfig()
		cfg.Count = n
		return gen.Generate(cfg), nil
	}
	path := cmd.String("file")
	if path == "" {
		return nil, fmt.Errorf("either --file or --demo is required")
	}
	return feed.LoadCSVFile(path)
}

func loadConfig(cmd *cli.Command) (config.IndicatorConfig, error) {
	path := cmd.String("config")
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(path)
}

type evaluation struct {
	Results []namedResult `json:"results"`
	Summary suite.Summary `json:"summary"`
}

type namedResult struct {
	Name string `json:"name"`
	suite.Result
}

func evaluateAction(out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		zlog, err := logger.New(cmd.String("log-level"))
		if err != nil {
			return err
		}
		defer zlog.Sync() //nolint:errcheck

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		series, err := loadSeries(cmd)
		if err != nil {
			return err
		}

		catalogue, err := suite.New(cfg, suite.WithReporter(suite.NewZapReporter(zlog.Logger)))
		if err != nil {
			return err
		}

		results := catalogue.EvaluateAll(series)
		names := catalogue.Names()
		eval := evaluation{Summary: suite.Summarize(results)}
		for i, r := range results {
			if cmd.Bool("only-matches") && !r.Match {
				continue
			}
			eval.Results = append(eval.Results, namedResult{Name: names[i], Result: r})
		}
		zlog.Debug("catalogue evaluated",
			zap.Int("bars", series.Len()),
			zap.String("verdict", eval.Summary.Verdict),
		)

		if cmd.Bool("json") {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(eval)
		}
		_, err = fmt.Fprint(out, renderEvaluation(eval, series.Len()))
		return err
	}
}

func seriesAction(out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		series, err := loadSeries(cmd)
		if err != nil {
			return err
		}
		plot, err := indicator.Plot(cmd.String("indicator"), series, int(cmd.Int("period")))
		if err != nil {
			return err
		}

		var text string
		switch cmd.String("format") {
		case "json":
			text, err = indicator.FormatPlotDataJSON([]indicator.PlotData{plot})
		case "csv":
			text, err = indicator.FormatPlotDataCSV([]indicator.PlotData{plot})
		default:
			return fmt.Errorf("unknown format %q (want json or csv)", cmd.String("format"))
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, text)
		return err
	}
}

func schemaAction(out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		schema, err := config.Schema()
		if err != nil {
			return fmt.Errorf("failed to generate schema: %w", err)
		}
		_, err = fmt.Fprintln(out, schema)
		return err
	}
}

func configAction(out io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		yamlBytes, err := yaml.Marshal(config.DefaultConfig())
		if err != nil {
			return fmt.Errorf("failed to marshal default config: %w", err)
		}
		yamlBytes = append([]byte("# yaml-language-server: $schema="+schemaName+"\n"), yamlBytes...)
		_, err = out.Write(yamlBytes)
		return err
	}
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "CSV file of bars with a `price` or `close` column, oldest first",
		},
		&cli.IntFlag{
			Name:  "demo",
			Usage: "Generate `N` synthetic bars instead of reading --file",
		},
		&cli.IntFlag{
			Name:  "seed",
			Usage: "Seed for --demo bars",
			Value: 42,
		},
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "gosignal",
		Usage:  "Evaluate technical-analysis signals over a bar series",
		Writer: out,
		Commands: []*cli.Command{
			{
				Name:  "evaluate",
				Usage: "Run every strategy of the catalogue against the latest bar",
				Flags: append(sourceFlags(),
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "YAML config overriding the default periods and thresholds",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print results as JSON",
					},
					&cli.BoolFlag{
						Name:  "only-matches",
						Usage: "Only list strategies whose condition fired",
					},
					&cli.StringFlag{
						Name:  "log-level",
						Usage: "Log level for strategy failures (debug, info, warn, error)",
						Value: "warn",
					},
				),
				Action: evaluateAction(out),
			},
			{
				Name:  "series",
				Usage: "Dump one indicator series as plot data",
				Flags: append(sourceFlags(),
					&cli.StringFlag{
						Name:    "indicator",
						Aliases: []string{"i"},
						Usage:   fmt.Sprintf("Indicator name (one of %v)", indicator.SeriesNames()),
						Value:   "sma",
					},
					&cli.IntFlag{
						Name:    "period",
						Aliases: []string{"p"},
						Usage:   "Indicator period",
						Value:   20,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: json or csv",
						Value: "json",
					},
				),
				Action: seriesAction(out),
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the config file",
				Action: schemaAction(out),
			},
			{
				Name:   "config",
				Usage:  "Print the default config as YAML",
				Action: configAction(out),
			},
		},
	}
}

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
