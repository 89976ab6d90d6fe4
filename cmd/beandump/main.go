/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command beandump loads component configuration files and prints the
// resulting definitions as YAML or JSON. With --export the snapshot is also
// written to DynamoDB; "beandump show <id>" prints a stored snapshot.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/suparena/mapperconfig"
	"github.com/suparena/mapperconfig/scan"
	"github.com/suparena/mapperconfig/snapshot"
	"github.com/suparena/mapperconfig/snapshot/ddb"
	"github.com/suparena/mapperconfig/xmlconfig"
)

// storeFactory opens the snapshot store described by cfg.
type storeFactory func(ctx context.Context, cfg config) (snapshot.Store, error)

type app struct {
	out      io.Writer
	errOut   io.Writer
	lookup   lookupFunc
	newStore storeFactory
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		out:      os.Stdout,
		errOut:   os.Stderr,
		lookup:   os.LookupEnv,
		newStore: newDynamoStore,
	}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newDynamoStore(ctx context.Context, cfg config) (snapshot.Store, error) {
	if cfg.Table == "" {
		return nil, fmt.Errorf("no snapshot table configured; set %s", envTable)
	}
	client, err := ddb.NewDynamoDBClient(ctx, cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return ddb.NewStore(client, cfg.Table), nil
}

type globalFlags struct {
	envFile   string
	logLevel  string
	logFormat string
	format    string
}

func newRootCmd(a *app) *cobra.Command {
	var (
		g        globalFlags
		failFast bool
		export   bool
		scanDir  string
	)

	cmd := &cobra.Command{
		Use:   "beandump [flags] file.xml...",
		Short: "Load component configuration and print the resulting definitions",
		Long: `beandump reads one or more <beans> configuration files into a single
registry, reports any configuration problems on stderr and prints every
registered definition. Entity types named by base-package attributes are
found by scanning Go packages for //mongo:document and //mapping:persistent.`,
		Version:       mapperconfig.Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(g)
			if err != nil {
				return err
			}
			cfg.FailFast = cfg.FailFast || failFast
			return a.dump(cmd.Context(), cfg, g.format, scanDir, export, args)
		},
	}
	cmd.SetVersionTemplate(mapperconfig.BuildInfo("beandump"))

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.envFile, "env-file", ".env", "Read default settings from this dotenv file")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&g.logFormat, "log-format", "", "Log format (text, json)")
	pf.StringVarP(&g.format, "format", "f", "yaml", "Output format (yaml, json)")

	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first configuration problem")
	cmd.Flags().BoolVar(&export, "export", false, "Save the snapshot to the configured DynamoDB table")
	cmd.Flags().StringVar(&scanDir, "scan-dir", "", "Directory to resolve base packages from (default: current directory)")

	cmd.AddCommand(newShowCmd(a, &g))
	return cmd
}

func newShowCmd(a *app, g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <snapshot-id>",
		Short: "Print a snapshot saved with --export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config(*g)
			if err != nil {
				return err
			}
			store, err := a.newStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			snap, err := store.Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load snapshot %s: %w", args[0], err)
			}
			return a.print(snap, g.format)
		},
	}
}

// config merges environment settings with the logging flags.
func (a *app) config(g globalFlags) (config, error) {
	cfg, err := loadConfig(g.envFile, a.lookup)
	if err != nil {
		return config{}, err
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if g.logFormat != "" {
		cfg.LogFormat = g.logFormat
	}
	return cfg, nil
}

func (a *app) dump(ctx context.Context, cfg config, format, scanDir string, export bool, files []string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, a.errOut)
	policy := xmlconfig.PolicyCollect
	if cfg.FailFast {
		policy = xmlconfig.PolicyFailFast
	}

	res, err := mapperconfig.LoadFiles(ctx, files,
		xmlconfig.WithLogger(logger),
		xmlconfig.WithPolicy(policy),
		xmlconfig.WithScanner(scan.NewPackageScanner(scanDir)),
	)
	if err != nil {
		return err
	}
	for _, p := range res.Problems.All() {
		fmt.Fprintln(a.errOut, p)
	}

	snap, err := snapshot.FromRegistry(res.Registry, strings.Join(files, ","))
	if err != nil {
		return err
	}
	if err := a.print(snap, format); err != nil {
		return err
	}

	if res.Problems.HasErrors() {
		return res.Problems.Err()
	}

	if export {
		store, err := a.newStore(ctx, cfg)
		if err != nil {
			return err
		}
		if err := store.Save(ctx, snap); err != nil {
			return fmt.Errorf("failed to export snapshot: %w", err)
		}
		logger.Info("Snapshot exported.", "id", snap.ID, "definitions", len(snap.Entries))
	}
	return nil
}

func (a *app) print(snap *snapshot.Snapshot, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	var (
		out []byte
		err error
	)
	if format == "json" {
		out, err = snap.JSON()
	} else {
		out, err = snap.YAML()
	}
	if err != nil {
		return err
	}
	if format == "json" {
		out = append(out, '\n')
	}
	_, err = a.out.Write(out)
	return err
}

func checkFormat(format string) error {
	switch format {
	case "yaml", "json":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want yaml or json)", format)
	}
}
