// Command aac validates architecture definitions and exports their
// decomposition and data dictionary.
//
//	aac [flags] <validate|export|json|yaml|puml|spec> <file>
//
// With -watch the command reruns whenever the file or one of its imports
// changes, until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"aac/internal/codec"
	"aac/internal/config"
	"aac/internal/logging"
	"aac/internal/service"
	"aac/internal/watcher"

	"go.uber.org/zap"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("aac", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "config file (default: search $AAC_CONFIG, ./aac.yaml, XDG dirs, /etc/aac)")
	outPath := fs.String("o", "", "write output to file instead of stdout")
	format := fs.String("format", "", "output format for export: json, yaml or puml")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "log format: console or json")
	strict := fs.Bool("strict", false, "treat validation warnings as errors")
	allowDup := fs.Bool("allow-duplicate-ids", false, "accept data entries sharing an entry ID")
	watch := fs.Bool("watch", false, "rerun whenever a loaded file changes")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: aac [flags] <validate|export|json|yaml|puml|spec> <file>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}
	command, file := fs.Arg(0), fs.Arg(1)
	switch command {
	case "validate", "export", "json", "yaml", "puml", "spec":
	default:
		fmt.Fprintf(stderr, "aac: unknown command %q\n", command)
		fs.Usage()
		return exitUsage
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, _, err = config.LoadFromPath(*configPath)
	} else {
		cfg, _, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "aac: %v\n", err)
		return exitUsage
	}
	cfg.ApplyEnv()

	// Explicit flags override file and environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output.Path = *outPath
		case "format":
			cfg.Output.Format = *format
		case "log-level":
			cfg.Log.Level = config.ParseLogLevel(*logLevel)
		case "log-format":
			cfg.Log.Format = config.ParseLogFormat(*logFormat)
		case "strict":
			cfg.Validation.Strict = *strict
		case "allow-duplicate-ids":
			cfg.Validation.AllowDuplicateIDs = *allowDup
		}
	})

	logger := logging.New(string(cfg.Log.Level), string(cfg.Log.Format), stderr)
	defer logger.Sync()
	logger.Debug("configuration", zap.String("summary", cfg.Summary()))

	svc := service.New(logger, service.Options{
		Strict:            cfg.Validation.Strict,
		AllowDuplicateIDs: cfg.Validation.AllowDuplicateIDs,
	})

	// export writes the configured output format
	if command == "export" {
		exporter, err := codec.ForFormat(cfg.Output.Format)
		if err != nil {
			fmt.Fprintf(stderr, "aac: %v\n", err)
			return exitUsage
		}
		command = exporter.Format()
	}

	sources, code := execute(ctx, svc, command, file, cfg.Output.Path, stdout, stderr)
	if !*watch {
		return code
	}
	if len(sources) == 0 {
		sources = []string{file}
	}

	// The watched set is fixed at startup; imports added later need a restart
	w, err := watcher.New(logger, sources, func(string) {
		execute(ctx, svc, command, file, cfg.Output.Path, stdout, stderr)
	})
	if err != nil {
		return report(stderr, err)
	}
	if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return report(stderr, err)
	}
	return exitOK
}

// execute runs command once and returns the files it read
func execute(ctx context.Context, svc *service.Service, command, file, outPath string, stdout, stderr io.Writer) ([]string, int) {
	if command == "validate" {
		res, err := svc.Run(ctx, service.Request{Path: file})
		if err != nil {
			return sourcesOf(res), report(stderr, err)
		}
		fmt.Fprintf(stdout, "%s: ok\n", file)
		return sourcesOf(res), exitOK
	}

	out, closeOut, err := openOutput(outPath, stdout)
	if err != nil {
		return nil, report(stderr, err)
	}
	defer closeOut()

	if command == "spec" {
		spec, err := svc.Normalize(ctx, file, out)
		if err != nil {
			return nil, report(stderr, err)
		}
		return spec.Sources(), exitOK
	}

	res, err := svc.Run(ctx, service.Request{Path: file, Format: command, Out: out})
	if err != nil {
		return sourcesOf(res), report(stderr, err)
	}
	return sourcesOf(res), exitOK
}

func sourcesOf(res *service.Result) []string {
	if res == nil || res.Spec == nil {
		return nil
	}
	return res.Spec.Sources()
}

func report(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "aac: %v\n", err)
	return exitFailure
}

// openOutput returns stdout when path is empty
func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" {
		return stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, func() { f.Close() }, nil
}
