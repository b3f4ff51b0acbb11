package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"wad-info/ds"
	"wad-info/logger"
	"wad-info/report"
	"wad-info/ui"
	"wad-info/wad"
)

// Run executes the parsed command and returns the process exit code.
func Run(ctx context.Context, args Args, stdout io.Writer, stderr io.Writer) int {
	log := logger.FromContext(ctx)

	switch {
	case args.Info != nil:
		return inspect(log, []string{args.Info.File}, args.Info.Outputs, stdout, stderr)
	case args.Batch != nil:
		paths, err := wad.Glob(args.Batch.Path)
		if err != nil {
			report.Error(stderr, args.Batch.Path, err)
			return 1
		}
		log.Debug("matched files", "path", args.Batch.Path, "count", len(paths))
		return inspect(log, paths, args.Batch.Outputs, stdout, stderr)
	case args.Interactive != nil:
		if err := ui.Start(args.Interactive.Path); err != nil {
			report.Error(stderr, args.Interactive.Path, err)
			return 1
		}
		return 0
	}

	log.Error("no command to run")
	return 2
}

func inspect(log logger.Logger, paths []string, outputs Outputs, stdout io.Writer, stderr io.Writer) int {
	exitCode := 0
	for _, path := range paths {
		start := time.Now()
		inspection, err := wad.InspectFile(path, outputs.NeedsTitle())
		log := log.With("path", path, "elapsed", time.Since(start))
		if err != nil {
			log.Debug("inspection failed", "error", err)
			report.Error(stderr, path, err)
			exitCode = 1
			continue
		}
		log.Debug("inspected", "offsets", ds.DumpJSON(inspection.Offsets))
		if err := write(*inspection, outputs, stdout); err != nil {
			report.Error(stderr, path, err)
			return 1
		}
	}
	return exitCode
}

func write(inspection wad.Inspection, outputs Outputs, w io.Writer) error {
	writers := []struct {
		enabled bool
		write   func(io.Writer, wad.Inspection) error
	}{
		{outputs.Header, report.Header},
		{outputs.Offsets, report.Segments},
		{outputs.CSV, report.CSV},
		{outputs.JSON, report.JSON},
	}
	for _, writer := range writers {
		if !writer.enabled {
			continue
		}
		if err := writer.write(w, inspection); err != nil {
			return err
		}
	}
	return nil
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if args.Info == nil && args.Batch == nil && args.Interactive == nil {
		parser.WriteHelp(os.Stdout)
		return
	}

	cfg, err := LoadConfig(args.Config)
	if err != nil {
		logger.Default().Error("loading config failed", "error", err)
		os.Exit(1)
	}
	cfg.Apply(&args)
	if err := args.Validate(); err != nil {
		parser.Fail(err.Error())
	}

	log := logger.Text(os.Stderr, logger.ParseLevel(args.LogLevel))
	ctx := logger.WithContext(context.Background(), log)
	os.Exit(Run(ctx, args, os.Stdout, os.Stderr))
}
