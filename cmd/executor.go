package cmd

import (
	"BlueprintDock/internal/blueprint"
	"BlueprintDock/internal/config"
	"BlueprintDock/internal/console"
	"BlueprintDock/internal/constants"
	"BlueprintDock/internal/logger"
	"BlueprintDock/internal/meta"
	"BlueprintDock/internal/paths"
	"BlueprintDock/internal/version"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Execute runs the configurable CLI form. Fatal processing errors go through
// logger.Fatal so the main run loop can recover, clean up and exit 1; this
// is where the exit-on-error policy lives, not in the meta core.
func Execute(ctx context.Context, opts *Options) int {
	if opts.ShowHelp {
		PrintHelp()
		return 0
	}
	if opts.ShowVersion {
		handleVersion()
		return 0
	}

	if opts.Debug {
		logger.SetLevel(logger.LevelDebug)
	} else if opts.Verbose {
		logger.SetLevel(logger.LevelInfo)
	}

	conf := config.LoadAppConfig()
	procOpts := buildOptions(opts, conf)

	if opts.Watch {
		return runWatch(ctx, procOpts, opts, conf)
	}

	return runOnce(ctx, procOpts, opts, conf)
}

// buildOptions layers config-file defaults under explicit flags.
func buildOptions(opts *Options, conf config.AppConfig) meta.Options {
	o := meta.DefaultOptions()
	if conf.Meta.IndexFile != "" {
		o.InputFile = conf.Meta.IndexFile
	}
	o.CreateBackup = conf.Meta.CreateBackup
	o.ValidateSchema = conf.Meta.ValidateSchema

	if opts.Input != "" {
		o.InputFile = opts.Input
	}
	o.OutputFile = opts.Output
	if opts.Backup {
		o.CreateBackup = true
	}
	if opts.NoBackup {
		o.CreateBackup = false
	}
	if opts.NoSchema {
		o.ValidateSchema = false
	}
	o.Verbose = opts.Verbose || opts.Debug
	return o
}

func runOnce(ctx context.Context, procOpts meta.Options, opts *Options, conf config.AppConfig) int {
	var before []byte
	if opts.Diff {
		// The input is read again here because Process overwrites it in-place.
		before, _ = os.ReadFile(procOpts.InputFile)
	}

	p := meta.NewProcessor(procOpts)
	sum, err := p.Process(ctx)
	if err != nil {
		logger.Fatal(ctx, err.Error())
	}

	if opts.Diff && sum.Changed {
		out := procOpts.OutputFile
		if out == "" {
			out = procOpts.InputFile
		}
		after, _ := os.ReadFile(out)
		fmt.Print(console.Parse(meta.Preview(before, after)))
	}

	if opts.Check {
		dir := conf.BlueprintsDir
		if dir == "" {
			dir = filepath.Join(filepath.Dir(procOpts.InputFile), constants.BlueprintsDirName)
		}
		issues := blueprint.Check(ctx, sum.Records, dir)
		if len(issues) == 0 {
			logger.Notice(ctx, "Catalog check passed: all %d entries have valid blueprint folders.", sum.FinalCount)
		} else {
			logger.Notice(ctx, "Catalog check found %d issues.", len(issues))
		}
	}

	sum.Log(ctx)
	return 0
}

func handleVersion() {
	console.Println(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	console.Println(fmt.Sprintf("Commit: {{_Version_}}%s{{|-|}} built {{_Version_}}%s{{|-|}}", version.Commit, version.BuildDate))
	wd, err := os.Getwd()
	if err == nil {
		console.Println(fmt.Sprintf("Catalog: {{_Version_}}%s{{|-|}}", paths.GetCatalogVersion(wd)))
	}
}
