package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"github.com/thecodeteam/goodbye"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/forktracker/forktracker/internal/cfg"
	"github.com/forktracker/forktracker/internal/forkstatus"
	"github.com/forktracker/forktracker/internal/githubclt"
	"github.com/forktracker/forktracker/internal/logfields"
)

const appName = "forktracker"

var logger *zap.Logger

// Version is set via a ldflag on compilation
var Version = "unknown"

func exitOnErr(msg string, err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "ERROR:", msg+", error:", err.Error())
	os.Exit(1)
}

func panicHandler() {
	if r := recover(); r != nil {
		logger.Info(
			"panic caught, terminating",
			zap.String("panic", fmt.Sprintf("%v", r)),
			zap.StackSkip("stacktrace", 1),
		)

		ctx, cancelFn := context.WithTimeout(context.Background(), time.Minute)
		defer cancelFn()

		goodbye.Exit(ctx, 1)
	}
}

type arguments struct {
	Verbose     *bool
	DryRun      *bool
	ConfigFile  *string
	ShowVersion *bool
}

var args arguments

const defConfigFile = "/etc/forktracker/config.toml"

func mustParseCommandlineParams() {
	args = arguments{
		Verbose: pflag.BoolP(
			"verbose",
			"v",
			false,
			"enable verbose logging",
		),
		DryRun: pflag.Bool(
			"dry-run",
			false,
			"simulate all changing github operations",
		),
		ConfigFile: pflag.StringP(
			"cfg-file",
			"c",
			defConfigFile,
			"path to the forktracker configuration file",
		),
		ShowVersion: pflag.Bool(
			"version",
			false,
			"print the version and exit",
		),
	}

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTION]\nRecord the fork status of a repository in a pull request and keep block annotations in sync.\n", appName)
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()
}

func mustLoadCfg() *cfg.Config {
	// we use exitOnErr in this function instead of logger.Fatal() because
	// the logger is not initialized yet

	file, err := os.Open(*args.ConfigFile)
	if err != nil {
		// running without a config file is supported, all settings
		// can come from the environment
		if os.IsNotExist(err) && !pflag.CommandLine.Changed("cfg-file") {
			config := cfg.Default()
			config.ApplyEnv()

			return config
		}

		exitOnErr(fmt.Sprintf("could not open configuration file: %s", *args.ConfigFile), err)
	}
	defer file.Close()

	config, err := cfg.Load(file)
	if err != nil {
		exitOnErr(fmt.Sprintf("could not load configuration file: %s", *args.ConfigFile), err)
	}

	config.ApplyEnv()

	return config
}

func initLogFmtLogger(config *cfg.Config, logLevel zapcore.Level) *zap.Logger {
	cfg := zapEncoderConfig(config)

	logger := zap.New(zapcore.NewCore(
		zaplogfmt.NewEncoder(cfg),
		os.Stderr,
		logLevel),
	)

	return logger
}

func zapEncoderConfig(config *cfg.Config) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()

	cfg.LevelKey = "loglevel"
	cfg.TimeKey = config.LogTimeKey
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder

	return cfg
}

func mustInitZapFormatLogger(config *cfg.Config, logLevel zapcore.Level) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	cfg.EncoderConfig = zapEncoderConfig(config)
	cfg.OutputPaths = []string{"stderr"}
	cfg.Encoding = config.LogFormat
	cfg.Level = zap.NewAtomicLevelAt(logLevel)

	logger, err := cfg.Build()
	exitOnErr("could not initialize logger", err)

	return logger
}

func mustInitLogger(config *cfg.Config) {
	var logLevel zapcore.Level
	if *args.Verbose {
		logLevel = zapcore.DebugLevel
	} else {
		if err := (&logLevel).Set(config.LogLevel); err != nil {
			fmt.Fprintf(os.Stderr, "can not set log level to %q: %s\n", config.LogLevel, err)
			os.Exit(2)
		}
	}

	switch config.LogFormat {
	case "logfmt":
		logger = initLogFmtLogger(config, logLevel)
	case "console", "json":
		logger = mustInitZapFormatLogger(config, logLevel)
	default:
		fmt.Fprintf(os.Stderr, "unsupported log-format argument: %q\n", config.LogFormat)
		os.Exit(2)
	}

	logger = logger.Named("main")
	zap.ReplaceGlobals(logger)

	goodbye.Register(func(context.Context, os.Signal) {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "flushing logs failed: %s\n", err)
		}
	})
}

func hide(in string) string {
	if in == "" {
		return in
	}

	return "**hidden**"
}

func main() {
	defer panicHandler()

	ctx := context.Background()
	goodbye.Notify(ctx)

	mustParseCommandlineParams()

	if *args.ShowVersion {
		fmt.Printf("%s %s\n", appName, Version)
		os.Exit(0) // nolint:gocritic // defer functions won't run
	}

	config := mustLoadCfg()

	mustInitLogger(config)

	goodbye.Register(func(_ context.Context, sig os.Signal) {
		logger.Info(fmt.Sprintf("terminating, received signal %s", sig.String()))
	})

	if config.GithubAPIToken == "" {
		fmt.Fprintln(os.Stderr, "ERROR: github api token is not configured")
		os.Exit(2)
	}

	repo, err := forkstatus.ParseRepository(config.Repository)
	exitOnErr("could not determine the repository to operate on", err)

	logger.Info(
		"cfg loaded",
		logfields.Event("cfg_loaded"),
		zap.String("cfg_file", *args.ConfigFile),
		logfields.RepositoryOwner(repo.Owner),
		logfields.Repository(repo.Name),
		logfields.BaseBranch(config.BaseBranch),
		zap.String("github_api_token", hide(config.GithubAPIToken)),
		zap.Strings("excluded_repositories", config.ExclusionList()),
		zap.String("log_format", config.LogFormat),
		zap.String("log_time_key", config.LogTimeKey),
		zap.String("log_level", config.LogLevel),
		zap.Bool("dry_run", *args.DryRun),
	)

	var ghClient forkstatus.GithubClient = githubclt.New(config.GithubAPIToken)
	if *args.DryRun {
		ghClient = forkstatus.NewDryClient(ghClient, logger)
	}

	status, err := forkstatus.NewInspector(ghClient, config.ExclusionList()).Evaluate(ctx, repo)
	if err != nil {
		logger.Error(
			"determining fork status failed",
			logfields.Event("run_failed"),
			zap.Error(err),
		)

		goodbye.Exit(ctx, 1)
	}

	if status.IsEmpty() {
		logger.Info(
			"repository is not a tracked fork, nothing to do",
			logfields.Event("run_finished"),
		)

		goodbye.Exit(ctx, 0)
	}

	result, err := forkstatus.NewReconciler(ghClient, config.BaseBranch).Reconcile(ctx, repo, status)
	if err != nil {
		logger.Error(
			"reconciling the fork status pull request failed",
			logfields.Event("run_failed"),
			zap.Error(err),
		)

		goodbye.Exit(ctx, 1)
	}

	// the pull request URL is the output of the run, everything else
	// is logged to stderr
	fmt.Println(result.URL)

	if err := forkstatus.NewLinker(ghClient).Relink(ctx, repo, result.Number); err != nil {
		logger.Error(
			"relinking open pull requests failed",
			logfields.Event("run_failed"),
			logfields.PullRequest(result.Number),
			zap.Error(err),
		)

		goodbye.Exit(ctx, 1)
	}

	logger.Info(
		"run finished",
		logfields.Event("run_finished"),
		logfields.PullRequest(result.Number),
	)

	goodbye.Exit(ctx, 0)
}
