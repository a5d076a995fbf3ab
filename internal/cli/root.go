package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/cruciblehq/cruxpkg/internal"
)

// Represents the root command for cruxpkg.
var RootCmd struct {
	Quiet    bool        `short:"q" help:"Suppress informational output."`
	Verbose  bool        `short:"v" help:"Add timestamps and call sites to log output."`
	Debug    bool        `short:"d" help:"Enable debug output."`
	Config   string      `short:"c" help:"Configuration file (default: XDG config directory)." placeholder:"PATH" type:"path"`
	State    string      `help:"Build context state file, overriding the configuration." placeholder:"PATH" type:"path"`
	Init     InitCmd     `cmd:"" help:"Start a new build context."`
	Setup    SetupCmd    `cmd:"" help:"Bootstrap the base root filesystem."`
	Ensure   EnsureCmd   `cmd:"" help:"Install the packages needed by build features."`
	Install  InstallCmd  `cmd:"" help:"Install packages by name."`
	Remove   RemoveCmd   `cmd:"" help:"Remove packages by name."`
	Finish   FinishCmd   `cmd:"" help:"Remove build-only packages and write the package manifest."`
	Features FeaturesCmd `cmd:"" help:"List features and the packages they map to."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Resolves build features to distribution packages and installs them into an image root."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	logger, ok := slog.Default().Handler().(*log.Logger)
	if !ok {
		return // Not a charm logger, nothing to configure
	}

	internal.SetDebug(RootCmd.Debug || internal.IsDebug())
	internal.SetQuiet(RootCmd.Quiet || internal.IsQuiet())
	internal.SetVerbose(RootCmd.Verbose || internal.IsVerbose())

	logger.SetLevel(log.Level(internal.LogLevel()))
	logger.SetReportTimestamp(internal.IsVerbose())
	logger.SetReportCaller(internal.IsVerbose())
	logger.SetOutput(os.Stderr)
}

// Loads the configuration and applies global flag overrides.
func loadConfig() (*Config, error) {
	cfg, err := LoadConfig(RootCmd.Config)
	if err != nil {
		return nil, err
	}
	if RootCmd.State != "" {
		cfg.State = RootCmd.State
	}
	return cfg, nil
}
