// Package cli provides the tasktracker command line. It serves the JSON API
// and task page, migrates the schema and seeds the default task statuses.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-task-tracker/internal/platform/config"
	"github.com/jsamuelsen11/go-task-tracker/internal/platform/logging"
)

const defaultConfigDir = "configs"

// globalOptions holds the persistent flags and the configuration they
// resolve to. cfg and logger are populated before any subcommand runs.
type globalOptions struct {
	profile   string
	configDir string

	cfg    *config.Config
	logger *slog.Logger
}

func (o *globalOptions) load(logOut io.Writer) error {
	profile := config.ResolveProfile(o.profile)
	cfg, err := config.Load(profile, config.WithConfigDir(o.configDir))
	if err != nil {
		return fmt.Errorf("loading %q profile: %w", profile, err)
	}
	o.cfg = cfg
	o.logger = logging.New(cfg.Log.Level, cfg.Log.Format, logOut).
		With(slog.String("profile", profile))
	return nil
}

// NewRootCommand creates the root command for tasktracker.
func NewRootCommand(version string) *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "tasktracker",
		Short: "Task list service",
		Long: `tasktracker serves a task list over a JSON API and an HTML page.

Configuration is read from {config-dir}/base.yaml, then the profile file,
then APP_* environment variables. The profile comes from --profile, else
APP_PROFILE, else "local".`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors leaves error printing to main
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&opts.profile, "profile", "p", "",
		"configuration profile (defaults to $"+config.ProfileEnv+", then "+config.DefaultProfile+")")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", defaultConfigDir,
		"directory holding base.yaml and the profile files")

	root.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newSeedCommand(opts),
	)

	return root
}
