package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flavortown/internal/config"
	"flavortown/internal/logging"
	"flavortown/internal/ui"
)

const Version = "0.1.0"

// app holds what PersistentPreRunE resolves for the subcommands.
type app struct {
	configPath string
	dbPath     string
	verbose    bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "ft",
		Short:         "Flavortown: themes, golden fries and streaks",
		Long:          "Flavortown applies era/mood themes and tracks progression: golden fries, streaks, combos, achievements and a daily challenge.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "config file")
	cmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "state database (overrides config)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newApplyCmd(a),
		newStatusCmd(a),
		newAchievementsCmd(a),
		newChallengeCmd(a),
		newThemeCmd(a),
		newRandomCmd(a),
		newWatchCmd(a),
		newBoardCmd(a),
	)
	return cmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.DBPath = a.dbPath
	}
	a.cfg = cfg

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, a.verbose)
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug("config loaded", zap.String("config", a.configPath), zap.String("db", cfg.DBPath))
	return nil
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
