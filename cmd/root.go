package cmd

import (
	"context"
	"os"
	"path/filepath"
	"time"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/Laisky/video-search/library/config"
	"github.com/Laisky/video-search/library/log"
)

var rootCMD = &cobra.Command{
	Use:   "video-search",
	Short: "search videos by asking questions",
	Long: `video-search asks a natural-language question to the question-answering API
and shows the answer together with the matching video links.

Without a subcommand the interactive view is started.`,
	Args:         gcmd.NoExtraArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize(cmd.Context(), cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func initialize(ctx context.Context, cmd *cobra.Command) error {
	if err := gconfig.Shared.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind pflags")
	}

	if err := setupSettings(ctx, cmd); err != nil {
		return errors.Wrap(err, "setup settings")
	}
	if err := validateStartupConfig(); err != nil {
		return err
	}
	if err := setupLogger(ctx); err != nil {
		return errors.Wrap(err, "setup logger")
	}

	return nil
}

// setupSettings layers defaults, the config file, the environment and the flags
func setupSettings(_ context.Context, cmd *cobra.Command) error {
	// mode
	if gconfig.Shared.GetBool("debug") {
		gconfig.Shared.Set("log-level", "debug")
	}

	// load configuration
	cfgPath := gconfig.Shared.GetString("config")
	if err := config.LoadFromFile(cfgPath); err != nil {
		return errors.Wrapf(err, "load configuration %q", cfgPath)
	}
	config.LoadEnv()

	// explicit flags win over file and environment
	flags := cmd.Flags()
	if flags.Changed("api-base-url") {
		v, err := flags.GetString("api-base-url")
		if err != nil {
			return errors.Wrap(err, "get api-base-url")
		}
		gconfig.Shared.Set(config.KeyAPIBaseURL, v)
	}
	if flags.Changed("timeout") {
		v, err := flags.GetDuration("timeout")
		if err != nil {
			return errors.Wrap(err, "get timeout")
		}
		gconfig.Shared.Set(config.KeyAPITimeout, v.String())
	}

	config.SetDefaults()
	log.Logger.Debug("settings loaded",
		zap.String("api_base_url", config.APIBaseURL()),
		zap.String("api_timeout", config.APITimeout()))
	return nil
}

func setupLogger(_ context.Context) error {
	lvl := gconfig.Shared.GetString("log-level")
	if err := log.Logger.ChangeLevel(glog.Level(lvl)); err != nil {
		return errors.Wrapf(err, "change log level to %q", lvl)
	}

	return nil
}

// logFilePath is where the interactive view writes its log
func logFilePath() string {
	if p := gconfig.Shared.GetString("log-file"); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), "video-search.log")
}

// apiTimeout parses the configured per-request deadline, zero when unset
func apiTimeout() (time.Duration, error) {
	raw := config.APITimeout()
	if raw == "" {
		return 0, nil
	}

	timeout, err := parseStrictDuration(raw)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", config.KeyAPITimeout)
	}
	return timeout, nil
}

func init() {
	rootCMD.PersistentFlags().Bool("debug", false, "run in debug mode")
	rootCMD.PersistentFlags().StringP("config", "c", "", "config file path, like `settings.yml`")
	rootCMD.PersistentFlags().String("log-level", "info", "`debug/info/warn/error`")
	rootCMD.PersistentFlags().String("log-file", "", "log file of the interactive view, defaults to the temp dir")
	rootCMD.PersistentFlags().String("api-base-url", config.DefaultAPIBaseURL, "origin of the question-answering API")
	rootCMD.PersistentFlags().Duration("timeout", 0, "per-request deadline, like `30s`, zero means none")
}

// Execute execute root command
func Execute() {
	if err := rootCMD.ExecuteContext(context.Background()); err != nil {
		log.Logger.Error("run", zap.Error(err))
		os.Exit(1)
	}
}
