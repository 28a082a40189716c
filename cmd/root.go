package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/porkengine/gutenberg/internal/config"
	"github.com/porkengine/gutenberg/internal/log"
	"github.com/porkengine/gutenberg/internal/media"
	mediasqlite "github.com/porkengine/gutenberg/internal/media/sqlite"
	"github.com/porkengine/gutenberg/internal/ui/playground"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "gutenberg",
	Short:   "A terminal playground for the block editor core",
	Long:    `A terminal playground for the gutenberg block editor core: paragraph and image blocks with caret-aware cross-block navigation, backed by a local media library.`,
	Version: version,
	RunE:    runPlayground,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/gutenberg/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to the media directory")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.highlight", defaults.UI.Highlight)
	viper.SetDefault("ui.subtle", defaults.UI.Subtle)
	viper.SetDefault("media.dir", defaults.Media.Dir)
	viper.SetDefault("media.base_url", defaults.Media.BaseURL)
	viper.SetDefault("media.cache_ttl_minutes", defaults.Media.CacheTTLMinutes)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .gutenberg/config.yaml (current directory)
		// 2. ~/.config/gutenberg/config.yaml (user config)
		if _, err := os.Stat(".gutenberg/config.yaml"); err == nil {
			viper.SetConfigFile(".gutenberg/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "gutenberg"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .gutenberg/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".gutenberg/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// openLibrary opens the media database under the configured media
// directory and wraps it in the library service. The caller owns closing
// the returned cleanup.
func openLibrary() (*media.Service, func(), error) {
	if err := os.MkdirAll(cfg.Media.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating media directory: %w", err)
	}

	db, err := mediasqlite.Open(filepath.Join(cfg.Media.Dir, "media.db"))
	if err != nil {
		return nil, nil, err
	}

	svc := media.NewService(
		mediasqlite.NewMediaRepository(db),
		media.WithBaseURL(cfg.Media.BaseURL),
		media.WithTTL(cfg.Media.CacheTTL()),
	)
	return svc, func() { _ = db.Close() }, nil
}

func runPlayground(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug {
		cleanup, err := log.InitWithTeaLog(filepath.Join(cfg.Media.Dir, "debug.log"), "gutenberg")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
	}

	library, closeDB, err := openLibrary()
	if err != nil {
		return err
	}
	defer closeDB()

	model := playground.New(cfg, library)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
