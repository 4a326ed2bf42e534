package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/palaver-chat/palaver/internal/app"
	"github.com/palaver-chat/palaver/internal/config"
	"github.com/palaver-chat/palaver/internal/demo"
	"github.com/palaver-chat/palaver/internal/logger"
	"github.com/palaver-chat/palaver/internal/talk"
)

var (
	debugMode             bool
	quietMode             bool
	dataDir               string
	demoMode              bool
	startRoom             string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "palaver",
	Short: "Terminal client for room-based chat",
	Long: `Palaver is a terminal client for reading and chatting in shared rooms.

Rooms load from JSONL archives in the configured data directory. With no
data directory configured (or with --demo) it runs against built-in rooms
fed by a scripted message stream.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "", "Load room archives from this directory")
	rootCmd.Flags().BoolVar(&demoMode, "demo", false, "Run against built-in demo rooms")
	rootCmd.Flags().StringVar(&startRoom, "room", "", "Open this room on startup")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("palaver %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("palaver %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	dir := resolveDataDir(cfg)

	var store *talk.Store
	var feed *talk.Feed
	if demoMode || dir == "" {
		if dir == "" && !demoMode {
			logger.Info("No data directory configured, using built-in demo rooms")
		}
		store, feed = demo.Seed(time.Now())
	} else {
		store, err = talk.LoadDir(dir)
		if err != nil {
			return fmt.Errorf("error loading archives from %s: %w", dir, err)
		}
		talk.ApplyWatermarks(store, cfg.AllLastRead())
	}

	if startRoom != "" {
		if _, err := store.Room(startRoom); err != nil {
			return fmt.Errorf("unknown room %q", startRoom)
		}
		cfg.SetLastRoom(startRoom)
	}

	// Create and run the app
	m := app.New(cfg, version, store, feed)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}

	// Demo rooms reseed on every run, so their read state is not worth keeping.
	if !demoMode && dir != "" {
		if err := saveState(cfg, m, store); err != nil {
			return fmt.Errorf("error saving state: %w", err)
		}
	}
	return nil
}

// resolveDataDir prefers the --data-dir flag over the configured directory.
func resolveDataDir(cfg *config.Config) string {
	if dataDir != "" {
		return dataDir
	}
	return cfg.GetDataDir()
}

// saveState persists the open room and per-room read watermarks so the next
// run restores where the user left off.
func saveState(cfg *config.Config, m *app.Model, store *talk.Store) error {
	cfg.SetLastRoom(m.ActiveRoom())
	for _, room := range store.Rooms() {
		cfg.SetLastRead(room.Token(), int64(room.LastRead()))
	}
	return cfg.Save()
}
