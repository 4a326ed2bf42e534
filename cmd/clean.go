package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/palaver-chat/palaver/internal/config"
	"github.com/palaver-chat/palaver/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove log files and saved room state",
	Long: `Removes palaver log files from /tmp and clears the saved read
watermarks and last-opened room from the config file.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	// Load config to show what will be cleaned
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	watermarks := cfg.AllLastRead()
	lastRoom := cfg.GetLastRoom()

	logFiles, err := filepath.Glob("/tmp/palaver-*.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error listing log files: %v\n", err)
	}

	// Check if there's anything to clean
	if len(watermarks) == 0 && lastRoom == "" && len(logFiles) == 0 {
		fmt.Println("Nothing to clean.")
		return nil
	}

	// Print summary of what will be cleaned
	fmt.Println("This will clean:")
	if len(watermarks) > 0 {
		fmt.Printf("  - %d saved read mark(s)\n", len(watermarks))
	}
	if lastRoom != "" {
		fmt.Printf("  - last open room (%s)\n", lastRoom)
	}
	if len(logFiles) > 0 {
		fmt.Printf("  - %d log file(s) in /tmp\n", len(logFiles))
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, "Continue?") {
			fmt.Println("Aborted.")
			return nil
		}
	}

	cfg.SetLastRoom("")
	for token := range watermarks {
		cfg.SetLastRead(token, 0)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	logsCleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
	}

	// Print results
	fmt.Println()
	fmt.Println("Cleaned:")
	if len(watermarks) > 0 {
		fmt.Printf("  - %d read mark(s) cleared\n", len(watermarks))
	}
	if lastRoom != "" {
		fmt.Println("  - last open room cleared")
	}
	if logsCleared > 0 {
		fmt.Printf("  - %d log file(s) removed\n", logsCleared)
	}

	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Printf("%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
