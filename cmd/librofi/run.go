package librofi

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/qtc-de/librofi/rofi"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Pick a program from PATH and launch it",
	Long: `Scans every directory on PATH for executables, shows the collected
names in rofi and launches the selection detached from the terminal.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		session, err := rofi.NewSession()
		if err != nil {
			return err
		}

		names, err := pathExecutables()
		if err != nil {
			return err
		}

		if len(names) == 0 {
			return fmt.Errorf("no executables found on PATH")
		}

		session.SetName("run")
		session.SetCaseInsensitive(true)

		for _, name := range names {
			session.AddEntry(name)
		}

		var launchErr error

		session.SetSuccessCallback(func(output string) {
			launchErr = launch(strings.TrimSpace(output))
		})
		session.SetCanceledCallback(func(string) {})

		if err := session.Start(); err != nil {
			return err
		}

		return launchErr
	},
}

// pathExecutables returns the sorted, deduplicated names of all
// executable files found in the directories on PATH.
func pathExecutables() ([]string, error) {
	dirs := filepath.SplitList(os.Getenv("PATH"))
	if len(dirs) == 0 {
		return nil, fmt.Errorf("PATH is empty")
	}

	bar := progressbar.Default(int64(len(dirs)), "scanning PATH")
	seen := make(map[string]struct{})

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Stale PATH members are common and not worth failing over.
			slog.Debug("Skipping unreadable PATH directory", "dir", dir, "error", err)
			_ = bar.Add(1)

			continue
		}

		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil || info.IsDir() || info.Mode()&0o111 == 0 {
				continue
			}

			seen[entry.Name()] = struct{}{}
		}

		_ = bar.Add(1)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}

// launch starts the selected program detached, so it outlives the
// librofi process.
func launch(name string) error {
	if name == "" {
		return nil
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("could not find %s: %w", name, err)
	}

	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not launch %s: %w", path, err)
	}

	return cmd.Process.Release()
}

func init() {
	rootCmd.AddCommand(runCmd)
}
