package librofi

import (
	"fmt"

	"github.com/qtc-de/librofi/config"
	"github.com/spf13/cobra"
)

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the selector setup",
	Long: `Reports where librofi looks for its config file and which rofi
binary it would spawn. Exits non-zero when no executable resolves.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		dir, err := config.Dir()
		if err != nil {
			return err
		}

		fmt.Printf("config directory: %s\n", dir)

		v, err := config.Load()
		if err != nil {
			return err
		}

		if used := v.ConfigFileUsed(); used != "" {
			fmt.Printf("config file:      %s\n", used)
		} else {
			fmt.Printf("config file:      none\n")
		}

		executable, err := config.ResolveExecutable()
		if err != nil {
			return fmt.Errorf("no selector executable: %w", err)
		}

		fmt.Printf("executable:       %s\n", executable)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
