package librofi

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/qtc-de/librofi/layout"
	"github.com/qtc-de/librofi/rofi"
	"github.com/spf13/cobra"
)

// menuCmd represents the menu command.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show a selection menu built from stdin or a file",
	Long: `Reads entries line by line, shows them in rofi and prints the
selection to stdout. With --separator and --width the entries are split
into aligned columns. Keybindings registered with --kb exit with a
dedicated code; their selection is printed as 'key:<binding> <text>'.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		session, err := rofi.NewSession()
		if err != nil {
			return err
		}

		entries, err := readEntries(entryFile)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			return fmt.Errorf("no entries to show")
		}

		session.SetName(prompt)
		session.SetMessage(mesg)
		session.SetCaseInsensitive(caseInsensitive)
		session.SetLines(lines)
		session.SetFilter(filter)

		if format != "" {
			if err := session.SetFormat(format[0]); err != nil {
				slog.Warn("Passing format character through anyway", "error", err)
			}
		}

		if separator != "" {
			column := &layout.Column{Width: width, Columns: columns, Separator: separator}
			if len(breakdown) > 0 {
				column.SetBreakdown(breakdown)
			}

			session.SetLayout(column)
		}

		var canceled bool

		session.SetSuccessCallback(func(output string) {
			fmt.Print(output)
		})
		session.SetCanceledCallback(func(string) {
			canceled = true
		})

		for _, binding := range keybindings {
			session.AddKeybinding(binding, func(output string) {
				fmt.Printf("key:%s %s", binding, output)
			})
		}

		for _, entry := range entries {
			session.AddEntry(entry)
		}

		if err := session.Start(); err != nil {
			return err
		}

		if canceled {
			return fmt.Errorf("selection canceled")
		}

		return nil
	},
}

// readEntries collects the menu entries from path, or from stdin when
// path is empty.
func readEntries(path string) ([]string, error) {
	var source io.Reader = os.Stdin

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open entry file: %w", err)
		}
		defer file.Close()

		source = file
	}

	var entries []string

	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read entries: %w", err)
	}

	return entries, nil
}

var (
	entryFile       string
	prompt          string
	mesg            string
	format          string
	keybindings     []string
	width           int
	columns         int
	separator       string
	breakdown       []int
	caseInsensitive bool
	lines           int
	filter          string
)

func init() {
	rootCmd.AddCommand(menuCmd)

	menuCmd.Flags().StringVarP(&entryFile, "file", "f", "",
		"File to read entries from instead of stdin")
	menuCmd.Flags().StringVarP(&prompt, "prompt", "p", "",
		"Prompt shown next to the input field")
	menuCmd.Flags().StringVarP(&mesg, "mesg", "m", "",
		"Message shown below the input field")
	menuCmd.Flags().StringVar(&format, "format", "",
		"Output format character passed to rofi (s, i, d, q, p, f or F)")
	menuCmd.Flags().StringArrayVar(&keybindings, "kb", nil,
		"Custom keybinding, e.g. 'Alt+d'. May be repeated")
	menuCmd.Flags().IntVar(&width, "width", 90,
		"Total line width for column layout")
	menuCmd.Flags().IntVar(&columns, "columns", 2,
		"Number of columns entries are split into")
	menuCmd.Flags().StringVar(&separator, "separator", "",
		"Field separator; enables column layout when set")
	menuCmd.Flags().IntSliceVar(&breakdown, "breakdown", nil,
		"Per-column width percentages, must sum to 100")
	menuCmd.Flags().BoolVarP(&caseInsensitive, "case-insensitive", "i", false,
		"Match entries case insensitively")
	menuCmd.Flags().IntVarP(&lines, "lines", "l", 0,
		"Number of visible rows")
	menuCmd.Flags().StringVar(&filter, "filter", "",
		"Prefill the input field")
}
