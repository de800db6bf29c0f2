// Command markdown-demo is an interactive showcase for the autocomplete
// core: a minimal plain-text markdown editor with the suggestion popup wired
// in. Type `#` at a line start, `:fi` after a word, ``` or `[` to see it.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		filePath   string
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "markdown-demo",
		Short: "Interactive demo of the markdown autocomplete popup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := loadKnobs(configPath)
			if err != nil {
				return err
			}

			text := defaultDocument
			if filePath != "" {
				data, err := os.ReadFile(filePath)
				if err != nil {
					return fmt.Errorf("read %s: %w", filePath, err)
				}
				text = string(data)
			}

			logger, cleanup, err := newLogger(debug)
			if err != nil {
				return err
			}
			defer cleanup()

			ui := newApp(appConfig{
				text:        text,
				maxItems:    k.MaxItems,
				settleDelay: time.Duration(k.SettleDelayMS) * time.Millisecond,
				maxWidth:    k.MaxWidth,
				logger:      logger,
			})

			_, err = tea.NewProgram(ui, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "markdown file to open")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config with popup knobs")
	cmd.Flags().BoolVar(&debug, "debug", false, "write diagnostics to markdown-demo.log")
	return cmd
}

// newLogger builds the diagnostics logger. The TUI owns the terminal, so
// debug output goes to a file instead of stderr.
func newLogger(debug bool) (logr.Logger, func(), error) {
	if !debug {
		return logr.Discard(), func() {}, nil
	}

	zc := zap.NewDevelopmentConfig()
	zc.OutputPaths = []string{"markdown-demo.log"}
	zc.ErrorOutputPaths = []string{"markdown-demo.log"}
	zl, err := zc.Build()
	if err != nil {
		return logr.Logger{}, nil, fmt.Errorf("build logger: %w", err)
	}
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

const defaultDocument = `# markdown-demo

Type on a fresh line to trigger suggestions:

- "#" for headings, "-" "*" ">" "|" for blocks
- ":fi" anywhere for emoji
- three backticks for code fences
- "[" for links to the headings of this document

## Keys

Arrows move, enter/tab accept, esc dismisses, ctrl+q quits.
`
