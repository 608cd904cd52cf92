// Command termdemo drives a PTY-backed Terminal end to end: it spawns a
// shell, feeds its output through the core interpreter, mirrors the raw
// bytes to stdout, and on exit prints a styled summary of cursor position
// and dirty rows.
//
// Generalizes danielgatis-go-headless-term/examples/basic/main.go (which
// fed canned ANSI strings to a Terminal) into a real PTY round trip, and
// follows AryaLabsHQ-agentree/cmd/root.go's cobra + lipgloss shape.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/themikethompson/terminal-emulator/config"
	"github.com/themikethompson/terminal-emulator/pty"

	terminalcore "github.com/themikethompson/terminal-emulator"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Italic(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	cfgPath  string
	rowsFlag int
	colsFlag int
	shell    string
	runFor   time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "termdemo",
	Short: "Run a shell behind the terminal-emulator core and report what it saw",
	RunE:  run,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to a YAML config file (optional)")
	rootCmd.Flags().IntVar(&rowsFlag, "rows", 0, "terminal rows (overrides config)")
	rootCmd.Flags().IntVar(&colsFlag, "cols", 0, "terminal cols (overrides config)")
	rootCmd.Flags().StringVar(&shell, "shell", "", "shell to spawn (defaults to $SHELL, then /bin/sh)")
	rootCmd.Flags().DurationVar(&runFor, "for", 2*time.Second, "how long to let the shell run before reporting")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if rowsFlag > 0 {
		cfg.Rows = rowsFlag
	}
	if colsFlag > 0 {
		cfg.Cols = colsFlag
	}
	if shell != "" {
		cfg.Shell = shell
	}

	term := terminalcore.New(cfg.Rows, cfg.Cols)

	host, err := pty.New(cfg.Rows, cfg.Cols, cfg.Shell)
	if err != nil {
		return fmt.Errorf("starting pty: %w", err)
	}
	term.AttachPTY(host)
	defer func() {
		if err := term.Close(); err != nil {
			log.Printf("closing pty: %v", err)
		}
	}()

	deadline := time.Now().Add(runFor)
	buf := make([]byte, 4096)
	for time.Now().Before(deadline) {
		n, err := host.Read(buf)
		if err != nil {
			if errors.Is(err, pty.ErrWouldBlock) {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			break
		}
		if n > 0 {
			os.Stdout.Write(buf[:n])
			term.ProcessBytes(buf[:n])
		}
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("=== termdemo summary ==="))
	fmt.Printf("%s %d, %d\n", labelStyle.Render("cursor row/col:"), term.Cursor.Row, term.Cursor.Col)
	dirty := term.Grid.DirtyRows()
	fmt.Printf("%s %v\n", labelStyle.Render("dirty rows:"), dirty)
	fmt.Println(successStyle.Render("done"))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
