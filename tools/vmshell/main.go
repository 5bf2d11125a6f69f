// vmshell runs the kernel shell on the host. Keystrokes come from the host
// terminal (or a script file) and are translated into PS/2 scancodes; the
// screen is an in-memory 80x25 text console drawn with tcell.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	newScreenFn  = tcell.NewScreen
	isTerminalFn = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }
)

// options holds the command line flags.
type options struct {
	profile string
	variant string
	script  string
	verbose bool
}

func main() {
	ctx := context.Background()

	root := newRootCmd(afero.NewOsFs(), os.Stdin, os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "[vmshell] error:", err)
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs, stdin io.Reader, stdout io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "vmshell",
		Short: "Run the kernel shell in a simulated text console",
		Long: "vmshell boots the kernel shell against an in-memory VGA text console and a\n" +
			"simulated PS/2 keyboard. With --script, or when stdin is not a terminal, the\n" +
			"keystrokes are read from the file or stdin and the screen transcript is\n" +
			"printed once the input ends.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := NewStdLogger(log.New(cmd.ErrOrStderr(), "[vmshell] ", 0), opts.verbose)
			if opts.script != "" {
				return runScript(cmd.Context(), fs, opts, stdout, logger)
			}
			return runInteractive(cmd.Context(), fs, opts, stdin, stdout, logger)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVarP(&opts.profile, "profile", "p", "", "YAML machine profile (defaults to a single-disk virtual machine)")
	root.Flags().StringVar(&opts.variant, "variant", "", "Shell variant to boot: extended or minimal (overrides the profile)")
	root.Flags().StringVarP(&opts.script, "script", "s", "", "Read keystrokes from a file and print the screen transcript")
	root.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	return root
}

func loadProfile(fs afero.Fs, opts options) (Profile, error) {
	p, err := LoadProfile(fs, opts.profile)
	if err != nil {
		return Profile{}, err
	}
	if opts.variant != "" {
		p.Variant = opts.variant
	}
	return p, nil
}

func runScript(ctx context.Context, fs afero.Fs, opts options, stdout io.Writer, logger Logger) error {
	p, err := loadProfile(fs, opts)
	if err != nil {
		return err
	}

	f, err := fs.Open(opts.script)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	return runTranscript(ctx, p, f, stdout, logger)
}

// runTranscript feeds in to a machine and prints the screen transcript once
// the input ends.
func runTranscript(ctx context.Context, p Profile, in io.Reader, stdout io.Writer, logger Logger) error {
	m, err := NewMachine(p, in, nopRenderer{}, logger)
	if err != nil {
		return err
	}

	if err := m.Run(ctx); err != nil {
		return err
	}

	_, err = io.WriteString(stdout, strings.Join(m.Screen().Transcript(), "\n")+"\n")
	return err
}

func runInteractive(ctx context.Context, fs afero.Fs, opts options, stdin io.Reader, stdout io.Writer, logger Logger) error {
	p, err := loadProfile(fs, opts)
	if err != nil {
		return err
	}

	if f, ok := stdin.(*os.File); !ok || !isTerminalFn(f) {
		logger.Debug("stdin is not a terminal; printing a transcript", nil)
		return runTranscript(ctx, p, stdin, stdout, logger)
	}

	screen, err := newScreenFn()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	return runOnScreen(ctx, p, screen, logger)
}

// runOnScreen runs a machine on screen until the user presses Ctrl-C or
// Ctrl-D. Key events are translated back into host bytes and fed to the
// simulated keyboard through a pipe.
func runOnScreen(ctx context.Context, p Profile, screen tcell.Screen, logger Logger) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(vgaStyle(defaultFg, defaultBg))
	screen.Clear()

	if cols, rows := screen.Size(); cols < screenWidth || rows < screenHeight {
		logger.Warn("host terminal is smaller than the simulated screen", map[string]interface{}{
			"cols": cols,
			"rows": rows,
		})
	}

	keys, keysW := io.Pipe()
	defer keys.Close()

	go func() {
		keysW.CloseWithError(pumpKeys(screen, keysW))
	}()

	m, err := NewMachine(p, keys, newTcellRenderer(screen), logger)
	if err != nil {
		return err
	}

	if err := m.Run(ctx); err != nil && !errors.Is(err, ErrInterrupted) {
		return err
	}
	return nil
}
