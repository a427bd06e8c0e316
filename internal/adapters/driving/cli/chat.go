package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/counsel-cli/internal/adapters/driving/tui/views/chat"
	"github.com/custodia-labs/counsel-cli/internal/core/domain"
	"github.com/custodia-labs/counsel-cli/internal/logger"
)

const farewell = "Good luck with your transfer journey!\nRemember: You've got this!"

var chatLineMode bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive counseling session",
	Long: `Starts a counseling session. On a terminal this opens the interactive UI;
when input is piped, or with --line, questions are read one per line.

Session commands:
  /set key=value   Remember a student fact, e.g. /set residency=resident
  /context         Show remembered facts
  quit, exit, bye  End the session

Facts and the transcript are discarded when the session ends.`,
	RunE: runChat,
}

// stdinIsTerminal reports whether standard input is interactive.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func init() {
	chatCmd.Flags().BoolVar(&chatLineMode, "line", false, "read questions line by line instead of opening the UI")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	if !chatLineMode && stdinIsTerminal() && isTerminal(cmd.OutOrStdout()) {
		return runTUI(cmd)
	}
	return runLineChat(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}

func runTUI(cmd *cobra.Command) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(sessionService, catalog))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// runLineChat reads questions from r until an exit word or end of input.
func runLineChat(ctx context.Context, r io.Reader, w io.Writer) error {
	session, err := sessionService.Start(ctx)
	if err != nil {
		return fmt.Errorf("starting session: %w", err)
	}
	defer func() {
		if err := sessionService.End(context.WithoutCancel(ctx), session.ID); err != nil {
			logger.Warn("ending session %s: %v", session.ID, err)
		}
	}()

	writeWelcome(w)

	// Lines are read whole; questions have no length limit.
	reader := bufio.NewReader(r)
	for {
		fmt.Fprint(w, "\nYour question: ")
		raw, err := reader.ReadString('\n')
		if err != nil && (raw == "" || !errors.Is(err, io.EOF)) {
			fmt.Fprintf(w, "\n\nSession ended. %s\n", farewell)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line := strings.TrimSpace(raw)
		lower := strings.ToLower(line)

		switch {
		case line == "":
			fmt.Fprintln(w, chat.EmptyQuestionHint)
			continue

		case lower == "quit" || lower == "exit" || lower == "bye":
			fmt.Fprintf(w, "\n%s\n", farewell)
			return nil

		case strings.HasPrefix(lower, "/set "):
			setLineContext(ctx, w, session.ID, strings.TrimSpace(line[len("/set "):]))
			continue

		case lower == "/context":
			student, err := sessionService.Context(ctx, session.ID)
			if err != nil {
				return fmt.Errorf("reading context: %w", err)
			}
			fmt.Fprintln(w, chat.FormatContext(student))
			continue
		}

		fmt.Fprintln(w, "\nProcessing your question...")
		result, err := sessionService.Ask(ctx, session.ID, line)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(w, "\nError processing your question: %v\nPlease try rephrasing your question.\n", err)
			continue
		}

		fmt.Fprintln(w)
		writeAnswer(w, result, nil)
		fmt.Fprintln(w, "\n"+strings.Repeat("-", 60))
	}
}

func setLineContext(ctx context.Context, w io.Writer, sessionID, assignment string) {
	key, value, err := domain.ParseAssignment(assignment)
	if err == nil {
		err = sessionService.SetContext(ctx, sessionID, key, value)
	}
	if err != nil {
		fmt.Fprintf(w, "Could not set context: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Noted: %s = %v\n", key, value)
}

func writeWelcome(w io.Writer) {
	fmt.Fprintln(w, "Welcome to your UC/CSU Transfer Counseling Session!")
	fmt.Fprintln(w, "Ask me anything about transferring, financial aid, careers, or academics.")
	fmt.Fprintln(w, "Use /set key=value to share facts such as your GPA or residency.")
	fmt.Fprintln(w, "Type 'quit' to end the session.")
}
