package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/tutor/internal/cli/formatter"
	"github.com/alexanderramin/tutor/internal/contract"
	"github.com/spf13/cobra"
)

const recentInputs = 10

// errSubjectRequired is returned when chat cannot ask for a subject.
var errSubjectRequired = errors.New("--subject is required when input is not a terminal")

func newChatCmd(app *App) *cobra.Command {
	var subject, user string
	var noRecord bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Ask questions interactively in one subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &chatSession{
				app:     app,
				out:     cmd.OutOrStdout(),
				user:    app.user(user),
				subject: app.canonicalSubject(subject),
				record:  !noRecord,
			}
			if s.subject == "" {
				if !app.interactive() {
					return errSubjectRequired
				}
				form, err := subjectSelectForm(app.Store.SubjectNames(), &s.subject)
				if err != nil {
					return err
				}
				if err := form.Run(); err != nil {
					return fmt.Errorf("choosing subject: %w", err)
				}
			}
			reader, err := app.chatReader(s.out)
			if err != nil {
				return err
			}
			defer reader.Close()
			return s.run(cmd.Context(), reader)
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject to chat in")
	cmd.Flags().StringVarP(&user, "user", "u", "", "User to record progress for")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not save history or progress")

	return cmd
}

type chatSession struct {
	app     *App
	out     io.Writer
	user    string
	subject string
	record  bool
}

// chatReader uses the line editor on a terminal and plain reads otherwise.
func (a *App) chatReader(out io.Writer) (lineReader, error) {
	if a.interactive() {
		return newTerminalReader(a.ChatHistoryPath)
	}
	return &promptReader{in: a.In, out: out, historyPath: a.ChatHistoryPath}, nil
}

func (s *chatSession) run(ctx context.Context, reader lineReader) error {
	fmt.Fprintln(s.out, formatter.Header("Chat: "+s.subject))
	fmt.Fprintln(s.out, formatter.Dim("Ask a question. /subject NAME switches subject, /progress shows mastery, /recent lists inputs, /quit exits."))
	fmt.Fprintln(s.out)

	for {
		if ctx.Err() != nil {
			return nil
		}
		line, err := reader.ReadLine(formatter.StyleHeader.Render(s.subject + " › "))
		if line = strings.TrimSpace(line); line != "" {
			if done := s.handle(ctx, line); done {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// handle processes one input line and reports whether the session ended.
func (s *chatSession) handle(ctx context.Context, line string) bool {
	if !strings.HasPrefix(line, "/") {
		switch strings.ToLower(line) {
		case "quit", "exit":
			fmt.Fprintln(s.out, "Goodbye!")
			return true
		}
		s.ask(ctx, line)
		return false
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(line, "/"), " ")
	switch strings.ToLower(name) {
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	case "subject":
		if arg = strings.TrimSpace(arg); arg == "" {
			fmt.Fprintln(s.out, formatter.Dim("Usage: /subject NAME"))
			return false
		}
		s.subject = s.app.canonicalSubject(arg)
		fmt.Fprintf(s.out, "Switched to %s.\n", formatter.Bold(s.subject))
	case "subjects":
		fmt.Fprint(s.out, formatter.FormatSubjects(s.app.Store))
	case "progress":
		records := s.app.Progress.GetProgress(ctx, s.user)
		fmt.Fprint(s.out, formatter.FormatProgress(s.user, records, s.app.now()))
	case "recent":
		lines := loadHistoryFromPath(s.app.ChatHistoryPath)
		if len(lines) > recentInputs {
			lines = lines[len(lines)-recentInputs:]
		}
		for _, l := range lines {
			fmt.Fprintf(s.out, "  %s\n", formatter.Dim(l))
		}
	default:
		fmt.Fprintf(s.out, "%s\n", formatter.Dim("Unknown command /"+name))
	}
	return false
}

func (s *chatSession) ask(ctx context.Context, question string) {
	req := contract.NewAskRequest(s.user, s.subject, question)
	req.Record = s.record
	resp := s.app.Ask.Ask(ctx, req)
	fmt.Fprint(s.out, formatter.FormatAnswer(resp, false))
	fmt.Fprintln(s.out)
}
