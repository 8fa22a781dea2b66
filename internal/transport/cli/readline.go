package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/groundchat/internal/config"
	"github.com/sandevgo/groundchat/internal/core"
	"github.com/sandevgo/groundchat/internal/providers/docs"
	"github.com/sandevgo/groundchat/internal/service/chat"
	"github.com/sandevgo/groundchat/internal/service/dispatch"
	"github.com/sandevgo/groundchat/internal/service/ui"
	"github.com/sandevgo/groundchat/pkg/log"
)

// ReadLine is the plain chat transport for terminals where the TUI is
// unwanted. Same session, same commands, line-oriented output.
type ReadLine struct {
	appCfg   *config.AppConfig
	session  *chat.Session
	ingestor *docs.Ingestor
	relay    *ui.Relay
	stop     context.CancelFunc
	rl       *readline.Instance
}

func NewReadLine(appCfg *config.AppConfig, session *chat.Session, ingestor *docs.Ingestor, relay *ui.Relay, stop context.CancelFunc) (*ReadLine, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		appCfg:   appCfg,
		session:  session,
		ingestor: ingestor,
		relay:    relay,
		stop:     stop,
		rl:       rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	defer r.stop()

	logger := log.FromCtx(ctx)
	logger.Info().Msg("chat started, type 'exit' to quit")

	r.relay.SetTarget(func(text string) {
		fmt.Fprintln(r.rl.Stdout(), ui.NoticeStyle.Render(text))
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "exit" || line == "quit" || line == "/quit":
			return nil
		case strings.HasPrefix(line, "/"):
			r.handleCommand(ctx, line)
			continue
		}

		reply, err := r.session.Send(ctx, line)
		if err != nil {
			logger.Error().Err(err).Msg("send failed")
			fmt.Fprintln(r.rl.Stdout(), ui.ErrorStyle.Render(dispatch.Describe(err)))
			continue
		}
		fmt.Fprintln(r.rl.Stdout(), reply.Content)
	}
}

func (r *ReadLine) handleCommand(ctx context.Context, line string) {
	out := r.rl.Stdout()
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/help":
		fmt.Fprintln(out, "/attach <path>  add a document")
		fmt.Fprintln(out, "/contexts       list attached documents")
		fmt.Fprintln(out, "/use <n>        ground replies on document n")
		fmt.Fprintln(out, "/use none       answer without grounding")
		fmt.Fprintln(out, "exit            leave")

	case "/attach":
		if len(args) != 1 {
			fmt.Fprintln(out, ui.ErrorStyle.Render("Usage: /attach <path>"))
			return
		}
		doc, err := r.ingestor.FromFile(ctx, args[0])
		if err != nil {
			fmt.Fprintln(out, ui.ErrorStyle.Render(fmt.Sprintf("Attach failed: %v", err)))
			return
		}
		cx := r.session.Contexts().Add(doc.Name, doc.Text, doc.Tokens)
		fmt.Fprintf(out, "Attached %q (%d tokens). /use %d to ground replies.\n",
			cx.Name, cx.Tokens, len(r.session.Contexts().All()))
		if cx.Tokens > r.appCfg.ContextTokenAlert {
			fmt.Fprintln(out, ui.NoticeStyle.Render("Warning: this context is large and may be truncated by the model."))
		}

	case "/contexts":
		all := r.session.Contexts().All()
		if len(all) == 0 {
			fmt.Fprintln(out, "No documents attached yet.")
			return
		}
		selected, hasSelection := r.session.Contexts().Selected()
		for i, cx := range all {
			marker := "  "
			if hasSelection && cx.ID == selected.ID {
				marker = "* "
			}
			fmt.Fprintf(out, "%s%d. %s (%d tokens)\n", marker, i+1, cx.Name, cx.Tokens)
		}

	case "/use":
		if len(args) != 1 {
			fmt.Fprintln(out, ui.ErrorStyle.Render("Usage: /use <n> or /use none"))
			return
		}
		if args[0] == "none" {
			r.session.Contexts().Select(core.NoContextID)
			fmt.Fprintln(out, "Grounding disabled.")
			return
		}
		n, err := strconv.Atoi(args[0])
		all := r.session.Contexts().All()
		if err != nil || n < 1 || n > len(all) {
			fmt.Fprintln(out, ui.ErrorStyle.Render(fmt.Sprintf("No document %q. /contexts lists what is attached.", args[0])))
			return
		}
		r.session.Contexts().Select(all[n-1].ID)
		fmt.Fprintf(out, "Replies are now grounded on %s.\n", all[n-1].Name)

	default:
		fmt.Fprintln(out, ui.ErrorStyle.Render("Unknown command "+cmd+". Try /help."))
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
