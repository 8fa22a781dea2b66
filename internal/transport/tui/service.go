package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/groundchat/internal/config"
	"github.com/sandevgo/groundchat/internal/providers/docs"
	"github.com/sandevgo/groundchat/internal/service/chat"
	"github.com/sandevgo/groundchat/internal/service/ui"
	"github.com/sandevgo/groundchat/pkg/log"
)

// Service runs the Bubble Tea chat surface. When the user leaves the UI the
// stop function is called so the rest of the process shuts down with it.
type Service struct {
	appCfg   *config.AppConfig
	session  *chat.Session
	ingestor *docs.Ingestor
	relay    *ui.Relay
	stop     context.CancelFunc
	program  *tea.Program
}

func New(appCfg *config.AppConfig, session *chat.Session, ingestor *docs.Ingestor, relay *ui.Relay, stop context.CancelFunc) *Service {
	return &Service{
		appCfg:   appCfg,
		session:  session,
		ingestor: ingestor,
		relay:    relay,
		stop:     stop,
	}
}

func (s *Service) Start(ctx context.Context) error {
	defer s.stop()

	m := newModel(ctx, s.appCfg, s.session, s.ingestor)
	s.program = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	// Transient notices from the dispatcher land in the status line.
	s.relay.SetTarget(func(text string) {
		s.program.Send(noticeMsg{text: text})
	})

	log.FromCtx(ctx).Debug().Msg("tui transport started")

	_, err := s.program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func (s *Service) Shutdown(ctx context.Context) error {
	if s.program != nil {
		s.program.Quit()
	}
	return nil
}
