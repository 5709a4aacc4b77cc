package handler

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"ResumeBot/document"
	"ResumeBot/repo"
	"ResumeBot/wizard"
)

// Messenger is the part of the Telegram client the handler talks to.
// *bot.Bot satisfies it.
type Messenger interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendDocument(ctx context.Context, params *bot.SendDocumentParams) (*models.Message, error)
}

var _ Messenger = (*bot.Bot)(nil)

const (
	cmdStart  = "/start"
	cmdCancel = "/cancel"
	cmdHelp   = "/help"
)

type ResumeBotHandler struct {
	engine   *wizard.Engine
	sessions *Sessions
	archive  repo.ResumeArchive
	logger   zerolog.Logger
	now      func() time.Time
}

type Option func(*ResumeBotHandler)

// WithArchive stores every delivered résumé in archive.
func WithArchive(archive repo.ResumeArchive) Option {
	return func(h *ResumeBotHandler) {
		h.archive = archive
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(h *ResumeBotHandler) {
		h.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(h *ResumeBotHandler) {
		h.now = now
	}
}

func NewResumeBotHandler(engine *wizard.Engine, opts ...Option) *ResumeBotHandler {
	h := &ResumeBotHandler{
		engine:   engine,
		sessions: NewSessions(),
		logger:   zerolog.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handler is registered as the bot's default handler.
func (h *ResumeBotHandler) Handler(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.Handle(ctx, b, update)
}

// Handle processes one update. Updates of the same user are handled one at a time.
func (h *ResumeBotHandler) Handle(ctx context.Context, m Messenger, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil {
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	text := update.Message.Text

	h.sessions.WithLock(userID, func() {
		h.handleText(ctx, m, chatID, userID, text)
	})
}

func (h *ResumeBotHandler) handleText(ctx context.Context, m Messenger, chatID, userID int64, text string) {
	log := h.logger.With().Int64("user_id", userID).Logger()

	switch command(text) {
	case cmdStart:
		st, rec, prompt := h.engine.Start()
		h.sessions.Put(userID, Session{State: st, Record: rec})
		log.Info().Msg("conversation started")
		h.send(ctx, m, chatID, prompt)
		return
	case cmdCancel:
		if h.sessions.Delete(userID) {
			log.Info().Msg("conversation cancelled")
		}
		h.send(ctx, m, chatID, wizard.CancelMessage)
		return
	case cmdHelp:
		h.send(ctx, m, chatID, wizard.HelpMessage)
		return
	case "":
	default:
		// Commands are never answers.
		h.send(ctx, m, chatID, wizard.UnknownCommandMessage)
		return
	}

	sess, ok := h.sessions.Get(userID)
	if !ok {
		h.send(ctx, m, chatID, wizard.IdleMessage)
		return
	}

	out, err := h.engine.Handle(sess.State, sess.Record, text)
	if err != nil {
		log.Error().Err(err).Stringer("step", sess.State.Step).Msg("conversation in illegal state, discarding")
		h.sessions.Delete(userID)
		h.send(ctx, m, chatID, wizard.FailureMessage)
		return
	}

	switch out.Status {
	case wizard.StatusRejected:
		log.Debug().Stringer("step", sess.State.Step).Msg("input rejected")
		h.send(ctx, m, chatID, out.Prompt)
	case wizard.StatusAdvanced:
		h.sessions.Put(userID, Session{State: out.State, Record: out.Record})
		h.send(ctx, m, chatID, out.Prompt)
	case wizard.StatusDeclined:
		h.sessions.Delete(userID)
		log.Info().Msg("conversation declined")
		h.send(ctx, m, chatID, out.Prompt)
	case wizard.StatusCompleted:
		h.sessions.Delete(userID)
		log.Info().Msg("conversation completed")
		h.send(ctx, m, chatID, out.Prompt)
		h.deliver(ctx, m, chatID, userID, out)
	}
}

func (h *ResumeBotHandler) deliver(ctx context.Context, m Messenger, chatID, userID int64, out wizard.Outcome) {
	log := h.logger.With().Int64("user_id", userID).Logger()

	data, err := document.Generate(out.Record)
	if err != nil {
		log.Error().Err(err).Msg("error generating resume")
		h.send(ctx, m, chatID, wizard.FailureMessage)
		return
	}
	if dropped := document.UnsupportedText(out.Record); len(dropped) > 0 {
		log.Warn().Str("characters", string(dropped)).Msg("characters outside the pdf font were replaced")
	}

	msg, err := m.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID:   chatID,
		Document: &models.InputFileUpload{Filename: document.FileName, Data: bytes.NewReader(data)},
	})
	if err != nil {
		log.Error().Err(err).Msg("error sending document")
		h.send(ctx, m, chatID, wizard.FailureMessage)
		return
	}
	h.send(ctx, m, chatID, wizard.ClosingMessage)

	if h.archive == nil {
		return
	}
	entry := repo.ArchivedResume{
		Record:    out.Record,
		FileName:  document.FileName,
		CreatedAt: h.now().UTC(),
	}
	if msg != nil && msg.Document != nil {
		entry.DocumentFileID = msg.Document.FileID
	}
	key, err := h.archive.SaveResume(ctx, userID, entry)
	if err != nil {
		log.Error().Err(err).Msg("error archiving resume")
		return
	}
	log.Debug().Str("key", key).Msg("resume archived")
}

func (h *ResumeBotHandler) send(ctx context.Context, m Messenger, chatID int64, text string) {
	_, err := m.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdownV1,
	})
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", chatID).Msg("error sending message")
	}
}

// command extracts a bot command, dropping any @botname suffix.
// It returns "" for plain text.
func command(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(strings.Fields(text)[0], "@")
	return strings.ToLower(cmd)
}
