package telegram

import (
	"fmt"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"
)

// Sender часть *tele.Bot, которой хватает для отправки сообщений
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type svc struct {
	sender Sender
	chat   tele.ChatID
}

func NewService(cfg config.Telegram) (*svc, error) {
	bot, err := createBot(cfg)
	if err != nil {
		return nil, fmt.Errorf("createBot: %w", err)
	}

	return NewServiceWithSender(bot, cfg.ChatID), nil
}

func NewServiceWithSender(sender Sender, chatID int64) *svc {
	return &svc{
		sender: sender,
		chat:   tele.ChatID(chatID),
	}
}

func createBot(cfg config.Telegram) (*tele.Bot, error) {
	pref := tele.Settings{
		Token: cfg.BotToken,
		OnError: func(err error, c tele.Context) {
			log.Error().Msgf("bot.OnError: %v", err.Error())
		},
	}

	abot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("tele.NewBot: %w", err)
	}

	return abot, nil
}

func (s *svc) SendMessage(message string) (string, error) {
	_, err := s.sender.Send(s.chat, message)
	if err != nil {
		log.Error().
			Int64("chat", int64(s.chat)).
			Msgf("message %q is not sent: %v", message, err.Error())
		return "", ierrors.Delivery(message, fmt.Errorf("bot.Send: %w", err))
	}

	log.Debug().
		Int64("chat", int64(s.chat)).
		Msgf("bot sent message: %s", message)

	return message, nil
}
