package homework_statuses

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/ilyadubrovsky/homework-bot/internal/service"
	"github.com/ilyadubrovsky/homework-bot/pkg/practicum"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
)

const crashMessagePrefix = "Сбой в работе программы: "

type svc struct {
	telegramSvc      service.Telegram
	practicumClient  practicum.Client
	lastMessageCache *ttlcache.Cache[int64, string]
	cfg              config.Practicum
	chatID           int64
	cursor           int64

	mu       sync.Mutex
	stopFunc func()
}

func NewService(
	telegramSvc service.Telegram,
	practicumClient practicum.Client,
	lastMessageCache *ttlcache.Cache[int64, string],
	cfg config.Practicum,
	chatID int64,
) *svc {
	cursor := cfg.FromDate
	if cursor == 0 {
		cursor = time.Now().Unix()
	}

	return &svc{
		telegramSvc:      telegramSvc,
		practicumClient:  practicumClient,
		lastMessageCache: lastMessageCache,
		cfg:              cfg,
		chatID:           chatID,
		cursor:           cursor,
	}
}

// NewLastMessageCache the expiry window counts from delivery, reading a
// suppressed duplicate does not extend it. ttl 0 keeps messages forever.
func NewLastMessageCache(ttl time.Duration) *ttlcache.Cache[int64, string] {
	return ttlcache.New[int64, string](
		ttlcache.WithTTL[int64, string](ttl),
		ttlcache.WithDisableTouchOnHit[int64, string](),
	)
}

func (s *svc) Cursor() int64 {
	return s.cursor
}

func (s *svc) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.stopFunc = cancel
	s.mu.Unlock()
	defer cancel()

	log.Info().
		Int64("cursor", s.cursor).
		Dur("retry_period", s.cfg.RetryPeriod).
		Msg("start homework statuses checker")
	for {
		s.Check(ctx)

		select {
		case <-time.After(s.cfg.RetryPeriod):
		case <-ctx.Done():
			log.Info().Msg("homework statuses checker stopped")
			return
		}
	}
}

func (s *svc) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopFunc == nil {
		return errors.New("service is not started")
	}

	s.stopFunc()
	return nil
}

// Check runs a single poll cycle. Unexpected failures are relayed to the
// chat as a crash notice, expected deviations are only logged.
func (s *svc) Check(ctx context.Context) error {
	err := s.checkHomeworkStatuses(ctx)
	if err == nil {
		return nil
	}

	// остановка процесса посреди запроса это не сбой
	if ctx.Err() != nil {
		log.Info().
			Int64("cursor", s.cursor).
			Msgf("checkHomeworkStatuses interrupted: %v", err.Error())
		return err
	}

	if ierrors.IsExpected(err) {
		log.Warn().
			Int64("cursor", s.cursor).
			Msgf("checkHomeworkStatuses: %v", err.Error())
		return err
	}

	log.Error().
		Int64("cursor", s.cursor).
		Str("stack", string(debug.Stack())).
		Msgf("checkHomeworkStatuses: %v", err.Error())

	if sendErr := s.notify(crashMessagePrefix + err.Error()); sendErr != nil {
		log.Error().Msgf("notify(crash): %v", sendErr.Error())
	}

	return err
}

func (s *svc) checkHomeworkStatuses(ctx context.Context) error {
	raw, err := s.practicumClient.HomeworkStatuses(ctx, s.cursor)
	if err != nil {
		return fmt.Errorf("practicumClient.HomeworkStatuses: %w", err)
	}

	response, err := CheckResponse(raw)
	if errors.Is(err, ierrors.ErrMissingOptionalKey) {
		log.Warn().
			Int64("cursor", s.cursor).
			Msgf("CheckResponse: %v", err.Error())
	} else if err != nil {
		return fmt.Errorf("CheckResponse: %w", err)
	}

	if response.CurrentDate != nil {
		s.advanceCursor(*response.CurrentDate)
	}

	if len(response.Homeworks) == 0 {
		log.Debug().Int64("cursor", s.cursor).Msg("no new statuses")
		return nil
	}

	// в ответе самая свежая работа идёт первой, уведомляем только о ней
	message, err := ParseStatus(response.Homeworks[0])
	if err != nil {
		return fmt.Errorf("ParseStatus: %w", err)
	}

	if err = s.notify(message); err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	return nil
}

func (s *svc) advanceCursor(currentDate int64) {
	if currentDate < s.cursor {
		log.Warn().
			Int64("cursor", s.cursor).
			Int64("current_date", currentDate).
			Msg("server cursor is behind, keeping the current one")
		return
	}

	s.cursor = currentDate
}

func (s *svc) notify(message string) error {
	lastMessage := s.lastMessageCache.Get(s.chatID)
	if lastMessage != nil && !lastMessage.IsExpired() && lastMessage.Value() == message {
		log.Debug().Msgf("message is already sent: %s", message)
		return nil
	}

	delivered, err := s.telegramSvc.SendMessage(message)
	if err != nil {
		return fmt.Errorf("telegramSvc.SendMessage: %w", err)
	}

	s.lastMessageCache.Set(s.chatID, delivered, ttlcache.DefaultTTL)
	return nil
}
