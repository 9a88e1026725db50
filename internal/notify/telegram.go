package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lastminute/internal/repository"
	"lastminute/internal/service"
)

// Telegram pushes daily planner digests to users who linked a chat id on
// their profile. It is a pure sender; linking happens through the profile
// endpoint, not through bot commands.
type Telegram struct {
	api         *tgbotapi.BotAPI
	userRepo    *repository.UserRepository
	reminderSvc *service.ReminderService
	logger      *slog.Logger
}

func NewTelegram(token string, userRepo *repository.UserRepository, reminderSvc *service.ReminderService, logger *slog.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("telegram digest bot authorized", slog.String("account", api.Self.UserName))
	return &Telegram{api: api, userRepo: userRepo, reminderSvc: reminderSvc, logger: logger}, nil
}

// SendDailyDigests builds and sends a digest to every linked user.
func (t *Telegram) SendDailyDigests(ctx context.Context) error {
	users, err := t.userRepo.ListWithTelegram(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, user := range users {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		text, err := t.reminderSvc.DailyDigest(ctx, user, now)
		if err != nil {
			t.logger.Error("build digest", slog.Uint64("user", uint64(user.ID)), slog.String("error", err.Error()))
			continue
		}
		if err := t.sendText(user.TelegramChatID, text); err != nil {
			t.logger.Error("send digest", slog.Int64("chat", user.TelegramChatID), slog.String("error", err.Error()))
		}
	}
	return nil
}

func (t *Telegram) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
