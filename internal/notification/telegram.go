package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/StudySpaceOptimizer/backend/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts booking activity to the operations chat. Users
// are not addressed directly: identity lives outside this service.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
	loc    *time.Location
}

func NewTelegramNotifier(token string, chatID int64, loc *time.Location, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger, loc: loc}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger, loc: loc}, nil
}

func (n *TelegramNotifier) NotifyReservationCreated(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Seat %d reserved*\n%s",
		r.SeatID, n.formatSlot(r.TimeSlot),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Reservation for seat %d cancelled*\n%s",
		r.SeatID, n.formatSlot(r.TimeSlot),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) formatSlot(slot domain.TimeSlot) string {
	start := time.Unix(slot.StartTime, 0).In(n.loc)
	end := time.Unix(slot.EndTime, 0).In(n.loc)
	return fmt.Sprintf("%s - %s", start.Format("02.01.2006 15:04"), end.Format("15:04"))
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
