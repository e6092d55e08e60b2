package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/uniformhub/internal/domain/catalog"
	"github.com/Spok95/uniformhub/internal/domain/inventory"
)

// Sender is the subset of *tgbotapi.BotAPI the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier tells the admin chat which items are running out.
type Notifier struct {
	api       Sender
	log       *slog.Logger
	adminChat int64
	limit     int
}

func New(api Sender, log *slog.Logger, adminChatID int64) *Notifier {
	return &Notifier{api: api, log: log, adminChat: adminChatID, limit: inventory.AttentionLimit}
}

// NotifyLowStock sends one message covering the items that need attention.
// It returns the number of items listed; nothing is sent when that is zero.
func (n *Notifier) NotifyLowStock(ctx context.Context, items []catalog.Item) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if n.adminChat == 0 {
		return 0, nil
	}
	stats := inventory.CountStatuses(items)
	attention := inventory.NeedsAttention(items, n.limit)
	if len(attention) == 0 {
		return 0, nil
	}

	msg := tgbotapi.NewMessage(n.adminChat, Compose(attention, stats.NeedsAttention()))
	if _, err := n.api.Send(msg); err != nil {
		return 0, fmt.Errorf("send low stock alert: %w", err)
	}
	n.log.Info("low stock alert sent", "chat_id", n.adminChat, "items", len(attention), "total", stats.NeedsAttention())
	return len(attention), nil
}

// Compose renders the alert text. total may exceed len(items) when the list is capped.
func Compose(items []catalog.Item, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⚠️ Low stock: %d items need attention\n", total)
	for _, it := range items {
		if it.Status() == catalog.StatusOutOfStock {
			fmt.Fprintf(&b, "— %s (%s) at %s: out of stock\n", it.Name, it.SKU, it.Branch)
			continue
		}
		fmt.Fprintf(&b, "— %s (%s) at %s: %d left\n", it.Name, it.SKU, it.Branch, it.Stock)
	}
	if rest := total - len(items); rest > 0 {
		fmt.Fprintf(&b, "…and %d more", rest)
	}
	return strings.TrimRight(b.String(), "\n")
}
