package reporter

import (
	"fmt"

	"github.com/Stv21/job-scrapping-repo/internal/enricher"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramReporter sends an end-of-run summary to a chat. It is optional:
// without a token New returns nil, and a nil reporter swallows every call.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func New(token string, chatID int64) (*TelegramReporter, error) {
	if token == "" || chatID == 0 {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) sendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendRunSummary reports how the run went: listings collected and stored,
// and how enrichment items ended up.
func (t *TelegramReporter) SendRunSummary(collected, inserted int, sum enricher.Summary) error {
	if t == nil {
		return nil
	}
	text := fmt.Sprintf(
		"🏁 <b>Job scrape finished</b>\n"+
			"📦 Collected: %d listings\n"+
			"💾 Newly stored: %d\n"+
			"📄 Descriptions added: %d\n"+
			"⏱ Timed out: %d\n"+
			"❌ Failed to load: %d",
		collected,
		inserted,
		sum.Extracted,
		sum.TimedOut,
		sum.LoadFailed,
	)
	return t.sendMessage(text)
}

// SendError pushes a fatal-error notice. Safe on a nil reporter.
func (t *TelegramReporter) SendError(errReq error) error {
	if t == nil {
		return nil
	}
	return t.sendMessage(fmt.Sprintf("⚠️ <b>Job scraper error</b>:\n%v", errReq))
}
