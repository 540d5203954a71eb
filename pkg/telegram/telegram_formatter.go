package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-stock-screener/internal/entity"
)

const maxMessageLen = 4090

// FormatScanSummaryForTelegram formats the top ranked stocks of a scan into one or
// more Markdown messages, each within Telegram's length limit.
func FormatScanSummaryForTelegram(result *entity.ScanResult, topN int, at time.Time) []string {
	if result == nil || len(result.Stocks) == 0 {
		return []string{"No stocks were ranked in the latest scan."}
	}
	if topN <= 0 || topN > len(result.Stocks) {
		topN = len(result.Stocks)
	}

	var messages []string
	var current strings.Builder
	part := 1

	startNewPart := func() {
		current.Reset()
		if part == 1 {
			stats := result.ScanStats
			current.WriteString("📊 *Small-Cap Scan Results* 📊\n")
			current.WriteString(fmt.Sprintf("🕒 %s\n", at.UTC().Format("02 Jan 2006 15:04 MST")))
			current.WriteString(fmt.Sprintf("🔎 Scanned: %d | ✅ %d | ❌ %d\n", stats.TotalScanned, stats.Succeeded, stats.Failed))
			current.WriteString(fmt.Sprintf("📈 Average score: %.1f\n\n", stats.AverageScore))
		} else {
			current.WriteString(fmt.Sprintf("---*Scan Results Part %d*---\n\n", part))
		}
	}

	startNewPart()

	for i, s := range result.Stocks[:topN] {
		entry := formatStockEntry(i+1, s)
		if current.Len()+len(entry) > maxMessageLen {
			messages = append(messages, current.String())
			part++
			startNewPart()
		}
		current.WriteString(entry)
	}

	messages = append(messages, current.String())
	return messages
}

func formatStockEntry(rank int, s entity.StockRecord) string {
	var b strings.Builder

	icon := "🟡"
	switch {
	case s.CompositeScore >= 70:
		icon = "🟢"
	case s.CompositeScore < 50:
		icon = "🔴"
	}

	b.WriteString(fmt.Sprintf("%s *%d. %s*", icon, rank, s.Ticker))
	if s.Name != "" {
		b.WriteString(fmt.Sprintf(" - %s", s.Name))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("🎯 *Score:* %.1f\n", s.CompositeScore))
	b.WriteString(fmt.Sprintf("💰 *Price:* $%.2f (%+.2f%%)\n", s.Price, s.ChangePercent))
	if s.Sector != "" {
		b.WriteString(fmt.Sprintf("🏷 *Sector:* %s\n", s.Sector))
	}
	b.WriteString("\n")
	return b.String()
}
