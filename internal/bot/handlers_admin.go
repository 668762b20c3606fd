package bot

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const notAuthenticatedText = "Not authenticated. Use /admin <password>."

func (b *Bot) cmdAdmin(chatID, userID int64, args string) {
	password := strings.TrimSpace(args)
	if password == "" {
		b.send(chatID, "Send /admin <password> to authenticate.")
		return
	}

	if password != b.adminPassword {
		b.logger.Warn("bot: failed admin login attempt from user %d", userID)
		b.send(chatID, "Wrong password.")
		return
	}

	sess := b.sessions.Get(userID)
	sess.AdminAuthed = true

	b.logger.Info("bot: user %d authenticated as admin", userID)
	b.send(chatID, "Admin authenticated. Use /admin_stats, /list_clients, /export_bookings")
}

func (b *Bot) isAdmin(userID int64) bool {
	return b.sessions.Get(userID).AdminAuthed
}

func (b *Bot) cmdAdminStats(ctx context.Context, chatID, userID int64) {
	if !b.isAdmin(userID) {
		b.send(chatID, notAuthenticatedText)
		return
	}

	stats, err := b.reports.Stats(ctx)
	if err != nil {
		b.logger.Error("bot: failed to build stats: %v", err)
		b.send(chatID, "Sorry, failed to load stats. Please try again later.")
		return
	}

	b.send(chatID, fmt.Sprintf(
		"Stats:\nPets: %d\nBookings: %d\nEstimated revenue: $%.2f",
		stats.TotalPets, stats.TotalBookings, stats.Revenue,
	))
}

func (b *Bot) cmdListClients(ctx context.Context, chatID, userID int64) {
	if !b.isAdmin(userID) {
		b.send(chatID, notAuthenticatedText)
		return
	}

	rows, err := b.reports.Clients(ctx)
	if err != nil {
		b.logger.Error("bot: failed to list clients: %v", err)
		b.send(chatID, "Sorry, failed to load clients. Please try again later.")
		return
	}

	var sb strings.Builder
	sb.WriteString("Clients and pets:\n")
	for _, r := range rows {
		phone := "-"
		if r.Phone != nil {
			phone = *r.Phone
		}
		if r.PetID != nil {
			sb.WriteString(fmt.Sprintf("Owner #%d: %s (%s), Pet #%d: %s\n",
				r.OwnerID, r.Name, phone, *r.PetID, *r.PetName))
		} else {
			sb.WriteString(fmt.Sprintf("Owner #%d: %s (%s), no pets\n", r.OwnerID, r.Name, phone))
		}
	}
	b.send(chatID, sb.String())
}

func (b *Bot) cmdExportBookings(ctx context.Context, chatID, userID int64) {
	if !b.isAdmin(userID) {
		b.send(chatID, notAuthenticatedText)
		return
	}

	var buf bytes.Buffer
	if err := b.reports.WriteBookingsCSV(ctx, &buf); err != nil {
		b.logger.Error("bot: bookings export failed: %v", err)
		b.send(chatID, "Sorry, export failed. Please try again later.")
		return
	}

	file := tgbotapi.FileBytes{
		Name:  fmt.Sprintf("bookings_%s.csv", time.Now().UTC().Format("20060102_150405")),
		Bytes: buf.Bytes(),
	}
	doc := tgbotapi.NewDocument(chatID, file)
	if _, err := b.tg.Send(doc); err != nil {
		b.logger.Error("bot: failed to send export document: %v", err)
	}
}
