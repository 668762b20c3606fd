package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/PH-BookingBot/internal/domain"
	ownerRepo "github.com/m04kA/PH-BookingBot/internal/infra/storage/owner"
	"github.com/m04kA/PH-BookingBot/internal/session"
	"github.com/m04kA/PH-BookingBot/internal/usecase/create_booking"
)

const welcomeText = `Welcome to PetHotelBot!
Commands:
/register_pet - register your pet
/my_pets - list pets
/book - book a kennel for a pet
/admin <password> - admin login
/export_bookings - admin CSV export`

func (b *Bot) cmdStart(chatID int64) {
	b.send(chatID, welcomeText)
}

func (b *Bot) cmdCancelBooking(chatID, userID int64) {
	sess := b.sessions.Get(userID)
	if sess.Booking == nil {
		b.send(chatID, "No booking in progress.")
		return
	}

	sess.Booking = nil
	b.send(chatID, "Booking cancelled. Start again with /book.")
}

func (b *Bot) cmdBook(ctx context.Context, chatID, userID int64) {
	owner, err := b.ownerRepo.GetByTelegramID(ctx, userID)
	if errors.Is(err, ownerRepo.ErrOwnerNotFound) {
		b.send(chatID, "You need to register a pet first with /register_pet")
		return
	}
	if err != nil {
		b.logger.Error("bot: failed to load owner for user %d: %v", userID, err)
		b.send(chatID, "Sorry, something went wrong while starting booking. Please try again later.")
		return
	}

	pets, err := b.petRepo.ListByOwner(ctx, owner.ID)
	if err != nil {
		b.logger.Error("bot: failed to list pets for owner %d: %v", owner.ID, err)
		b.send(chatID, "Sorry, something went wrong while starting booking. Please try again later.")
		return
	}
	if len(pets) == 0 {
		b.send(chatID, "No pets found. Use /register_pet.")
		return
	}

	sess := b.sessions.Get(userID)
	sess.Booking = session.NewBookingDraft()

	b.sendWithMarkup(chatID, "Choose pet to book:", petsKeyboard(pets))
}

func (b *Bot) callbackSelectPet(ctx context.Context, chatID, userID int64, query *tgbotapi.CallbackQuery, arg string) {
	petID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}

	sess := b.sessions.Get(userID)
	if sess.Booking == nil || !sess.Booking.SetPet(petID) {
		return
	}

	kennels, err := b.catalogRepo.ListActiveKennels(ctx)
	if err != nil {
		b.logger.Error("bot: failed to list kennels: %v", err)
		b.editText(query, "Error selecting pet. Try again.")
		return
	}

	b.editWithMarkup(query, "Choose kennel (availability checked after you enter dates):", kennelsKeyboard(kennels))
}

func (b *Bot) callbackSelectKennel(ctx context.Context, chatID, userID int64, query *tgbotapi.CallbackQuery, arg string) {
	kennelID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}

	sess := b.sessions.Get(userID)
	if sess.Booking == nil || !sess.Booking.SetKennel(kennelID) {
		return
	}

	now := time.Now().UTC()
	b.editWithMarkup(query, "Select START date:", calendarKeyboard(now.Year(), now.Month(), "startcal"))
}

func (b *Bot) callbackCalendar(ctx context.Context, chatID, userID int64, query *tgbotapi.CallbackQuery, data string) {
	parts := strings.SplitN(data, ":", 3)
	if len(parts) != 3 {
		return
	}
	tag, action, value := parts[0], parts[1], parts[2]

	switch action {
	case "month":
		month, err := time.Parse("2006-01", value)
		if err != nil {
			return
		}
		b.editWithMarkup(query, "Pick a date:", calendarKeyboard(month.Year(), month.Month(), tag))

	case "day":
		date, err := domain.ParseDate(value)
		if err != nil {
			return
		}

		sess := b.sessions.Get(userID)
		if sess.Booking == nil {
			return
		}

		switch tag {
		case "startcal":
			if !sess.Booking.SetStartDate(date) {
				return
			}
			b.editWithMarkup(query,
				fmt.Sprintf("Start date set to %s. Now select END date:", value),
				calendarKeyboard(date.Year(), date.Month(), "endcal"))

		case "endcal":
			if sess.Booking.Stage != session.StageEndDate {
				return
			}
			if !sess.Booking.SetEndDate(date) {
				sess.Booking = nil
				b.editText(query, "End date must be after start date. Please start again with /book.")
				return
			}
			b.afterDatesSelected(ctx, userID, sess, query)
		}
	}
}

// afterDatesSelected делает предварительную проверку доступности и
// показывает выбор корма. Проверка только советующая: гонку двух
// пользователей разрешает транзакция оформления
func (b *Bot) afterDatesSelected(ctx context.Context, userID int64, sess *session.Session, query *tgbotapi.CallbackQuery) {
	draft := sess.Booking

	overlapping, err := b.bookingRepo.CountOverlapping(ctx, draft.KennelID, draft.StartDate, draft.EndDate)
	if err != nil {
		b.logger.Error("bot: availability pre-check failed for kennel %d: %v", draft.KennelID, err)
		sess.Booking = nil
		b.editText(query, "Sorry, something went wrong. Please try /book again later.")
		return
	}
	if overlapping > 0 {
		sess.Booking = nil
		b.editText(query, "Selected kennel is not available for these dates. Start /book again and choose other dates or kennel.")
		return
	}

	foods, err := b.catalogRepo.ListFoods(ctx)
	if err != nil {
		b.logger.Error("bot: failed to list foods: %v", err)
		sess.Booking = nil
		b.editText(query, "Sorry, something went wrong. Please try /book again later.")
		return
	}

	b.editWithMarkup(query, "Choose food option:", foodsKeyboard(foods))
}

func (b *Bot) callbackSelectFood(ctx context.Context, chatID, userID int64, query *tgbotapi.CallbackQuery, arg string) {
	sess := b.sessions.Get(userID)
	if sess.Booking == nil {
		return
	}

	if arg == "own" {
		if !sess.Booking.SetFood(nil) {
			return
		}
		b.editText(query, "Feeding frequency per day (e.g. 2):")
		return
	}

	foodID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	if !sess.Booking.SetFood(&foodID) {
		return
	}

	b.editText(query, "Enter food quantity (number of units for stay):")
}

func (b *Bot) bookingTextInput(ctx context.Context, chatID, userID int64, sess *session.Session, text string) {
	draft := sess.Booking

	switch draft.Stage {
	case session.StageFoodQuantity:
		q, err := strconv.Atoi(text)
		if err != nil || !draft.SetFoodQuantity(q) {
			b.send(chatID, "Please enter a valid integer for food quantity.")
			return
		}
		b.send(chatID, "Feeding frequency per day (e.g. 2):")

	case session.StageFeedingFrequency:
		f, err := strconv.Atoi(text)
		if err != nil || !draft.SetFeedingFrequency(f) {
			b.send(chatID, "Please enter a valid integer for feeding frequency.")
			return
		}
		b.send(chatID, "Additional services? (comma separated: grooming, walking) or type none:")

	case session.StageServices:
		if !draft.SetServices(text) {
			return
		}
		b.finalizeBooking(ctx, chatID, userID, sess)
	}
}

func (b *Bot) finalizeBooking(ctx context.Context, chatID, userID int64, sess *session.Session) {
	draft := sess.Booking
	sess.Booking = nil

	resp, err := b.bookingCreator.Execute(ctx, &create_booking.Request{
		PetID:         draft.PetID,
		KennelID:      draft.KennelID,
		FoodID:        draft.FoodID,
		StartDate:     draft.StartDate,
		EndDate:       draft.EndDate,
		FoodQuantity:  draft.FoodQuantity,
		FeedingPerDay: draft.FeedingPerDay,
		Services:      draft.Services,
	})
	if err != nil {
		if errors.Is(err, create_booking.ErrKennelConflict) {
			b.metrics.BookingConflicts.Inc()
			b.send(chatID, "Sorry, booking failed because the kennel was taken. Please try different dates or kennel.")
			return
		}
		b.metrics.BookingFailures.Inc()
		b.logger.Error("bot: booking failed for user %d: %v", userID, err)
		b.send(chatID, "Sorry, something went wrong while saving your booking. Please try again later.")
		return
	}

	b.metrics.BookingsCreated.Inc()

	if b.payments == nil {
		b.send(chatID, fmt.Sprintf("Booking confirmed! Estimated price: $%.2f. Payment not configured. Admin will contact you.", resp.EstimatedPrice))
		return
	}

	payURL, err := b.payments.CreateCheckoutSession(ctx, domain.MinorUnits(resp.EstimatedPrice), "Pet Hotel Booking")
	if err != nil {
		b.metrics.PaymentFailures.Inc()
		b.logger.Error("bot: payment link failed for booking %d: %v", resp.BookingID, err)
		b.send(chatID, fmt.Sprintf("Booking confirmed ($%.2f) but payment link could not be created. Admin will contact you.", resp.EstimatedPrice))
		return
	}

	b.metrics.PaymentLinks.Inc()
	b.send(chatID, fmt.Sprintf("Booking confirmed with estimated price $%.2f. Pay here: %s", resp.EstimatedPrice, payURL))
}
