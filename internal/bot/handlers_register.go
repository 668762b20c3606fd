package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	ownerRepo "github.com/m04kA/PH-BookingBot/internal/infra/storage/owner"
	"github.com/m04kA/PH-BookingBot/internal/session"
	"github.com/m04kA/PH-BookingBot/internal/usecase/register_pet"
)

func (b *Bot) cmdRegisterPet(ctx context.Context, chatID, userID int64) {
	sess := b.sessions.Get(userID)
	sess.Registration = session.NewRegistrationDraft()
	b.send(chatID, "Let's register a pet. What is the pet's name?")
}

func (b *Bot) regTextInput(ctx context.Context, chatID int64, sess *session.Session, text string) {
	draft := sess.Registration

	switch draft.Step {
	case session.RegPetName:
		draft.PetName = text
		draft.Advance()
		b.send(chatID, "Species (e.g. dog, cat):")

	case session.RegSpecies:
		draft.Species = text
		draft.Advance()
		b.send(chatID, `Breed (or "unknown"):`)

	case session.RegBreed:
		draft.Breed = text
		draft.Advance()
		b.send(chatID, "Color:")

	case session.RegColor:
		draft.Color = text
		draft.Advance()
		b.send(chatID, "Age (years):")

	case session.RegAge:
		// нечисловой ввод сохраняется как NULL, анкета не прерывается
		if age, err := strconv.Atoi(text); err == nil {
			draft.Age = &age
		}
		draft.Advance()
		b.send(chatID, "Weight (kg):")

	case session.RegWeight:
		if w, err := strconv.ParseFloat(text, 64); err == nil {
			draft.WeightKg = &w
		}
		draft.Advance()
		b.send(chatID, "Length (cm):")

	case session.RegLength:
		if l, err := strconv.ParseFloat(text, 64); err == nil {
			draft.LengthCm = &l
		}
		draft.Advance()
		b.send(chatID, `Microchip ID (or "none"):`)

	case session.RegMicrochip:
		draft.MicrochipID = text
		draft.Advance()
		b.send(chatID, "Vaccination notes (short):")

	case session.RegVaccination:
		draft.VaccinationNotes = text
		draft.Advance()
		b.send(chatID, "Special needs (if any):")

	case session.RegSpecialNeeds:
		draft.SpecialNeeds = text
		draft.Advance()
		b.send(chatID, "Please send a photo of the pet (or type /skip):")

	case session.RegPhoto:
		b.send(chatID, "Please send a photo of the pet (or type /skip):")

	case session.RegOwnerName:
		draft.OwnerName = text
		draft.Advance()
		b.send(chatID, "Phone number:")

	case session.RegOwnerPhone:
		draft.OwnerPhone = text
		draft.Advance()
		b.sendConfirmSummary(chatID, draft)
	}
}

func (b *Bot) regPhoto(ctx context.Context, chatID int64, sess *session.Session, msg *tgbotapi.Message) {
	draft := sess.Registration

	// последний элемент среза содержит фото наибольшего разрешения
	fileID := msg.Photo[len(msg.Photo)-1].FileID
	draft.PhotoFileID = &fileID
	draft.Advance()

	b.send(chatID, "Now enter your full name (owner):")
}

func (b *Bot) cmdSkip(ctx context.Context, chatID, userID int64) {
	sess := b.sessions.Get(userID)
	if sess.Registration == nil || sess.Registration.Step != session.RegPhoto {
		return
	}

	sess.Registration.PhotoFileID = nil
	sess.Registration.Advance()
	b.send(chatID, "Now enter your full name (owner):")
}

func (b *Bot) sendConfirmSummary(chatID int64, draft *session.RegistrationDraft) {
	age := "unknown"
	if draft.Age != nil {
		age = strconv.Itoa(*draft.Age)
	}
	weight := "unknown"
	if draft.WeightKg != nil {
		weight = fmt.Sprintf("%g", *draft.WeightKg)
	}

	summary := fmt.Sprintf(
		"Please confirm:\nPet: %s (%s)\nBreed: %s\nAge: %s\nWeight: %s kg\nOwner: %s - %s",
		draft.PetName, draft.Species, draft.Breed, age, weight, draft.OwnerName, draft.OwnerPhone,
	)
	b.send(chatID, summary+"\n\nType /confirm to save or /cancel to abort.")
}

func (b *Bot) cmdConfirm(ctx context.Context, chatID, userID int64) {
	sess := b.sessions.Get(userID)
	if sess.Registration == nil || !sess.Registration.Done() {
		b.send(chatID, "Nothing to confirm.")
		return
	}
	draft := sess.Registration

	_, err := b.petRegistrar.Execute(ctx, &register_pet.Request{
		TelegramID:       userID,
		OwnerName:        draft.OwnerName,
		OwnerPhone:       draft.OwnerPhone,
		PetName:          draft.PetName,
		Species:          draft.Species,
		Breed:            draft.Breed,
		Color:            draft.Color,
		Age:              draft.Age,
		WeightKg:         draft.WeightKg,
		LengthCm:         draft.LengthCm,
		MicrochipID:      draft.MicrochipID,
		VaccinationNotes: draft.VaccinationNotes,
		SpecialNeeds:     draft.SpecialNeeds,
		PhotoFileID:      draft.PhotoFileID,
	})
	if err != nil {
		b.logger.Error("bot: pet registration failed for user %d: %v", userID, err)
		b.send(chatID, "Sorry, something went wrong while saving. Please try again later.")
		return
	}

	sess.Registration = nil
	b.send(chatID, "Pet registered! Use /my_pets to see your pets or /book to make a booking.")
}

func (b *Bot) cmdCancel(chatID, userID int64) {
	sess := b.sessions.Get(userID)
	hadRegistration := sess.Registration != nil
	hadBooking := sess.Booking != nil
	if !hadRegistration && !hadBooking {
		b.send(chatID, "Nothing to cancel.")
		return
	}

	b.sessions.Reset(userID)

	switch {
	case hadRegistration && hadBooking:
		b.send(chatID, "Registration and booking cancelled.")
	case hadRegistration:
		b.send(chatID, "Registration cancelled.")
	default:
		b.send(chatID, "Booking cancelled. Start again with /book.")
	}
}

func (b *Bot) cmdMyPets(ctx context.Context, chatID, userID int64) {
	owner, err := b.ownerRepo.GetByTelegramID(ctx, userID)
	if errors.Is(err, ownerRepo.ErrOwnerNotFound) {
		b.send(chatID, "No pets found. Use /register_pet.")
		return
	}
	if err != nil {
		b.logger.Error("bot: failed to load owner for user %d: %v", userID, err)
		b.send(chatID, "Sorry, something went wrong. Please try again later.")
		return
	}

	pets, err := b.petRepo.ListByOwner(ctx, owner.ID)
	if err != nil {
		b.logger.Error("bot: failed to list pets for owner %d: %v", owner.ID, err)
		b.send(chatID, "Sorry, something went wrong. Please try again later.")
		return
	}
	if len(pets) == 0 {
		b.send(chatID, "No pets found. Use /register_pet.")
		return
	}

	var sb strings.Builder
	sb.WriteString("Your pets:\n")
	for _, p := range pets {
		sb.WriteString(fmt.Sprintf("#%d %s (%s", p.ID, p.Name, p.Species))
		if p.Breed != "" {
			sb.WriteString(", " + p.Breed)
		}
		sb.WriteString(")\n")
	}
	b.send(chatID, sb.String())
}
