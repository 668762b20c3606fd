package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PH-BookingBot/internal/domain"
	ownerRepo "github.com/m04kA/PH-BookingBot/internal/infra/storage/owner"
	"github.com/m04kA/PH-BookingBot/internal/session"
	"github.com/m04kA/PH-BookingBot/internal/usecase/create_booking"
	"github.com/m04kA/PH-BookingBot/pkg/metrics"
)

// promauto регистрирует метрики в глобальном реестре, поэтому на весь
// тестовый пакет создаем один экземпляр
var testMetrics = metrics.New("bot-test")

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeTelegram записывает исходящие сообщения вместо обращения к Telegram API
type fakeTelegram struct {
	sent []tgbotapi.Chattable
}

func (f *fakeTelegram) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeTelegram) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeTelegram) texts() []string {
	out := make([]string, 0, len(f.sent))
	for _, c := range f.sent {
		switch m := c.(type) {
		case tgbotapi.MessageConfig:
			out = append(out, m.Text)
		case tgbotapi.EditMessageTextConfig:
			out = append(out, m.Text)
		}
	}
	return out
}

func (f *fakeTelegram) lastText(t *testing.T) string {
	t.Helper()
	texts := f.texts()
	require.NotEmpty(t, texts)
	return texts[len(texts)-1]
}

type fakeBookingCreator struct {
	resp *create_booking.Response
	err  error
	got  *create_booking.Request
}

func (f *fakeBookingCreator) Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakePayments struct {
	url       string
	err       error
	calls     int
	gotAmount int64
}

func (f *fakePayments) CreateCheckoutSession(ctx context.Context, amountMinorUnits int64, description string) (string, error) {
	f.calls++
	f.gotAmount = amountMinorUnits
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeOwnerRepo struct {
	owner *domain.Owner
	err   error
}

func (f *fakeOwnerRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Owner, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.owner, nil
}

type fakePetRepo struct {
	pets []*domain.Pet
	err  error
}

func (f *fakePetRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pets, nil
}

func newTestBot(tg *fakeTelegram) *Bot {
	return &Bot{
		tg:       tg,
		sessions: session.NewStore(30*time.Minute, nopLogger{}),
		metrics:  testMetrics,
		logger:   nopLogger{},
	}
}

// readyBookingSession доводит черновик до этапа оформления
func readyBookingSession(t *testing.T, b *Bot, userID int64) *session.Session {
	t.Helper()

	sess := b.sessions.Get(userID)
	sess.Booking = session.NewBookingDraft()
	d := sess.Booking

	foodID := int64(3)
	require.True(t, d.SetPet(1))
	require.True(t, d.SetKennel(7))
	require.True(t, d.SetStartDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, d.SetEndDate(time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)))
	require.True(t, d.SetFood(&foodID))
	require.True(t, d.SetFoodQuantity(2))
	require.True(t, d.SetFeedingFrequency(2))
	require.True(t, d.SetServices("walking"))
	require.True(t, d.Ready())

	return sess
}

func TestFinalizeBooking_PaymentsNotConfigured(t *testing.T) {
	tg := &fakeTelegram{}
	b := newTestBot(tg)
	b.bookingCreator = &fakeBookingCreator{
		resp: &create_booking.Response{BookingID: 11, EstimatedPrice: 77.0},
	}

	sess := readyBookingSession(t, b, 100)
	b.finalizeBooking(context.Background(), 100, 100, sess)

	assert.Equal(t,
		"Booking confirmed! Estimated price: $77.00. Payment not configured. Admin will contact you.",
		tg.lastText(t))
	assert.Nil(t, sess.Booking)
}

func TestFinalizeBooking_PaymentLink(t *testing.T) {
	tg := &fakeTelegram{}
	b := newTestBot(tg)
	b.bookingCreator = &fakeBookingCreator{
		resp: &create_booking.Response{BookingID: 12, EstimatedPrice: 77.0},
	}
	payments := &fakePayments{url: "https://pay.example/cs_123"}
	b.payments = payments

	sess := readyBookingSession(t, b, 101)
	b.finalizeBooking(context.Background(), 101, 101, sess)

	assert.Equal(t,
		"Booking confirmed with estimated price $77.00. Pay here: https://pay.example/cs_123",
		tg.lastText(t))
	assert.Equal(t, int64(7700), payments.gotAmount)
}

func TestFinalizeBooking_PaymentLinkFailureKeepsBooking(t *testing.T) {
	tg := &fakeTelegram{}
	b := newTestBot(tg)
	b.bookingCreator = &fakeBookingCreator{
		resp: &create_booking.Response{BookingID: 13, EstimatedPrice: 77.0},
	}
	b.payments = &fakePayments{err: errors.New("stripe: api unavailable")}

	sess := readyBookingSession(t, b, 102)
	b.finalizeBooking(context.Background(), 102, 102, sess)

	assert.Equal(t,
		"Booking confirmed ($77.00) but payment link could not be created. Admin will contact you.",
		tg.lastText(t))
	assert.Nil(t, sess.Booking)
}

func TestFinalizeBooking_KennelConflict(t *testing.T) {
	tg := &fakeTelegram{}
	b := newTestBot(tg)
	b.bookingCreator = &fakeBookingCreator{err: create_booking.ErrKennelConflict}
	payments := &fakePayments{url: "https://pay.example/cs_999"}
	b.payments = payments

	sess := readyBookingSession(t, b, 103)
	b.finalizeBooking(context.Background(), 103, 103, sess)

	assert.Equal(t,
		"Sorry, booking failed because the kennel was taken. Please try different dates or kennel.",
		tg.lastText(t))
	assert.Zero(t, payments.calls)
	assert.Nil(t, sess.Booking)
}

func TestFinalizeBooking_PersistenceFailure(t *testing.T) {
	tg := &fakeTelegram{}
	b := newTestBot(tg)
	b.bookingCreator = &fakeBookingCreator{err: errors.New("create_booking: internal error")}

	sess := readyBookingSession(t, b, 104)
	b.finalizeBooking(context.Background(), 104, 104, sess)

	assert.Equal(t,
		"Sorry, something went wrong while saving your booking. Please try again later.",
		tg.lastText(t))
}

func TestCmdBook_OwnerNotRegistered(t *testing.T) {
	tg := &fakeTelegram{}
	b := newTestBot(tg)
	b.ownerRepo = &fakeOwnerRepo{err: ownerRepo.ErrOwnerNotFound}

	b.cmdBook(context.Background(), 200, 200)

	assert.Equal(t, "You need to register a pet first with /register_pet", tg.lastText(t))
	assert.Nil(t, b.sessions.Get(200).Booking)
}

func TestCmdBook_OwnerLookupFailure(t *testing.T) {
	tg := &fakeTelegram{}
	b := newTestBot(tg)
	b.ownerRepo = &fakeOwnerRepo{err: errors.New("owner: failed to execute query")}

	b.cmdBook(context.Background(), 201, 201)

	assert.Equal(t,
		"Sorry, something went wrong while starting booking. Please try again later.",
		tg.lastText(t))
	assert.Nil(t, b.sessions.Get(201).Booking)
}

func TestCmdBook_StartsDraft(t *testing.T) {
	tg := &fakeTelegram{}
	b := newTestBot(tg)
	b.ownerRepo = &fakeOwnerRepo{owner: &domain.Owner{ID: 5, TelegramID: 202}}
	b.petRepo = &fakePetRepo{pets: []*domain.Pet{{ID: 1, Name: "Rex", Species: "dog"}}}

	b.cmdBook(context.Background(), 202, 202)

	assert.Equal(t, "Choose pet to book:", tg.lastText(t))
	require.NotNil(t, b.sessions.Get(202).Booking)
	assert.Equal(t, session.StagePet, b.sessions.Get(202).Booking.Stage)
}
