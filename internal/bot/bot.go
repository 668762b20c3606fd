package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/m04kA/PH-BookingBot/internal/session"
	"github.com/m04kA/PH-BookingBot/pkg/metrics"
)

const defaultPollTimeout = 60

// telegramClient часть Telegram API, через которую обработчики отправляют
// и редактируют сообщения. *tgbotapi.BotAPI реализует его напрямую
type telegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot Telegram-бот пансиона для животных
type Bot struct {
	api         *tgbotapi.BotAPI
	tg          telegramClient
	sessions    *session.Store
	pollTimeout int

	bookingCreator BookingCreator
	petRegistrar   PetRegistrar
	bookingRepo    BookingRepository
	ownerRepo      OwnerRepository
	petRepo        PetRepository
	catalogRepo    CatalogRepository
	payments       PaymentClient
	reports        ReportService

	adminPassword string
	metrics       *metrics.Metrics
	logger        Logger
}

// Deps зависимости бота
type Deps struct {
	Sessions *session.Store

	BookingCreator BookingCreator
	PetRegistrar   PetRegistrar
	BookingRepo    BookingRepository
	OwnerRepo      OwnerRepository
	PetRepo        PetRepository
	CatalogRepo    CatalogRepository
	Payments       PaymentClient
	Reports        ReportService

	AdminPassword string
	PollTimeout   int
	Metrics       *metrics.Metrics
	Logger        Logger
}

// New создает бота и проверяет токен обращением к Telegram API
func New(token string, deps Deps) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	pollTimeout := deps.PollTimeout
	if pollTimeout <= 0 {
		pollTimeout = defaultPollTimeout
	}

	return &Bot{
		api:            api,
		tg:             api,
		sessions:       deps.Sessions,
		pollTimeout:    pollTimeout,
		bookingCreator: deps.BookingCreator,
		petRegistrar:   deps.PetRegistrar,
		bookingRepo:    deps.BookingRepo,
		ownerRepo:      deps.OwnerRepo,
		petRepo:        deps.PetRepo,
		catalogRepo:    deps.CatalogRepo,
		payments:       deps.Payments,
		reports:        deps.Reports,
		adminPassword:  deps.AdminPassword,
		metrics:        deps.Metrics,
		logger:         deps.Logger,
	}, nil
}

// Run запускает long-poll цикл обработки обновлений до отмены контекста
func (b *Bot) Run(ctx context.Context) {
	b.logger.Info("bot: authorized as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info("bot: update loop stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.metrics.UpdatesTotal.WithLabelValues("message").Inc()
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.metrics.UpdatesTotal.WithLabelValues("callback").Inc()
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	sess := b.sessions.Get(userID)

	// фото вне анкеты регистрации игнорируем
	if len(msg.Photo) > 0 {
		if sess.Registration != nil && sess.Registration.Step == session.RegPhoto {
			b.regPhoto(ctx, chatID, sess, msg)
		}
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	if sess.Registration != nil && !sess.Registration.Done() {
		b.regTextInput(ctx, chatID, sess, text)
		return
	}

	if sess.Booking != nil {
		b.bookingTextInput(ctx, chatID, userID, sess, text)
		return
	}

	b.send(chatID, "I did not understand that. Send /start for the list of commands.")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.cmdStart(chatID)
	case "register_pet":
		b.cmdRegisterPet(ctx, chatID, userID)
	case "my_pets":
		b.cmdMyPets(ctx, chatID, userID)
	case "book":
		b.cmdBook(ctx, chatID, userID)
	case "skip":
		b.cmdSkip(ctx, chatID, userID)
	case "confirm":
		b.cmdConfirm(ctx, chatID, userID)
	case "cancel":
		b.cmdCancel(chatID, userID)
	case "cancel_booking":
		b.cmdCancelBooking(chatID, userID)
	case "admin":
		b.cmdAdmin(chatID, userID, msg.CommandArguments())
	case "admin_stats":
		b.cmdAdminStats(ctx, chatID, userID)
	case "list_clients":
		b.cmdListClients(ctx, chatID, userID)
	case "export_bookings":
		b.cmdExportBookings(ctx, chatID, userID)
	default:
		b.send(chatID, "Unknown command. Send /start for the list of commands.")
	}
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// подтверждаем нажатие, чтобы убрать "часики" на кнопке
	if _, err := b.tg.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.logger.Warn("bot: callback ack failed: %v", err)
	}

	if query.Message == nil {
		return
	}

	chatID := query.Message.Chat.ID
	userID := query.From.ID
	data := query.Data

	switch {
	case data == "noop":
		return
	case strings.HasPrefix(data, "selectpet:"):
		b.callbackSelectPet(ctx, chatID, userID, query, strings.TrimPrefix(data, "selectpet:"))
	case strings.HasPrefix(data, "selectkennel:"):
		b.callbackSelectKennel(ctx, chatID, userID, query, strings.TrimPrefix(data, "selectkennel:"))
	case strings.HasPrefix(data, "selectfood:"):
		b.callbackSelectFood(ctx, chatID, userID, query, strings.TrimPrefix(data, "selectfood:"))
	case strings.HasPrefix(data, "startcal:"), strings.HasPrefix(data, "endcal:"):
		b.callbackCalendar(ctx, chatID, userID, query, data)
	default:
		b.logger.Warn("bot: unknown callback data %q from user %d", data, userID)
	}
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.tg.Send(msg); err != nil {
		b.logger.Error("bot: failed to send message to chat %d: %v", chatID, err)
	}
}

func (b *Bot) sendWithMarkup(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	if _, err := b.tg.Send(msg); err != nil {
		b.logger.Error("bot: failed to send message to chat %d: %v", chatID, err)
	}
}

func (b *Bot) editWithMarkup(query *tgbotapi.CallbackQuery, text string, markup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(query.Message.Chat.ID, query.Message.MessageID, text, markup)
	if _, err := b.tg.Send(edit); err != nil {
		b.logger.Error("bot: failed to edit message in chat %d: %v", query.Message.Chat.ID, err)
	}
}

func (b *Bot) editText(query *tgbotapi.CallbackQuery, text string) {
	edit := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, text)
	if _, err := b.tg.Send(edit); err != nil {
		b.logger.Error("bot: failed to edit message in chat %d: %v", query.Message.Chat.ID, err)
	}
}
