package stripepay

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Client клиент для создания платежных ссылок через Stripe Checkout
type Client struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
	logger     Logger
}

// New создает новый клиент Stripe
func New(apiKey, currency, successURL, cancelURL string, logger Logger) *Client {
	api := &client.API{}
	api.Init(apiKey, nil)

	return &Client{
		api:        api,
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

// CreateCheckoutSession создает checkout-сессию на сумму в минорных единицах
// валюты и возвращает URL страницы оплаты
func (c *Client) CreateCheckoutSession(ctx context.Context, amountMinorUnits int64, description string) (string, error) {
	if amountMinorUnits <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidAmount, amountMinorUnits)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(c.currency),
					UnitAmount: stripe.Int64(amountMinorUnits),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		c.logger.Error("stripepay: checkout session failed for %d %s: %v", amountMinorUnits, c.currency, err)
		return "", fmt.Errorf("%w: %v", ErrCreateSession, err)
	}

	c.logger.Info("stripepay: created checkout session %s for %d %s", sess.ID, amountMinorUnits, c.currency)

	return sess.URL, nil
}
