package stripepay

import "errors"

var (
	// ErrCreateSession возвращается, когда Stripe не смог создать checkout-сессию
	ErrCreateSession = errors.New("stripepay: failed to create checkout session")

	// ErrInvalidAmount возвращается при неположительной сумме платежа
	ErrInvalidAmount = errors.New("stripepay: amount must be positive")
)
