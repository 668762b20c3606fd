package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
// Порядок дат проверяется раньше, на уровне диалоговой сессии; здесь
// повторная проверка защищает usecase от прямых некорректных вызовов
func validateRequest(req *Request) error {
	if req.PetID <= 0 {
		return fmt.Errorf("%w: petID must be positive", ErrInvalidInput)
	}

	if req.KennelID <= 0 {
		return fmt.Errorf("%w: kennelID must be positive", ErrInvalidInput)
	}

	if req.FoodID != nil && *req.FoodID <= 0 {
		return fmt.Errorf("%w: foodID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	if req.FoodQuantity < 0 {
		return fmt.Errorf("%w: food quantity must be non-negative", ErrInvalidInput)
	}

	if req.FeedingPerDay < 0 {
		return fmt.Errorf("%w: feeding frequency must be non-negative", ErrInvalidInput)
	}

	return nil
}
