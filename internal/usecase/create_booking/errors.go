package create_booking

import "errors"

var (
	// ErrKennelConflict возвращается, когда питомник занят на выбранные даты
	// (авторитетная проверка внутри транзакции обнаружила пересечение либо
	// БД отклонила коммит как конфликт сериализации)
	ErrKennelConflict = errors.New("create_booking: kennel is not available for these dates")

	// ErrKennelNotFound возвращается, когда питомник не найден или неактивен
	ErrKennelNotFound = errors.New("create_booking: kennel not found")

	// ErrFoodNotFound возвращается, когда выбранный корм не найден
	ErrFoodNotFound = errors.New("create_booking: food not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при ошибках персистентного слоя; бронирование
	// при этом не записано
	ErrInternal = errors.New("create_booking: internal error")
)
