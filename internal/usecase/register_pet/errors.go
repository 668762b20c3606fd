package register_pet

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("register_pet: invalid input data")

	// ErrInternal возвращается при ошибках персистентного слоя
	ErrInternal = errors.New("register_pet: internal error")
)
