package reports

import "errors"

var (
	// ErrInternal возвращается при ошибках персистентного слоя
	ErrInternal = errors.New("reports: internal error")
)
