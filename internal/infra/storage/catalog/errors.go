package catalog

import "errors"

var (
	// ErrKennelNotFound возвращается, когда питомник не найден
	ErrKennelNotFound = errors.New("catalog.repository: kennel not found")

	// ErrFoodNotFound возвращается, когда корм не найден
	ErrFoodNotFound = errors.New("catalog.repository: food not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
