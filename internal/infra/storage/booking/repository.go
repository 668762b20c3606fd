package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PH-BookingBot/internal/domain"
	"github.com/m04kA/PH-BookingBot/pkg/psqlbuilder"
	"github.com/m04kA/PH-BookingBot/pkg/txmanager"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте есть активная транзакция, вставка выполняется внутри неё
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"pet_id",
			"kennel_id",
			"food_id",
			"start_date",
			"end_date",
			"food_quantity",
			"feeding_frequency_per_day",
			"services",
			"estimated_price",
		).
		Values(
			b.PetID,
			b.KennelID,
			b.FoodID,
			b.StartDate,
			b.EndDate,
			b.FoodQuantity,
			b.FeedingPerDay,
			b.Services,
			b.EstimatedPrice,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// CountOverlapping считает бронирования питомника, чей закрытый интервал
// [start_date, end_date] пересекается с кандидатом [start, end]
// (existing.start <= candidate.end AND existing.end >= candidate.start)
//
// Вызывается и вне транзакции (предварительная проверка для быстрого ответа
// пользователю), и внутри сериализуемой транзакции коммита — там строки
// дополнительно блокируются через FOR UPDATE
func (r *Repository) CountOverlapping(ctx context.Context, kennelID int64, start, end time.Time) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{"kennel_id": kennelID}).
		Where(squirrel.LtOrEq{"start_date": end}).
		Where(squirrel.GtOrEq{"end_date": start})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: CountOverlapping - scan id: %v", ErrScanRow, err)
		}
		count++
	}

	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - rows error: %v", ErrScanRow, err)
	}

	return count, nil
}

// Count возвращает общее число бронирований
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("bookings").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// RevenueSum возвращает сумму расчетных цен всех бронирований
func (r *Repository) RevenueSum(ctx context.Context) (float64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(estimated_price), 0)").
		From("bookings").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: RevenueSum - build select query: %v", ErrBuildQuery, err)
	}

	var sum float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: RevenueSum - scan sum: %v", ErrScanRow, err)
	}

	return sum, nil
}

// ListForExport возвращает денормализованные строки бронирований для CSV-выгрузки
func (r *Repository) ListForExport(ctx context.Context) ([]*domain.BookingExportRow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"o.name AS owner_name",
		"p.name AS pet_name",
		"k.code AS kennel_code",
		"b.start_date",
		"b.end_date",
		"f.name AS food_name",
		"b.food_quantity",
		"b.feeding_frequency_per_day",
		"b.services",
		"b.estimated_price",
		"b.created_at",
	).
		From("bookings b").
		Join("pets p ON p.id = b.pet_id").
		Join("owners o ON o.id = p.owner_id").
		LeftJoin("kennels k ON k.id = b.kennel_id").
		LeftJoin("foods f ON f.id = b.food_id").
		OrderBy("b.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForExport - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForExport - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingExportRow, 0)
	for rows.Next() {
		var row domain.BookingExportRow
		err := rows.Scan(
			&row.BookingID,
			&row.OwnerName,
			&row.PetName,
			&row.KennelCode,
			&row.StartDate,
			&row.EndDate,
			&row.FoodName,
			&row.FoodQuantity,
			&row.FeedingPerDay,
			&row.Services,
			&row.EstimatedPrice,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListForExport - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForExport - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
