// Package catalog хранит справочные данные: питомники и корма
// Справочники управляются извне, сервис их только читает
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PH-BookingBot/internal/domain"
	"github.com/m04kA/PH-BookingBot/pkg/psqlbuilder"
	"github.com/m04kA/PH-BookingBot/pkg/txmanager"
)

// DBExecutor интерфейс для работы с БД, поддерживает *sql.DB и *sql.Tx
type DBExecutor = txmanager.Executor

// Repository репозиторий справочных данных
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveKennels возвращает питомники, доступные для новых бронирований
func (r *Repository) ListActiveKennels(ctx context.Context) ([]*domain.Kennel, error) {
	return r.listKennels(ctx, true)
}

// ListKennels возвращает все питомники, включая неактивные (для админ-панели)
func (r *Repository) ListKennels(ctx context.Context) ([]*domain.Kennel, error) {
	return r.listKennels(ctx, false)
}

func (r *Repository) listKennels(ctx context.Context, onlyActive bool) ([]*domain.Kennel, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "code", "size", "daily_price", "is_active").
		From("kennels").
		OrderBy("id ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listKennels - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listKennels - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	kennels := make([]*domain.Kennel, 0)
	for rows.Next() {
		var k domain.Kennel
		if err := rows.Scan(&k.ID, &k.Code, &k.Size, &k.DailyPrice, &k.IsActive); err != nil {
			return nil, fmt.Errorf("%w: listKennels - scan kennel: %v", ErrScanRow, err)
		}
		kennels = append(kennels, &k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listKennels - rows error: %v", ErrScanRow, err)
	}

	return kennels, nil
}

// GetKennel получает питомник по ID
func (r *Repository) GetKennel(ctx context.Context, id int64) (*domain.Kennel, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "code", "size", "daily_price", "is_active").
		From("kennels").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetKennel - build select query: %v", ErrBuildQuery, err)
	}

	var k domain.Kennel
	err = executor.QueryRowContext(ctx, query, args...).Scan(&k.ID, &k.Code, &k.Size, &k.DailyPrice, &k.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKennelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetKennel - scan kennel: %v", ErrScanRow, err)
	}

	return &k, nil
}

// ListFoods возвращает все варианты корма
func (r *Repository) ListFoods(ctx context.Context) ([]*domain.Food, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "unit_price").
		From("foods").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListFoods - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFoods - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	foods := make([]*domain.Food, 0)
	for rows.Next() {
		var f domain.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.UnitPrice); err != nil {
			return nil, fmt.Errorf("%w: ListFoods - scan food: %v", ErrScanRow, err)
		}
		foods = append(foods, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFoods - rows error: %v", ErrScanRow, err)
	}

	return foods, nil
}

// GetFood получает корм по ID
func (r *Repository) GetFood(ctx context.Context, id int64) (*domain.Food, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "unit_price").
		From("foods").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFood - build select query: %v", ErrBuildQuery, err)
	}

	var f domain.Food
	err = executor.QueryRowContext(ctx, query, args...).Scan(&f.ID, &f.Name, &f.UnitPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetFood - scan food: %v", ErrScanRow, err)
	}

	return &f, nil
}
