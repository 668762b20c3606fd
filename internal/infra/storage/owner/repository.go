package owner

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

// Repository репозиторий для работы с владельцами питомцев
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория владельцев
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTelegramID получает владельца по Telegram ID
func (r *Repository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Owner, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "telegram_id", "name", "phone", "email", "created_at").
		From("owners").
		Where(squirrel.Eq{"telegram_id": telegramID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTelegramID - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.Owner
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&o.TelegramID,
		&o.Name,
		&o.Phone,
		&o.Email,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByTelegramID - scan owner: %v", ErrScanRow, err)
	}

	o.CreatedAt = createdAt.Time

	return &o, nil
}

// Create создает нового владельца
func (r *Repository) Create(ctx context.Context, o *domain.Owner) (*domain.Owner, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("owners").
		Columns("telegram_id", "name", "phone", "email").
		Values(o.TelegramID, o.Name, o.Phone, o.Email).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time

	return o, nil
}

// ListWithPets возвращает владельцев вместе с их питомцами (LEFT JOIN:
// владельцы без питомцев тоже попадают в список)
func (r *Repository) ListWithPets(ctx context.Context) ([]*domain.ClientRow, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"o.id AS owner_id",
		"o.name",
		"o.phone",
		"p.id AS pet_id",
		"p.name AS pet_name",
	).
		From("owners o").
		LeftJoin("pets p ON p.owner_id = o.id").
		OrderBy("o.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithPets - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithPets - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ClientRow, 0)
	for rows.Next() {
		var row domain.ClientRow
		if err := rows.Scan(&row.OwnerID, &row.Name, &row.Phone, &row.PetID, &row.PetName); err != nil {
			return nil, fmt.Errorf("%w: ListWithPets - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithPets - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
