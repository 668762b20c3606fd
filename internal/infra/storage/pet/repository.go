package pet

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

// Repository репозиторий для работы с питомцами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория питомцев
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового питомца
func (r *Repository) Create(ctx context.Context, p *domain.Pet) (*domain.Pet, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pets").
		Columns(
			"owner_id",
			"name",
			"species",
			"breed",
			"color",
			"age",
			"weight_kg",
			"length_cm",
			"microchip_id",
			"vaccination_notes",
			"special_needs",
			"photo_file_id",
		).
		Values(
			p.OwnerID,
			p.Name,
			p.Species,
			p.Breed,
			p.Color,
			p.Age,
			p.WeightKg,
			p.LengthCm,
			p.MicrochipID,
			p.VaccinationNotes,
			p.SpecialNeeds,
			p.PhotoFileID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time

	return p, nil
}

// GetByID получает питомца по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Pet, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := petColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pet: %v", ErrScanRow, err)
	}

	return p, nil
}

// ListByOwner возвращает питомцев владельца
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Pet, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := petColumns().
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	pets := make([]*domain.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOwner - scan pet: %v", ErrScanRow, err)
		}
		pets = append(pets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - rows error: %v", ErrScanRow, err)
	}

	return pets, nil
}

// Count возвращает общее число питомцев
func (r *Repository) Count(ctx context.Context) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("pets").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func petColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"species",
		"breed",
		"color",
		"age",
		"weight_kg",
		"length_cm",
		"microchip_id",
		"vaccination_notes",
		"special_needs",
		"photo_file_id",
		"created_at",
	).From("pets")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPet(row rowScanner) (*domain.Pet, error) {
	var p domain.Pet
	var createdAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Color,
		&p.Age,
		&p.WeightKg,
		&p.LengthCm,
		&p.MicrochipID,
		&p.VaccinationNotes,
		&p.SpecialNeeds,
		&p.PhotoFileID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time

	return &p, nil
}
