package reports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/m04kA/PH-BookingBot/internal/domain"
)

var csvHeader = []string{
	"booking_id", "owner", "pet", "kennel", "start_date", "end_date",
	"food", "food_qty", "freq_per_day", "services", "estimated_price", "created_at",
}

// Service сервис отчетности для администраторов
type Service struct {
	bookingRepo BookingRepository
	petRepo     PetRepository
	ownerRepo   OwnerRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый сервис отчетности
func NewService(
	bookingRepo BookingRepository,
	petRepo PetRepository,
	ownerRepo OwnerRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		petRepo:     petRepo,
		ownerRepo:   ownerRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Stats возвращает сводную статистику пансиона
func (s *Service) Stats(ctx context.Context) (*domain.Stats, error) {
	pets, err := s.petRepo.Count(ctx)
	if err != nil {
		s.logger.Error("reports: failed to count pets: %v", err)
		return nil, fmt.Errorf("%w: failed to count pets: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.Count(ctx)
	if err != nil {
		s.logger.Error("reports: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	revenue, err := s.bookingRepo.RevenueSum(ctx)
	if err != nil {
		s.logger.Error("reports: failed to sum revenue: %v", err)
		return nil, fmt.Errorf("%w: failed to sum revenue: %v", ErrInternal, err)
	}

	return &domain.Stats{
		TotalPets:     pets,
		TotalBookings: bookings,
		Revenue:       domain.Round2(revenue),
	}, nil
}

// Clients возвращает список владельцев с их питомцами
func (s *Service) Clients(ctx context.Context) ([]*domain.ClientRow, error) {
	rows, err := s.ownerRepo.ListWithPets(ctx)
	if err != nil {
		s.logger.Error("reports: failed to list clients: %v", err)
		return nil, fmt.Errorf("%w: failed to list clients: %v", ErrInternal, err)
	}
	return rows, nil
}

// Kennels возвращает полный список вольеров, включая неактивные
func (s *Service) Kennels(ctx context.Context) ([]*domain.Kennel, error) {
	kennels, err := s.catalogRepo.ListKennels(ctx)
	if err != nil {
		s.logger.Error("reports: failed to list kennels: %v", err)
		return nil, fmt.Errorf("%w: failed to list kennels: %v", ErrInternal, err)
	}
	return kennels, nil
}

// WriteBookingsCSV пишет выгрузку всех бронирований в формате CSV
func (s *Service) WriteBookingsCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.bookingRepo.ListForExport(ctx)
	if err != nil {
		s.logger.Error("reports: failed to export bookings: %v", err)
		return fmt.Errorf("%w: failed to export bookings: %v", ErrInternal, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: failed to write csv header: %v", ErrInternal, err)
	}

	for _, row := range rows {
		kennel := ""
		if row.KennelCode != nil {
			kennel = *row.KennelCode
		}
		food := ""
		if row.FoodName != nil {
			food = *row.FoodName
		}

		record := []string{
			strconv.FormatInt(row.BookingID, 10),
			row.OwnerName,
			row.PetName,
			kennel,
			row.StartDate.Format(domain.DateFormat),
			row.EndDate.Format(domain.DateFormat),
			food,
			strconv.Itoa(row.FoodQuantity),
			strconv.Itoa(row.FeedingPerDay),
			row.Services,
			fmt.Sprintf("%.2f", row.EstimatedPrice),
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%w: failed to write csv row: %v", ErrInternal, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: failed to flush csv: %v", ErrInternal, err)
	}

	s.logger.Info("reports: exported %d bookings to csv", len(rows))

	return nil
}
