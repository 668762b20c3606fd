package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	PetID         int64     // ID питомца
	KennelID      int64     // ID питомника
	FoodID        *int64    // ID корма (опционально)
	StartDate     time.Time // Дата заезда (включительно)
	EndDate       time.Time // Дата выезда (включительно)
	FoodQuantity  int       // Количество единиц корма на все время проживания
	FeedingPerDay int       // Кормлений в день
	Services      string    // Дополнительные услуги, свободный текст
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID      int64     // ID созданного бронирования
	KennelCode     string    // Код питомника
	StartDate      time.Time // Дата заезда
	EndDate        time.Time // Дата выезда
	StayDays       int       // Длительность проживания в днях (включительно)
	EstimatedPrice float64   // Расчетная стоимость
	CreatedAt      time.Time // Время создания
}
