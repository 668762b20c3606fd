package register_pet

// Request модель запроса на регистрацию питомца
// Числовые поля опциональны: оригинальный диалог допускает нечисловой ввод
// возраста/веса/длины и сохраняет NULL
type Request struct {
	TelegramID int64  // Telegram ID владельца
	OwnerName  string // Полное имя владельца
	OwnerPhone string // Телефон владельца

	PetName          string
	Species          string
	Breed            string
	Color            string
	Age              *int
	WeightKg         *float64
	LengthCm         *float64
	MicrochipID      string
	VaccinationNotes string
	SpecialNeeds     string
	PhotoFileID      *string
}

// Response модель ответа с созданным питомцем
type Response struct {
	OwnerID int64
	PetID   int64
}
