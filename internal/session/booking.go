package session

import "time"

// BookingStage этап диалога бронирования
type BookingStage int

const (
	StagePet BookingStage = iota
	StageKennel
	StageStartDate
	StageEndDate
	StageFood
	StageFoodQuantity
	StageFeedingFrequency
	StageServices
	StageReady
)

// BookingDraft черновик бронирования, заполняемый по мере диалога
// Сеттеры пропускают значение только на своём этапе: устаревшие нажатия
// на inline-кнопки прошлых шагов молча игнорируются
type BookingDraft struct {
	Stage BookingStage

	PetID         int64
	KennelID      int64
	StartDate     time.Time
	EndDate       time.Time
	FoodID        *int64
	FoodQuantity  int
	FeedingPerDay int
	Services      string
}

// NewBookingDraft создает черновик на первом этапе диалога
func NewBookingDraft() *BookingDraft {
	return &BookingDraft{Stage: StagePet}
}

// SetPet фиксирует выбранного питомца
func (d *BookingDraft) SetPet(petID int64) bool {
	if d.Stage != StagePet {
		return false
	}
	d.PetID = petID
	d.Stage = StageKennel
	return true
}

// SetKennel фиксирует выбранный вольер
func (d *BookingDraft) SetKennel(kennelID int64) bool {
	if d.Stage != StageKennel {
		return false
	}
	d.KennelID = kennelID
	d.Stage = StageStartDate
	return true
}

// SetStartDate фиксирует дату заезда
func (d *BookingDraft) SetStartDate(date time.Time) bool {
	if d.Stage != StageStartDate {
		return false
	}
	d.StartDate = date
	d.Stage = StageEndDate
	return true
}

// SetEndDate фиксирует дату выезда, дата раньше заезда отклоняется
func (d *BookingDraft) SetEndDate(date time.Time) bool {
	if d.Stage != StageEndDate {
		return false
	}
	if date.Before(d.StartDate) {
		return false
	}
	d.EndDate = date
	d.Stage = StageFood
	return true
}

// SetFood фиксирует выбранный корм, nil означает свой корм владельца
func (d *BookingDraft) SetFood(foodID *int64) bool {
	if d.Stage != StageFood {
		return false
	}
	d.FoodID = foodID
	if foodID == nil {
		// без корма пансиона количество не спрашиваем
		d.FoodQuantity = 0
		d.Stage = StageFeedingFrequency
	} else {
		d.Stage = StageFoodQuantity
	}
	return true
}

// SetFoodQuantity фиксирует количество порций корма
func (d *BookingDraft) SetFoodQuantity(quantity int) bool {
	if d.Stage != StageFoodQuantity || quantity < 0 {
		return false
	}
	d.FoodQuantity = quantity
	d.Stage = StageFeedingFrequency
	return true
}

// SetFeedingFrequency фиксирует число кормлений в день
func (d *BookingDraft) SetFeedingFrequency(perDay int) bool {
	if d.Stage != StageFeedingFrequency || perDay < 0 {
		return false
	}
	d.FeedingPerDay = perDay
	d.Stage = StageServices
	return true
}

// SetServices фиксирует пожелания по дополнительным услугам
func (d *BookingDraft) SetServices(services string) bool {
	if d.Stage != StageServices {
		return false
	}
	d.Services = services
	d.Stage = StageReady
	return true
}

// Ready сообщает, собраны ли все поля для оформления брони
func (d *BookingDraft) Ready() bool {
	return d.Stage == StageReady
}
