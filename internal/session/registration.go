package session

// RegStep шаг анкеты регистрации питомца
type RegStep int

const (
	RegPetName RegStep = iota
	RegSpecies
	RegBreed
	RegColor
	RegAge
	RegWeight
	RegLength
	RegMicrochip
	RegVaccination
	RegSpecialNeeds
	RegPhoto
	RegOwnerName
	RegOwnerPhone
	RegDone
)

// RegistrationDraft черновик анкеты регистрации питомца
// Анкета линейная: каждый текстовый ответ заполняет текущий шаг и
// переводит диалог на следующий
type RegistrationDraft struct {
	Step RegStep

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
	OwnerName        string
	OwnerPhone       string
}

// NewRegistrationDraft создает анкету на первом шаге
func NewRegistrationDraft() *RegistrationDraft {
	return &RegistrationDraft{Step: RegPetName}
}

// Advance переводит анкету на следующий шаг
func (d *RegistrationDraft) Advance() {
	if d.Step < RegDone {
		d.Step++
	}
}

// Done сообщает, заполнена ли анкета целиком
func (d *RegistrationDraft) Done() bool {
	return d.Step == RegDone
}
