package domain

// CourtType represents the type of a court
type CourtType string

const (
	CourtIndoor  CourtType = "INDOOR"
	CourtOutdoor CourtType = "OUTDOOR"
)

// Valid сообщает, является ли значение допустимым типом корта
func (t CourtType) Valid() bool {
	return t == CourtIndoor || t == CourtOutdoor
}

// Court represents a bookable badminton court
type Court struct {
	ID       int64
	Name     string
	Location string
	Type     CourtType
	BaseRate float64 // за час
	IsActive bool
}
