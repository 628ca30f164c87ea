package domain

// Equipment represents a rentable equipment item with a finite stock.
// Quantity — общее число единиц, общий потолок для всех пересекающихся
// бронирований.
type Equipment struct {
	ID       int64
	Name     string
	Quantity int
	BaseFee  float64 // за единицу за час
	IsActive bool
}
