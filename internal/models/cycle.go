package models

// Cycle represents an academic cycle stored in the cicle table.
// The table name keeps the historical spelling of the store file.
type Cycle struct {
	ID        int64  `db:"id" json:"id"`
	Code      string `db:"cicle" json:"cicle" binding:"required,max=2"`
	DateStart string `db:"date_start" json:"date_start"`
	DateEnd   string `db:"date_end" json:"date_end"`
	Manager   string `db:"manager" json:"manager" binding:"max=100"`
}
