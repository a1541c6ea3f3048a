package models

// Inscription represents a student's enrollment into a classroom.
type Inscription struct {
	ID              int64  `db:"id" json:"id"`
	StudentID       int64  `db:"id_student" json:"id_student" binding:"required"`
	ClassroomID     int64  `db:"id_classroom" json:"id_classroom" binding:"required"`
	Year            int    `db:"year" json:"year"`
	Cycle           string `db:"cycle" json:"cycle" binding:"max=10"`
	DateTaken       string `db:"date_taken" json:"date_taken"`
	TypeMaterial    string `db:"type_material" json:"type_material" binding:"max=50"`
	Status          bool   `db:"status" json:"status"`
	DateInscription string `db:"date_inscription" json:"date_inscription"`
	StatusMaterial  bool   `db:"status_material" json:"status_material"`
}

// EnrollmentResult reports the outcome of the compound
// inscription+payment creation flow.
type EnrollmentResult struct {
	Success       bool   `json:"success"`
	InscriptionID int64  `json:"inscription_id,omitempty"`
	PaymentID     int64  `json:"payment_id,omitempty"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}

// InscriptionWithPayments bundles an inscription with its payments and the
// read-side aggregates consumed by the UI.
type InscriptionWithPayments struct {
	Inscription  map[string]any `json:"inscription"`
	Payments     []Payment      `json:"payments"`
	TotalPaid    int64          `json:"total_paid"`
	PaymentCount int            `json:"payment_count"`
}
