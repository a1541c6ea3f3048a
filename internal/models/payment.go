package models

import "time"

// Payment represents a payment linked to an inscription.
type Payment struct {
	ID              int64     `db:"id" json:"id"`
	MethodPayment   string    `db:"method_payment" json:"method_payment" binding:"required,max=50"`
	Amount          int64     `db:"amount" json:"amount" binding:"required"`
	CreatedDatetime time.Time `db:"created_datetime" json:"created_datetime"`
	InscriptionID   int64     `db:"id_inscription" json:"id_inscription"`
}
