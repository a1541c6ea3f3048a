package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/acadely/academia-api/internal/models"
)

const paymentSchema = `
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	method_payment VARCHAR(50),
	amount INTEGER,
	created_datetime DATETIME DEFAULT CURRENT_TIMESTAMP,
	id_inscription INTEGER,
	FOREIGN KEY (id_inscription) REFERENCES inscription(id)`

// PaymentRepository manages persistence for payments, the leaf of the
// deletion hierarchy.
type PaymentRepository struct {
	*Generic
	db *sqlx.DB
}

// NewPaymentRepository constructs a PaymentRepository.
func NewPaymentRepository(db *sqlx.DB, log *zap.Logger) *PaymentRepository {
	return &PaymentRepository{Generic: NewGeneric(db, "payment", log), db: db}
}

// CreateTable ensures the payment table exists.
func (r *PaymentRepository) CreateTable(ctx context.Context) error {
	return r.Generic.CreateTable(ctx, paymentSchema)
}

// Create inserts a payment and assigns the store-generated id. The
// creation timestamp is left to the store default when unset.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	id, err := r.Insert(ctx, paymentRecord(payment))
	if err != nil {
		return err
	}
	payment.ID = id
	return nil
}

// ListByInscription returns every payment referencing the inscription,
// matched exactly on the foreign key.
func (r *PaymentRepository) ListByInscription(ctx context.Context, inscriptionID int64) ([]models.Payment, error) {
	const query = `SELECT id, method_payment, amount, created_datetime, id_inscription FROM payment WHERE id_inscription = ?`
	var payments []models.Payment
	if err := r.db.SelectContext(ctx, &payments, query, inscriptionID); err != nil {
		return nil, fmt.Errorf("list payments by inscription: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) asDependent(fk string) dependent {
	return dependent{repo: r.Generic, fk: fk}
}

func paymentRecord(p *models.Payment) Record {
	rec := Record{
		"method_payment": p.MethodPayment,
		"amount":         p.Amount,
		"id_inscription": p.InscriptionID,
	}
	if !p.CreatedDatetime.IsZero() {
		rec["created_datetime"] = p.CreatedDatetime.Format("2006-01-02 15:04:05")
	}
	return rec
}
