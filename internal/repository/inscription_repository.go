package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/acadely/academia-api/internal/models"
)

const inscriptionSchema = `
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	id_student INTEGER,
	id_classroom INTEGER,
	year INTEGER,
	cycle VARCHAR(10),
	date_taken DATE,
	type_material VARCHAR(50),
	status BOOLEAN DEFAULT 1,
	date_inscription DATE DEFAULT CURRENT_DATE,
	status_material BOOLEAN DEFAULT 1,
	FOREIGN KEY (id_student) REFERENCES student(id),
	FOREIGN KEY (id_classroom) REFERENCES classroom(id)`

// InscriptionRepository manages persistence for inscriptions and owns the
// payment repository for cascade deletion and the compound creation flow.
type InscriptionRepository struct {
	*Generic
	db       *sqlx.DB
	payments *PaymentRepository
}

// NewInscriptionRepository constructs an InscriptionRepository.
func NewInscriptionRepository(db *sqlx.DB, log *zap.Logger) *InscriptionRepository {
	return &InscriptionRepository{
		Generic:  NewGeneric(db, "inscription", log),
		db:       db,
		payments: NewPaymentRepository(db, log),
	}
}

// CreateTable ensures the inscription table exists.
func (r *InscriptionRepository) CreateTable(ctx context.Context) error {
	return r.Generic.CreateTable(ctx, inscriptionSchema)
}

// Payments exposes the owned payment repository.
func (r *InscriptionRepository) Payments() *PaymentRepository {
	return r.payments
}

// Create inserts an inscription and assigns the store-generated id.
func (r *InscriptionRepository) Create(ctx context.Context, insc *models.Inscription) error {
	id, err := r.Insert(ctx, inscriptionRecord(insc))
	if err != nil {
		return err
	}
	insc.ID = id
	return nil
}

// CreateWithPayment inserts an inscription and its first payment as one
// logical unit inside a single transaction. The payment's foreign key is
// taken from the inscription insert's store-assigned id. The returned
// result always reports the outcome; the error carries the cause when the
// flow fails.
func (r *InscriptionRepository) CreateWithPayment(ctx context.Context, insc *models.Inscription, payment *models.Payment) (*models.EnrollmentResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return failedEnrollment(err), fmt.Errorf("create inscription with payment: begin: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	inscriptionID, err := r.WithTx(tx).Insert(ctx, inscriptionRecord(insc))
	if err != nil {
		return failedEnrollment(err), fmt.Errorf("create inscription with payment: %w", err)
	}

	payment.InscriptionID = inscriptionID
	paymentID, err := r.payments.WithTx(tx).Insert(ctx, paymentRecord(payment))
	if err != nil {
		return failedEnrollment(err), fmt.Errorf("create inscription with payment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return failedEnrollment(err), fmt.Errorf("create inscription with payment: commit: %w", err)
	}
	committed = true

	insc.ID = inscriptionID
	payment.ID = paymentID

	return &models.EnrollmentResult{
		Success:       true,
		InscriptionID: inscriptionID,
		PaymentID:     paymentID,
		Message:       "inscription and payment created",
	}, nil
}

// GetWithPayments returns the inscription together with all payments
// referencing it, plus the total paid and payment count. A missing
// inscription yields (nil, nil).
func (r *InscriptionRepository) GetWithPayments(ctx context.Context, id int64) (*models.InscriptionWithPayments, error) {
	insc, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if insc == nil {
		return nil, nil
	}

	payments, err := r.payments.ListByInscription(ctx, id)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, p := range payments {
		total += p.Amount
	}

	return &models.InscriptionWithPayments{
		Inscription:  insc,
		Payments:     payments,
		TotalPaid:    total,
		PaymentCount: len(payments),
	}, nil
}

// DeleteCascade removes the inscription's payments and then the
// inscription itself.
func (r *InscriptionRepository) DeleteCascade(ctx context.Context, id int64) (bool, error) {
	return deleteCascade(ctx, r.db, r.Generic, []dependent{r.payments.asDependent("id_inscription")}, id)
}

func (r *InscriptionRepository) asDependent(fk string) dependent {
	return dependent{
		repo:     r.Generic,
		fk:       fk,
		children: []dependent{r.payments.asDependent("id_inscription")},
	}
}

func inscriptionRecord(i *models.Inscription) Record {
	rec := Record{
		"id_student":      i.StudentID,
		"id_classroom":    i.ClassroomID,
		"year":            i.Year,
		"cycle":           i.Cycle,
		"date_taken":      i.DateTaken,
		"type_material":   i.TypeMaterial,
		"status":          i.Status,
		"status_material": i.StatusMaterial,
	}
	if i.DateInscription != "" {
		rec["date_inscription"] = i.DateInscription
	}
	return rec
}

func failedEnrollment(err error) *models.EnrollmentResult {
	return &models.EnrollmentResult{Success: false, Error: err.Error()}
}
