package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/acadely/academia-api/internal/models"
)

func TestCreateWithPaymentCommitsBothRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insc := &models.Inscription{StudentID: 1, ClassroomID: 1, Year: 2024, Cycle: "A", DateTaken: "2024-01-10", DateInscription: "2024-01-10"}
	payment := &models.Payment{MethodPayment: "cash", Amount: 150}

	result, err := store.Inscriptions.CreateWithPayment(ctx, insc, payment)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	assert.Equal(t, insc.ID, result.InscriptionID)
	assert.Equal(t, payment.ID, result.PaymentID)
	assert.Equal(t, insc.ID, payment.InscriptionID)

	payments, err := store.Payments.ListByInscription(ctx, insc.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, int64(150), payments[0].Amount)
}

func TestCreateWithPaymentRollsBackOnPaymentFailure(t *testing.T) {
	db := newTestDB(t)
	repo := NewInscriptionRepository(db, zap.NewNop())
	ctx := context.Background()

	// The payment table is deliberately absent, so the second insert fails.
	require.NoError(t, repo.CreateTable(ctx))

	insc := &models.Inscription{StudentID: 1, ClassroomID: 1, Year: 2024, Cycle: "A", DateTaken: "2024-01-10", DateInscription: "2024-01-10"}
	result, err := repo.CreateWithPayment(ctx, insc, &models.Payment{MethodPayment: "cash", Amount: 150})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)

	// The inscription insert was rolled back with it.
	rows, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGetWithPaymentsAggregates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insc := &models.Inscription{StudentID: 1, ClassroomID: 1, Year: 2024, Cycle: "A", DateTaken: "2024-01-10", DateInscription: "2024-01-10"}
	require.NoError(t, store.Inscriptions.Create(ctx, insc))

	for _, amount := range []int64{100, 250} {
		p := &models.Payment{MethodPayment: "cash", Amount: amount, InscriptionID: insc.ID}
		require.NoError(t, store.Payments.Create(ctx, p))
	}

	// A payment on another inscription must not leak into the aggregate.
	other := &models.Inscription{StudentID: 2, ClassroomID: 1, Year: 2024, Cycle: "A", DateTaken: "2024-01-11", DateInscription: "2024-01-11"}
	require.NoError(t, store.Inscriptions.Create(ctx, other))
	require.NoError(t, store.Payments.Create(ctx, &models.Payment{MethodPayment: "card", Amount: 999, InscriptionID: other.ID}))

	bundle, err := store.Inscriptions.GetWithPayments(ctx, insc.ID)
	require.NoError(t, err)
	require.NotNil(t, bundle)

	assert.Equal(t, int64(350), bundle.TotalPaid)
	assert.Equal(t, 2, bundle.PaymentCount)
	assert.Len(t, bundle.Payments, 2)
	assert.Equal(t, asID(bundle.Inscription["id"]), insc.ID)
}

func TestGetWithPaymentsMissingInscription(t *testing.T) {
	store := newTestStore(t)

	bundle, err := store.Inscriptions.GetWithPayments(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, bundle)
}

func TestInscriptionDeleteCascadesPayments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	insc := &models.Inscription{StudentID: 1, ClassroomID: 1, Year: 2024, Cycle: "A", DateTaken: "2024-01-10", DateInscription: "2024-01-10"}
	require.NoError(t, store.Inscriptions.Create(ctx, insc))
	require.NoError(t, store.Payments.Create(ctx, &models.Payment{MethodPayment: "cash", Amount: 100, InscriptionID: insc.ID}))

	deleted, err := store.Inscriptions.DeleteCascade(ctx, insc.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.Equal(t, 0, countRows(t, store.Inscriptions.Generic))
	assert.Equal(t, 0, countRows(t, store.Payments.Generic))
}
