package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/acadely/academia-api/internal/metrics"
	"github.com/acadely/academia-api/internal/models"
	"github.com/acadely/academia-api/internal/repository"
	appErrors "github.com/acadely/academia-api/pkg/errors"
)

// EnrollmentService exposes the compound inscription+payment flow and its
// read-side aggregate to the API layer.
type EnrollmentService struct {
	inscriptions *repository.InscriptionRepository
	logger       *zap.Logger
}

// NewEnrollmentService constructs an EnrollmentService.
func NewEnrollmentService(inscriptions *repository.InscriptionRepository, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{inscriptions: inscriptions, logger: logger}
}

// Enroll creates an inscription and its first payment as one unit.
func (s *EnrollmentService) Enroll(ctx context.Context, insc *models.Inscription, payment *models.Payment) (*models.EnrollmentResult, error) {
	result, err := s.inscriptions.CreateWithPayment(ctx, insc, payment)
	if err != nil {
		s.logger.Error("enrollment failed", zap.Error(err))
		return result, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create inscription with payment")
	}

	s.logger.Info("enrollment created",
		zap.Int64("inscription_id", result.InscriptionID),
		zap.Int64("payment_id", result.PaymentID))
	return result, nil
}

// Get returns the inscription with its payments and totals.
func (s *EnrollmentService) Get(ctx context.Context, id int64) (*models.InscriptionWithPayments, error) {
	bundle, err := s.inscriptions.GetWithPayments(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load inscription")
	}
	if bundle == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "inscription not found")
	}
	return bundle, nil
}

// Delete removes the inscription and its payments, reporting whether the
// inscription row existed.
func (s *EnrollmentService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.inscriptions.DeleteCascade(ctx, id)
	metrics.ObserveCascade("inscription", deleted, err)
	if err != nil {
		s.logger.Error("inscription cascade failed", zap.Int64("id", id), zap.Error(err))
		return false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete inscription")
	}
	return deleted, nil
}
