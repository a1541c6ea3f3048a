package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/acadely/academia-api/internal/models"
	"github.com/acadely/academia-api/internal/repository"
	appErrors "github.com/acadely/academia-api/pkg/errors"
)

// TeamService wraps the team repository's typed operations. Validation
// failures from the Team invariants pass through unchanged so callers can
// distinguish them from storage errors.
type TeamService struct {
	teams  *repository.TeamRepository
	logger *zap.Logger
}

// NewTeamService constructs a TeamService.
func NewTeamService(teams *repository.TeamRepository, logger *zap.Logger) *TeamService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeamService{teams: teams, logger: logger}
}

// Create validates and stores a new team.
func (s *TeamService) Create(ctx context.Context, team *models.Team) error {
	if err := s.teams.CreateTeam(ctx, team); err != nil {
		return err
	}
	s.logger.Info("team created", zap.Int64("id", team.ID), zap.String("name", team.Name))
	return nil
}

// Update validates and stores the team's new state.
func (s *TeamService) Update(ctx context.Context, team *models.Team) error {
	updated, err := s.teams.UpdateTeam(ctx, team)
	if err != nil {
		return err
	}
	if !updated {
		return appErrors.Clone(appErrors.ErrNotFound, "team not found")
	}
	return nil
}

// Delete removes a team by id.
func (s *TeamService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.teams.DeleteTeam(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete team")
	}
	if !deleted {
		return appErrors.Clone(appErrors.ErrNotFound, "team not found")
	}
	return nil
}

// Get returns a team by id.
func (s *TeamService) Get(ctx context.Context, id int64) (*models.Team, error) {
	team, err := s.teams.GetTeamByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load team")
	}
	if team == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "team not found")
	}
	return team, nil
}

// List returns all teams, or the teams whose name matches the search term.
func (s *TeamService) List(ctx context.Context, search string) ([]models.Team, error) {
	if search != "" {
		return s.teams.SearchTeams(ctx, search)
	}
	return s.teams.AllTeams(ctx)
}

// ByGender returns the teams declaring the given gender.
func (s *TeamService) ByGender(ctx context.Context, gender models.TeamGender) ([]models.Team, error) {
	return s.teams.TeamsByGender(ctx, gender)
}

// Overlapping returns teams whose age band overlaps [minAge, maxAge].
func (s *TeamService) Overlapping(ctx context.Context, minAge, maxAge int) ([]models.Team, error) {
	return s.teams.TeamsByAgeRange(ctx, minAge, maxAge)
}
