package services

import (
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"team-lab/allocator"
	"team-lab/domain"
	"team-lab/errors"
	"team-lab/export"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type ITeamService interface {
	Assign(roster domain.Roster, requested int) (domain.Allocation, error)
	Export(w io.Writer, allocation domain.Allocation) error
}

type AssignRequest struct {
	Roster     []domain.RosterEntry `validate:"required,min=1,dive"`
	GroupCount int                  `validate:"min=1"`
}

type TeamService struct {
	log       *slog.Logger
	allocator *allocator.Allocator
	validate  *validator.Validate
}

func NewTeamService(log *slog.Logger, allocator *allocator.Allocator) *TeamService {
	return &TeamService{
		log:       log,
		allocator: allocator,
		validate:  validator.New(),
	}
}

// Assign validates the whole request before any allocation happens, so a rejected
// request never produces partial teams.
func (s *TeamService) Assign(roster domain.Roster, requested int) (domain.Allocation, error) {
	request := AssignRequest{Roster: roster, GroupCount: requested}
	if err := s.validateRequest(request); err != nil {
		s.log.Warn("assignment rejected", "error", err, "players", len(roster), "requested", requested)
		return domain.Allocation{}, err
	}

	allocation, err := s.allocator.Allocate(roster, requested)
	if err != nil {
		s.log.Error("allocation failed", "error", err)
		return domain.Allocation{}, fmt.Errorf("allocate teams: %w", err)
	}
	s.log.Info("teams assigned",
		"players", len(roster),
		"requested", allocation.Requested,
		"effective", allocation.Effective)
	return allocation, nil
}

func (s *TeamService) Export(w io.Writer, allocation domain.Allocation) error {
	if err := export.Write(w, allocation); err != nil {
		s.log.Error("export failed", "error", err)
		return err
	}
	s.log.Debug("teams exported", "sheets", len(allocation.Groups))
	return nil
}

// validateRequest maps validator field errors back to the domain sentinels.
func (s *TeamService) validateRequest(request AssignRequest) error {
	err := s.validate.Struct(request)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) {
		return err
	}

	switch fieldErrors[0].StructField() {
	case "GroupCount":
		return fmt.Errorf("%w: got %d", errors.ErrInvalidGroupCount, request.GroupCount)
	case "Roster":
		return errors.ErrEmptyRoster
	case "Role":
		if entry, found := lo.Find(request.Roster, func(entry domain.RosterEntry) bool {
			return !entry.Role.Valid()
		}); found {
			return errors.InvalidRoleError{Name: entry.Name, Role: entry.Role.String()}
		}
	case "Name":
		return fmt.Errorf("%w: roster entry without a name", errors.ErrMalformedLine)
	}
	return err
}
