package admin

import (
	"context"
	"fmt"
	"strings"

	sessionGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/session"
)

// StartSession starts a new reading session for the active club. Archiving
// a finished session into past_sessions is a backend policy this core does
// not drive; a club that already has an active session is rejected instead.
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil || strings.TrimSpace(input.Book.Title) == "" {
		return nil, ErrEmptyBookTitle
	}

	if strings.TrimSpace(input.Book.Author) == "" {
		return nil, ErrEmptyBookAuthor
	}

	if input.DueDate.Before(s.clock.Now()) {
		return nil, ErrPastDueDate
	}

	club := s.state.ActiveClub
	if club == nil {
		return nil, ErrNoActiveClub
	}

	if club.ActiveSession != nil {
		return nil, ErrActiveSessionExists
	}

	created, err := s.sessionGateway.CreateSession(ctx, &sessionGateway.CreateSessionInput{
		ClubID:  club.ID,
		Book:    input.Book,
		DueDate: input.DueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	refreshed, err := s.refreshActiveClub(ctx, club.ID, club.ServerID)
	if err != nil {
		return &StartSessionOutput{Session: created}, &PartialWriteError{
			Completed: StepSessionCreate,
			Failed:    StepClubRefresh,
			Cause:     err,
		}
	}

	return &StartSessionOutput{
		Session: created,
		Club:    refreshed,
	}, nil
}
