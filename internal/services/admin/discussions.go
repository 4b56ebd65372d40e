package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sessionGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/session"
	"github.com/ivangarzab/bookclub-admin/internal/models"
)

// discussionOp identifies a discussion list edit
type discussionOp string

const (
	discussionOpAdd    discussionOp = "add"
	discussionOpEdit   discussionOp = "edit"
	discussionOpDelete discussionOp = "delete"
)

// discussionEdit describes one mutation of a session's discussion list
type discussionEdit struct {
	op discussionOp

	// discussion carries the entry to append or the replacement, for add
	// and edit
	discussion *models.Discussion

	// deleteID is the entry to remove, for delete
	deleteID string
}

// applyDiscussionEdit builds the replacement discussion list for a
// whole-array session write. It never mutates the input slice: the session
// gateway only accepts full-array replacement, so the caller needs the
// original intact until the write is acknowledged.
func applyDiscussionEdit(current []models.Discussion, edit *discussionEdit) ([]models.Discussion, error) {
	switch edit.op {
	case discussionOpAdd:
		updated := make([]models.Discussion, 0, len(current)+1)
		updated = append(updated, current...)
		updated = append(updated, *edit.discussion)
		return updated, nil

	case discussionOpEdit:
		updated := make([]models.Discussion, len(current))
		found := false
		for i, d := range current {
			if d.ID == edit.discussion.ID {
				updated[i] = *edit.discussion
				found = true
			} else {
				updated[i] = d
			}
		}
		if !found {
			return nil, ErrDiscussionNotFound
		}
		return updated, nil

	case discussionOpDelete:
		updated := make([]models.Discussion, 0, len(current))
		found := false
		for _, d := range current {
			if d.ID == edit.deleteID {
				found = true
				continue
			}
			updated = append(updated, d)
		}
		if !found {
			return nil, ErrDiscussionNotFound
		}
		return updated, nil

	default:
		return nil, fmt.Errorf("unknown discussion edit op %q", edit.op)
	}
}

// AddDiscussion appends a discussion to the active session. The ID is
// generated client-side so no round trip is needed to learn it.
func (s *service) AddDiscussion(ctx context.Context, input *AddDiscussionInput) (*AddDiscussionOutput, error) {
	if input == nil || strings.TrimSpace(input.Title) == "" {
		return nil, ErrEmptyDiscussionTitle
	}

	if input.Date.IsZero() {
		return nil, ErrMissingDiscussionDate
	}

	club, sess, err := s.requireActiveSession()
	if err != nil {
		return nil, err
	}

	discussion := models.Discussion{
		ID:       s.uuidGenerator.NewUUID(),
		Title:    input.Title,
		Date:     input.Date,
		Location: input.Location,
	}

	updated, err := applyDiscussionEdit(sess.Discussions, &discussionEdit{
		op:         discussionOpAdd,
		discussion: &discussion,
	})
	if err != nil {
		return nil, err
	}

	refreshed, err := s.rewriteDiscussions(ctx, club, sess.ID, updated, nil)
	if err != nil {
		return nil, err
	}

	return &AddDiscussionOutput{
		Discussion:  &discussion,
		Club:        refreshed,
		Discussions: displayDiscussions(refreshed),
	}, nil
}

// UpdateDiscussion replaces a discussion in place within the active session,
// preserving storage order.
func (s *service) UpdateDiscussion(ctx context.Context, input *UpdateDiscussionInput) (*UpdateDiscussionOutput, error) {
	if input == nil || input.DiscussionID == "" {
		return nil, ErrEmptyDiscussionID
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrEmptyDiscussionTitle
	}

	if input.Date.IsZero() {
		return nil, ErrMissingDiscussionDate
	}

	club, sess, err := s.requireActiveSession()
	if err != nil {
		return nil, err
	}

	updated, err := applyDiscussionEdit(sess.Discussions, &discussionEdit{
		op: discussionOpEdit,
		discussion: &models.Discussion{
			ID:       input.DiscussionID,
			Title:    input.Title,
			Date:     input.Date,
			Location: input.Location,
		},
	})
	if err != nil {
		return nil, err
	}

	refreshed, err := s.rewriteDiscussions(ctx, club, sess.ID, updated, nil)
	if err != nil {
		return nil, err
	}

	return &UpdateDiscussionOutput{
		Club:        refreshed,
		Discussions: displayDiscussions(refreshed),
	}, nil
}

// DeleteDiscussion removes a discussion from the active session. The removal
// is sent both ways the wire format allows: the array goes out pre-filtered
// as the authoritative post-state, and the ID rides in the deletion list the
// endpoint acts on. Built from the same source, the two cannot disagree.
func (s *service) DeleteDiscussion(ctx context.Context, input *DeleteDiscussionInput) (*DeleteDiscussionOutput, error) {
	if input == nil || input.DiscussionID == "" {
		return nil, ErrEmptyDiscussionID
	}

	club, sess, err := s.requireActiveSession()
	if err != nil {
		return nil, err
	}

	updated, err := applyDiscussionEdit(sess.Discussions, &discussionEdit{
		op:       discussionOpDelete,
		deleteID: input.DiscussionID,
	})
	if err != nil {
		return nil, err
	}

	refreshed, err := s.rewriteDiscussions(ctx, club, sess.ID, updated, []string{input.DiscussionID})
	if err != nil {
		return nil, err
	}

	return &DeleteDiscussionOutput{
		Club:        refreshed,
		Discussions: displayDiscussions(refreshed),
	}, nil
}

// requireActiveSession returns the active club and its active session, or
// the narrowest applicable error
func (s *service) requireActiveSession() (*models.Club, *models.Session, error) {
	club := s.state.ActiveClub
	if club == nil {
		return nil, nil, ErrNoActiveClub
	}

	if club.ActiveSession == nil {
		return nil, nil, ErrNoActiveSession
	}

	return club, club.ActiveSession, nil
}

// rewriteDiscussions sends the whole replacement array in a session write,
// then re-fetches the club: the displayed discussions come from the club's
// nested active session, not from the session write's response body.
func (s *service) rewriteDiscussions(ctx context.Context, club *models.Club, sessionID string, discussions []models.Discussion, deleteIDs []string) (*models.Club, error) {
	if discussions == nil {
		discussions = []models.Discussion{}
	}

	_, err := s.sessionGateway.UpdateSession(ctx, &sessionGateway.UpdateSessionInput{
		SessionID:             sessionID,
		Discussions:           discussions,
		DiscussionIDsToDelete: deleteIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	refreshed, err := s.refreshActiveClub(ctx, club.ID, club.ServerID)
	if err != nil {
		return nil, &PartialWriteError{
			Completed: StepSessionWrite,
			Failed:    StepClubRefresh,
			Cause:     err,
		}
	}

	return refreshed, nil
}

// displayDiscussions returns the club's current discussions sorted by date
// ascending. Storage order stays insertion order; the sort is presentation
// only.
func displayDiscussions(club *models.Club) []models.Discussion {
	if club == nil || club.ActiveSession == nil {
		return nil
	}

	sorted := make([]models.Discussion, len(club.ActiveSession.Discussions))
	copy(sorted, club.ActiveSession.Discussions)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
