package admin

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	clubGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/club"
	memberGateway "github.com/ivangarzab/bookclub-admin/internal/gateways/member"
	"github.com/ivangarzab/bookclub-admin/internal/models"
)

// SaveMember writes a member's own fields and, only when the desired
// shame-list membership differs from the club snapshot the form was opened
// against, issues a second independent club write with a full replacement
// shame list. The two writes are not atomic: if the club write fails after
// the member write succeeded, the member write stays and the caller gets a
// PartialWriteError naming it. Afterward the club is re-fetched so local
// state shows whatever the backend actually persisted.
func (s *service) SaveMember(ctx context.Context, input *SaveMemberInput) (*SaveMemberOutput, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, ErrEmptyMemberName
	}

	if input.Points < 0 {
		return nil, ErrNegativePoints
	}

	if input.BooksRead < 0 {
		return nil, ErrNegativeBooksRead
	}

	snapshot := s.state.ActiveClub
	if snapshot == nil {
		return nil, ErrNoActiveClub
	}

	// Step 1: the member's own fields. Shame-list data never rides along.
	var saved *models.Member
	var err error
	if input.MemberID == 0 {
		saved, err = s.memberGateway.CreateMember(ctx, &memberGateway.CreateMemberInput{
			Name:      input.Name,
			Points:    input.Points,
			BooksRead: input.BooksRead,
			Clubs:     []string{snapshot.ID},
		})
	} else {
		saved, err = s.memberGateway.UpdateMember(ctx, &memberGateway.UpdateMemberInput{
			MemberID:  input.MemberID,
			Name:      input.Name,
			Points:    input.Points,
			BooksRead: input.BooksRead,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save member: %w", err)
	}

	// Step 2: the club's shame list, only when the desired state differs
	// from the snapshot. For a new member the ID just came back from step 1.
	shameListUpdated := false
	if input.OnShameList != snapshot.OnShameList(saved.ID) {
		_, err = s.clubGateway.UpdateShameList(ctx, &clubGateway.UpdateShameListInput{
			ClubID:    snapshot.ID,
			ServerID:  snapshot.ServerID,
			ShameList: rewriteShameList(snapshot.ShameList, saved.ID, input.OnShameList),
		})
		if err != nil {
			s.logger.Warn("member saved but shame list write failed",
				zap.Int("member_id", saved.ID),
				zap.String("club_id", snapshot.ID),
				zap.Error(err))

			out := &SaveMemberOutput{Member: saved}
			// Best-effort refresh so state reflects what actually persisted
			if refreshed, refreshErr := s.refreshActiveClub(ctx, snapshot.ID, snapshot.ServerID); refreshErr == nil {
				out.Club = refreshed
			}
			return out, &PartialWriteError{
				Completed: StepMemberWrite,
				Failed:    StepShameListWrite,
				Cause:     err,
			}
		}
		shameListUpdated = true
	}

	completed := StepMemberWrite
	if shameListUpdated {
		completed = StepMemberWrite + " and " + StepShameListWrite
	}

	refreshed, err := s.refreshActiveClub(ctx, snapshot.ID, snapshot.ServerID)
	if err != nil {
		return &SaveMemberOutput{
				Member:           saved,
				ShameListUpdated: shameListUpdated,
			}, &PartialWriteError{
				Completed: completed,
				Failed:    StepClubRefresh,
				Cause:     err,
			}
	}

	return &SaveMemberOutput{
		Member:           saved,
		Club:             refreshed,
		ShameListUpdated: shameListUpdated,
	}, nil
}

// rewriteShameList builds the full replacement shame list: the current set
// without the member, plus the member appended once when they should be on
// it. Filtering first keeps the set free of duplicates even if the stored
// list already carried one.
func rewriteShameList(current []int, memberID int, include bool) []int {
	updated := make([]int, 0, len(current)+1)
	for _, id := range current {
		if id == memberID {
			continue
		}
		updated = append(updated, id)
	}
	if include {
		updated = append(updated, memberID)
	}
	return updated
}
