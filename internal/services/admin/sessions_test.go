package admin

import (
	"errors"

	"go.uber.org/mock/gomock"

	clubGw "github.com/ivangarzab/bookclub-admin/internal/gateways/club"
	sessionGw "github.com/ivangarzab/bookclub-admin/internal/gateways/session"
	"github.com/ivangarzab/bookclub-admin/internal/models"
)

func (s *AdminServiceTestSuite) TestStartSession() {
	club := &models.Club{ID: s.testClubID, Name: "Sci-Fi Circle", ServerID: s.testServerID}
	s.givenActiveClub(club)

	book := models.Book{Title: "Piranesi", Author: "Susanna Clarke"}
	dueDate := s.testTime.AddDate(0, 1, 0)
	created := &models.Session{ID: "session-new", Book: book, DueDate: dueDate}
	refreshedClub := &models.Club{
		ID:            s.testClubID,
		Name:          "Sci-Fi Circle",
		ServerID:      s.testServerID,
		ActiveSession: created,
	}

	sessionCall := s.mockSessionGw.EXPECT().
		CreateSession(s.ctx, &sessionGw.CreateSessionInput{
			ClubID:  s.testClubID,
			Book:    book,
			DueDate: dueDate,
		}).
		Return(created, nil)
	s.mockClubGw.EXPECT().
		GetClub(s.ctx, &clubGw.GetClubInput{ClubID: s.testClubID, ServerID: s.testServerID}).
		Return(refreshedClub, nil).
		After(sessionCall)

	out, err := s.adminService.StartSession(s.ctx, &StartSessionInput{
		Book:    book,
		DueDate: dueDate,
	})
	s.Require().NoError(err)
	s.Equal("session-new", out.Session.ID)
	s.Equal("session-new", out.Club.ActiveSession.ID)
}

func (s *AdminServiceTestSuite) TestStartSessionValidation() {
	club := &models.Club{ID: s.testClubID, ServerID: s.testServerID}
	s.givenActiveClub(club)

	_, err := s.adminService.StartSession(s.ctx, &StartSessionInput{
		Book:    models.Book{Author: "Susanna Clarke"},
		DueDate: s.testTime.AddDate(0, 1, 0),
	})
	s.ErrorIs(err, ErrEmptyBookTitle)

	_, err = s.adminService.StartSession(s.ctx, &StartSessionInput{
		Book:    models.Book{Title: "Piranesi"},
		DueDate: s.testTime.AddDate(0, 1, 0),
	})
	s.ErrorIs(err, ErrEmptyBookAuthor)

	// Past due dates are rejected before any gateway call
	_, err = s.adminService.StartSession(s.ctx, &StartSessionInput{
		Book:    models.Book{Title: "Piranesi", Author: "Susanna Clarke"},
		DueDate: s.testTime.AddDate(0, 0, -1),
	})
	s.ErrorIs(err, ErrPastDueDate)
}

func (s *AdminServiceTestSuite) TestStartSessionRejectsSecondActive() {
	s.givenActiveClub(s.testClub) // already has an active session

	_, err := s.adminService.StartSession(s.ctx, &StartSessionInput{
		Book:    models.Book{Title: "Piranesi", Author: "Susanna Clarke"},
		DueDate: s.testTime.AddDate(0, 1, 0),
	})
	s.ErrorIs(err, ErrActiveSessionExists)
}

func (s *AdminServiceTestSuite) TestStartSessionPartialOnRefreshFailure() {
	club := &models.Club{ID: s.testClubID, ServerID: s.testServerID}
	s.givenActiveClub(club)

	book := models.Book{Title: "Piranesi", Author: "Susanna Clarke"}
	created := &models.Session{ID: "session-new", Book: book}

	s.mockSessionGw.EXPECT().
		CreateSession(s.ctx, gomock.Any()).
		Return(created, nil)
	s.mockClubGw.EXPECT().
		GetClub(s.ctx, gomock.Any()).
		Return(nil, errors.New("gateway unreachable"))

	out, err := s.adminService.StartSession(s.ctx, &StartSessionInput{
		Book:    book,
		DueDate: s.testTime.AddDate(0, 1, 0),
	})
	s.Require().Error(err)

	var partial *PartialWriteError
	s.Require().ErrorAs(err, &partial)
	s.Equal(StepSessionCreate, partial.Completed)
	s.Equal(StepClubRefresh, partial.Failed)

	s.Require().NotNil(out)
	s.Equal("session-new", out.Session.ID)
}
