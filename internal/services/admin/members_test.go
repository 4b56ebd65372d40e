package admin

import (
	"errors"

	"go.uber.org/mock/gomock"

	clubGw "github.com/ivangarzab/bookclub-admin/internal/gateways/club"
	memberGw "github.com/ivangarzab/bookclub-admin/internal/gateways/member"
	"github.com/ivangarzab/bookclub-admin/internal/models"
)

func (s *AdminServiceTestSuite) TestSaveMemberCreateWithShame() {
	s.givenActiveClub(s.testClub) // shame_list starts empty

	created := &models.Member{ID: 7, Name: "Pippin", Points: 0, BooksRead: 0, Clubs: []string{s.testClubID}}
	refreshedClub := &models.Club{
		ID:        s.testClubID,
		ServerID:  s.testServerID,
		Members:   append(s.testClub.Members, *created),
		ShameList: []int{7},
	}

	// The member write goes first and carries no shame-list data; the club
	// write follows with the id the create call returned
	memberCall := s.mockMemberGw.EXPECT().
		CreateMember(s.ctx, &memberGw.CreateMemberInput{
			Name:  "Pippin",
			Clubs: []string{s.testClubID},
		}).
		Return(created, nil)
	clubCall := s.mockClubGw.EXPECT().
		UpdateShameList(s.ctx, &clubGw.UpdateShameListInput{
			ClubID:    s.testClubID,
			ServerID:  s.testServerID,
			ShameList: []int{7},
		}).
		Return(refreshedClub, nil).
		After(memberCall)
	s.mockClubGw.EXPECT().
		GetClub(s.ctx, &clubGw.GetClubInput{ClubID: s.testClubID, ServerID: s.testServerID}).
		Return(refreshedClub, nil).
		After(clubCall)

	out, err := s.adminService.SaveMember(s.ctx, &SaveMemberInput{
		Name:        "Pippin",
		OnShameList: true,
	})
	s.Require().NoError(err)
	s.Equal(7, out.Member.ID)
	s.True(out.ShameListUpdated)
	s.Equal([]int{7}, out.Club.ShameList)
}

func (s *AdminServiceTestSuite) TestSaveMemberRemoveFromShameList() {
	club := &models.Club{
		ID:        s.testClubID,
		ServerID:  s.testServerID,
		Members:   []models.Member{{ID: 7, Name: "Frodo", Points: 3, BooksRead: 2}},
		ShameList: []int{7},
	}
	s.givenActiveClub(club)

	updated := &models.Member{ID: 7, Name: "Frodo", Points: 5, BooksRead: 3}
	refreshedClub := &models.Club{
		ID:        s.testClubID,
		ServerID:  s.testServerID,
		Members:   []models.Member{*updated},
		ShameList: []int{},
	}

	memberCall := s.mockMemberGw.EXPECT().
		UpdateMember(s.ctx, &memberGw.UpdateMemberInput{
			MemberID:  7,
			Name:      "Frodo",
			Points:    5,
			BooksRead: 3,
		}).
		Return(updated, nil)
	s.mockClubGw.EXPECT().
		UpdateShameList(s.ctx, &clubGw.UpdateShameListInput{
			ClubID:    s.testClubID,
			ServerID:  s.testServerID,
			ShameList: []int{},
		}).
		Return(refreshedClub, nil).
		After(memberCall)
	s.mockClubGw.EXPECT().
		GetClub(s.ctx, &clubGw.GetClubInput{ClubID: s.testClubID, ServerID: s.testServerID}).
		Return(refreshedClub, nil)

	out, err := s.adminService.SaveMember(s.ctx, &SaveMemberInput{
		MemberID:    7,
		Name:        "Frodo",
		Points:      5,
		BooksRead:   3,
		OnShameList: false,
	})
	s.Require().NoError(err)
	s.True(out.ShameListUpdated)
	s.Empty(out.Club.ShameList)
}

func (s *AdminServiceTestSuite) TestSaveMemberNoopToggleSkipsClubWrite() {
	club := &models.Club{
		ID:        s.testClubID,
		ServerID:  s.testServerID,
		Members:   []models.Member{{ID: 7, Name: "Frodo"}},
		ShameList: []int{7},
	}
	s.givenActiveClub(club)

	updated := &models.Member{ID: 7, Name: "Frodo", Points: 4}

	// Desired state already matches the snapshot: no UpdateShameList call
	// is expected, only the member write and the refetch
	s.mockMemberGw.EXPECT().
		UpdateMember(s.ctx, &memberGw.UpdateMemberInput{
			MemberID: 7,
			Name:     "Frodo",
			Points:   4,
		}).
		Return(updated, nil)
	s.mockClubGw.EXPECT().
		GetClub(s.ctx, &clubGw.GetClubInput{ClubID: s.testClubID, ServerID: s.testServerID}).
		Return(club, nil)

	out, err := s.adminService.SaveMember(s.ctx, &SaveMemberInput{
		MemberID:    7,
		Name:        "Frodo",
		Points:      4,
		OnShameList: true,
	})
	s.Require().NoError(err)
	s.False(out.ShameListUpdated)
}

func (s *AdminServiceTestSuite) TestSaveMemberShameListStaysDeduplicated() {
	// A stored list already carrying a duplicate is rewritten clean
	club := &models.Club{
		ID:        s.testClubID,
		ServerID:  s.testServerID,
		Members:   []models.Member{{ID: 7, Name: "Frodo"}, {ID: 9, Name: "Merry"}},
		ShameList: []int{9},
	}
	s.givenActiveClub(club)

	updated := &models.Member{ID: 7, Name: "Frodo"}

	s.mockMemberGw.EXPECT().
		UpdateMember(s.ctx, gomock.Any()).
		Return(updated, nil)
	s.mockClubGw.EXPECT().
		UpdateShameList(s.ctx, &clubGw.UpdateShameListInput{
			ClubID:    s.testClubID,
			ServerID:  s.testServerID,
			ShameList: []int{9, 7},
		}).
		Return(club, nil)
	s.mockClubGw.EXPECT().
		GetClub(s.ctx, gomock.Any()).
		Return(club, nil)

	_, err := s.adminService.SaveMember(s.ctx, &SaveMemberInput{
		MemberID:    7,
		Name:        "Frodo",
		OnShameList: true,
	})
	s.Require().NoError(err)
}

func (s *AdminServiceTestSuite) TestSaveMemberMemberFailureStopsChain() {
	s.givenActiveClub(s.testClub)

	// The member write fails, so no club write may follow
	s.mockMemberGw.EXPECT().
		CreateMember(s.ctx, gomock.Any()).
		Return(nil, errors.New("member gateway down"))

	out, err := s.adminService.SaveMember(s.ctx, &SaveMemberInput{
		Name:        "Pippin",
		OnShameList: true,
	})
	s.Require().Error(err)
	s.Nil(out)
	s.Contains(err.Error(), "failed to save member")

	var partial *PartialWriteError
	s.False(errors.As(err, &partial), "nothing persisted, so the error must not read as partial")
}

func (s *AdminServiceTestSuite) TestSaveMemberPartialFailureOnShameWrite() {
	s.givenActiveClub(s.testClub)

	created := &models.Member{ID: 7, Name: "Pippin", Clubs: []string{s.testClubID}}
	// Server truth after the failed club write: member exists, no shame entry
	refreshedClub := &models.Club{
		ID:        s.testClubID,
		ServerID:  s.testServerID,
		Members:   append(s.testClub.Members, *created),
		ShameList: []int{},
	}

	s.mockMemberGw.EXPECT().
		CreateMember(s.ctx, gomock.Any()).
		Return(created, nil)
	s.mockClubGw.EXPECT().
		UpdateShameList(s.ctx, gomock.Any()).
		Return(nil, errors.New("club gateway down"))
	s.mockClubGw.EXPECT().
		GetClub(s.ctx, &clubGw.GetClubInput{ClubID: s.testClubID, ServerID: s.testServerID}).
		Return(refreshedClub, nil)

	out, err := s.adminService.SaveMember(s.ctx, &SaveMemberInput{
		Name:        "Pippin",
		OnShameList: true,
	})
	s.Require().Error(err)

	var partial *PartialWriteError
	s.Require().ErrorAs(err, &partial)
	s.Equal(StepMemberWrite, partial.Completed)
	s.Equal(StepShameListWrite, partial.Failed)

	// The persisted half is reported, and the refreshed club shows the
	// member without shame-list membership
	s.Require().NotNil(out)
	s.Equal(7, out.Member.ID)
	s.False(out.ShameListUpdated)
	s.Require().NotNil(out.Club)
	s.Empty(out.Club.ShameList)
}

func (s *AdminServiceTestSuite) TestSaveMemberPartialFailureOnRefresh() {
	s.givenActiveClub(s.testClub)

	created := &models.Member{ID: 7, Name: "Pippin", Clubs: []string{s.testClubID}}

	s.mockMemberGw.EXPECT().
		CreateMember(s.ctx, gomock.Any()).
		Return(created, nil)
	s.mockClubGw.EXPECT().
		UpdateShameList(s.ctx, gomock.Any()).
		Return(s.testClub, nil)
	s.mockClubGw.EXPECT().
		GetClub(s.ctx, gomock.Any()).
		Return(nil, errors.New("gateway unreachable"))

	out, err := s.adminService.SaveMember(s.ctx, &SaveMemberInput{
		Name:        "Pippin",
		OnShameList: true,
	})
	s.Require().Error(err)

	var partial *PartialWriteError
	s.Require().ErrorAs(err, &partial)
	s.Equal(StepClubRefresh, partial.Failed)

	s.Require().NotNil(out)
	s.True(out.ShameListUpdated)
	s.Nil(out.Club)
}

func (s *AdminServiceTestSuite) TestSaveMemberValidation() {
	s.givenActiveClub(s.testClub)

	_, err := s.adminService.SaveMember(s.ctx, &SaveMemberInput{Name: "   "})
	s.ErrorIs(err, ErrEmptyMemberName)

	_, err = s.adminService.SaveMember(s.ctx, &SaveMemberInput{Name: "Pippin", Points: -1})
	s.ErrorIs(err, ErrNegativePoints)

	_, err = s.adminService.SaveMember(s.ctx, &SaveMemberInput{Name: "Pippin", BooksRead: -1})
	s.ErrorIs(err, ErrNegativeBooksRead)
}

func (s *AdminServiceTestSuite) TestSaveMemberRequiresActiveClub() {
	_, err := s.adminService.SaveMember(s.ctx, &SaveMemberInput{Name: "Pippin"})
	s.ErrorIs(err, ErrNoActiveClub)
}
