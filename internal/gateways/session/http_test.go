package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ivangarzab/bookclub-admin/internal/models"
)

type HTTPGatewayTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *HTTPGatewayTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func TestHTTPGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(HTTPGatewayTestSuite))
}

func (s *HTTPGatewayTestSuite) newGateway(handler http.HandlerFunc) Gateway {
	srv := httptest.NewServer(handler)
	s.T().Cleanup(srv.Close)

	gw, err := NewHTTP(&Config{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	s.Require().NoError(err)
	return gw
}

func (s *HTTPGatewayTestSuite) TestCreateSession() {
	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	gw := s.newGateway(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/session", r.URL.Path)

		var body map[string]any
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("club-1", body["club_id"])

		book, ok := body["book"].(map[string]any)
		s.Require().True(ok)
		s.Equal("Dune", book["title"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Session{
			ID:      "session-1",
			Book:    models.Book{Title: "Dune", Author: "Frank Herbert"},
			DueDate: due,
		})
	})

	sess, err := gw.CreateSession(s.ctx, &CreateSessionInput{
		ClubID:  "club-1",
		Book:    models.Book{Title: "Dune", Author: "Frank Herbert"},
		DueDate: due,
	})
	s.Require().NoError(err)
	s.Equal("session-1", sess.ID)
	s.True(sess.DueDate.Equal(due))
}

func (s *HTTPGatewayTestSuite) TestUpdateSessionOmitsUnchangedFields() {
	gw := s.newGateway(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPut, r.Method)

		var body map[string]any
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("session-1", body["id"])
		s.NotContains(body, "book")
		s.NotContains(body, "due_date")
		s.NotContains(body, "discussions")

		json.NewEncoder(w).Encode(models.Session{ID: "session-1"})
	})

	_, err := gw.UpdateSession(s.ctx, &UpdateSessionInput{SessionID: "session-1"})
	s.Require().NoError(err)
}

func (s *HTTPGatewayTestSuite) TestUpdateSessionSendsEmptyDiscussionArray() {
	gw := s.newGateway(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))

		// Removing the last discussion must arrive as an explicit empty
		// array together with the IDs being deleted
		raw, ok := body["discussions"]
		s.Require().True(ok)
		s.Equal([]any{}, raw)
		s.Equal([]any{"disc-1"}, body["discussion_ids_to_delete"])

		json.NewEncoder(w).Encode(models.Session{ID: "session-1", Discussions: []models.Discussion{}})
	})

	sess, err := gw.UpdateSession(s.ctx, &UpdateSessionInput{
		SessionID:             "session-1",
		Discussions:           []models.Discussion{},
		DiscussionIDsToDelete: []string{"disc-1"},
	})
	s.Require().NoError(err)
	s.Empty(sess.Discussions)
}

func (s *HTTPGatewayTestSuite) TestUpdateSessionUnexpectedStatus() {
	gw := s.newGateway(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "session gone", http.StatusConflict)
	})

	_, err := gw.UpdateSession(s.ctx, &UpdateSessionInput{SessionID: "session-1"})
	s.Require().Error(err)
	s.Contains(err.Error(), "409")
	s.Contains(err.Error(), "session gone")
}
