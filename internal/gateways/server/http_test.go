package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
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

func (s *HTTPGatewayTestSuite) TestListServers() {
	gw := s.newGateway(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("/server", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"servers": []map[string]any{
				{"id": "server-1", "name": "The Shire"},
				{"id": "server-2", "name": "Rivendell"},
			},
		})
	})

	out, err := gw.ListServers(s.ctx, &ListServersInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Servers, 2)
	s.Equal("server-1", out.Servers[0].ID)
	s.Equal("Rivendell", out.Servers[1].Name)
}

func (s *HTTPGatewayTestSuite) TestListServersEmpty() {
	gw := s.newGateway(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"servers": []any{}})
	})

	out, err := gw.ListServers(s.ctx, &ListServersInput{})
	s.Require().NoError(err)
	s.Empty(out.Servers)
}

func (s *HTTPGatewayTestSuite) TestListServersUnexpectedStatus() {
	gw := s.newGateway(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	})

	_, err := gw.ListServers(s.ctx, &ListServersInput{})
	s.Require().Error(err)
	s.Contains(err.Error(), "502")
}
