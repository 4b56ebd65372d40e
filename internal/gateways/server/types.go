package server

import "github.com/ivangarzab/bookclub-admin/internal/models"

type ListServersInput struct {
}

type ListServersOutput struct {
	Servers []*models.Server
}
