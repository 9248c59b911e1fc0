package main

import (
	"os"

	"github.com/kelechi/studentbase/internal/pkg/logger"
	"github.com/kelechi/studentbase/internal/server"
)

// @title Studentbase API
// @version 1.0
// @description CRUD backend for administering student records and course enrollments

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
}
