package main

import (
	"context"
	"os"

	"github.com/yigit/smartmatch/internal/pkg/logger"
	"github.com/yigit/smartmatch/internal/server"
)

// @title SmartMatch API
// @version 1.0
// @description Internship portal with resume intake and AI-ranked recommendations

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Session token issued by /auth/login

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
}
