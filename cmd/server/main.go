package main

import (
	"context"

	_ "github.com/sodamelon/kanban/docs"
	"github.com/sodamelon/kanban/internal/config"
	"github.com/sodamelon/kanban/internal/server"

	"github.com/sirupsen/logrus"
)

// @title           Kanban API
// @version         1.0
// @description     Personal kanban boards with drag and drop card ordering.

// @host      localhost:3000
// @BasePath  /api

// @schemes http
func main() {
	cfg := config.Load()
	cfg.ConfigureLogger()

	s, err := server.Init(context.Background(), cfg)
	if err != nil {
		logrus.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
