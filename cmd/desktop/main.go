// Command desktop starts the kanban server in the background and opens the
// board UI in the default browser once the server answers.
package main

import (
	"context"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/sodamelon/kanban/internal/config"
	"github.com/sodamelon/kanban/internal/launcher"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	cfg.ConfigureLogger()
	log := logrus.WithField("app", "desktop")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l := launcher.New(launcher.Options{
		Bin:          cfg.ServerBin,
		Host:         cfg.ServerHost,
		Port:         cfg.ServerPort,
		PollInterval: cfg.LaunchPollInterval,
		MaxAttempts:  cfg.LaunchMaxAttempts,
	}, log)

	err := l.Run(ctx, func(url string) {
		log.WithField("url", url).Info("✅ Kanban is ready")
		if err := openBrowser(url); err != nil {
			log.WithError(err).Warn("could not open a browser, visit the url manually")
		}
	})
	if err != nil {
		log.WithError(err).Error("❌ Kanban server failed")
		os.Exit(1)
	}
}

func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}
