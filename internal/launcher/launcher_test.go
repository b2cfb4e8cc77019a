package launcher_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/sodamelon/kanban/internal/launcher"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperEnv = "KANBAN_LAUNCHER_HELPER"

// TestHelperProcess is not a real test. It is the child server spawned by
// the launcher tests.
func TestHelperProcess(t *testing.T) {
	mode := os.Getenv(helperEnv)
	if mode == "" {
		return
	}

	if mode == "crash" {
		os.Exit(3)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(launcher.HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := &http.Server{
		Addr:    net.JoinHostPort(os.Getenv("SERVER_HOST"), os.Getenv("SERVER_PORT")),
		Handler: mux,
	}
	go srv.ListenAndServe()

	if mode == "stubborn" {
		signal.Ignore(syscall.SIGTERM)
		time.Sleep(time.Hour)
	}
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM)
	<-quit
	os.Exit(0)
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}

func newHelper(t *testing.T, mode string) (*launcher.Launcher, *test.Hook) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("signals are not supported on windows")
	}
	logger, hook := test.NewNullLogger()
	l := launcher.New(launcher.Options{
		Bin:          os.Args[0],
		Args:         []string{"-test.run=^TestHelperProcess$"},
		Env:          []string{helperEnv + "=" + mode},
		Port:         freePort(t),
		PollInterval: 20 * time.Millisecond,
		MaxAttempts:  150,
		Grace:        200 * time.Millisecond,
	}, logrus.NewEntry(logger))
	return l, hook
}

func TestPoll_ReadyAfterRetries(t *testing.T) {
	// Arrange
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	// Act
	err := launcher.Poll(context.Background(), srv.Client(), srv.URL+launcher.HealthPath, time.Millisecond, 5, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestPoll_GivesUp(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := launcher.Poll(context.Background(), srv.Client(), srv.URL, time.Millisecond, 4, nil)

	assert.ErrorIs(t, err, launcher.ErrNotReady)
	assert.Equal(t, int32(4), calls.Load())
}

func TestPoll_UnreachableServer(t *testing.T) {
	client := &http.Client{Timeout: 100 * time.Millisecond}

	err := launcher.Poll(context.Background(), client, "http://127.0.0.1:1/api/healthz", time.Millisecond, 2, nil)

	assert.ErrorIs(t, err, launcher.ErrNotReady)
}

func TestPoll_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &http.Client{Timeout: 100 * time.Millisecond}

	err := launcher.Poll(ctx, client, "http://127.0.0.1:1/api/healthz", time.Hour, 30, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPoll_ProcessExited(t *testing.T) {
	exited := make(chan struct{})
	close(exited)
	client := &http.Client{Timeout: 100 * time.Millisecond}

	err := launcher.Poll(context.Background(), client, "http://127.0.0.1:1/api/healthz", time.Hour, 30, exited)

	assert.ErrorIs(t, err, launcher.ErrExited)
}

func TestLauncher_StartReadyStop(t *testing.T) {
	l, _ := newHelper(t, "serve")
	ctx := context.Background()

	require.NoError(t, l.Start(ctx))
	require.NoError(t, l.WaitReady(ctx))

	l.Stop()

	select {
	case <-l.Done():
	default:
		t.Fatal("process still running after Stop")
	}
}

func TestLauncher_StopKillsAfterGrace(t *testing.T) {
	l, _ := newHelper(t, "stubborn")
	ctx := context.Background()
	require.NoError(t, l.Start(ctx))
	require.NoError(t, l.WaitReady(ctx))

	start := time.Now()
	l.Stop()

	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
	assert.Error(t, l.Err())
}

func TestLauncher_StartTwice(t *testing.T) {
	l, _ := newHelper(t, "serve")
	ctx := context.Background()
	require.NoError(t, l.Start(ctx))
	defer l.Stop()

	assert.Error(t, l.Start(ctx))
}

func TestLauncher_MissingBinary(t *testing.T) {
	l := launcher.New(launcher.Options{Bin: "/nonexistent/kanban-server"}, nil)

	err := l.Start(context.Background())

	assert.Error(t, err)
	l.Stop()
}

func TestLauncher_RunReportsCrash(t *testing.T) {
	l, _ := newHelper(t, "crash")

	err := l.Run(context.Background(), func(string) {
		t.Error("crashed server reported ready")
	})

	assert.True(t, errors.Is(err, launcher.ErrExited) || errors.Is(err, launcher.ErrNotReady))
}

func TestLauncher_RunUntilCancelled(t *testing.T) {
	l, hook := newHelper(t, "serve")
	ctx, cancel := context.WithCancel(context.Background())

	var readyURL string
	err := l.Run(ctx, func(url string) {
		readyURL = url
		cancel()
	})

	require.NoError(t, err)
	assert.Equal(t, l.URL(), readyURL)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "Server process exited")
}
