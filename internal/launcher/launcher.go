// Package launcher runs the kanban server as a child process for the desktop
// shell and waits until it answers on its health endpoint.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNotReady is returned when the server never answered the health check.
	ErrNotReady = errors.New("server did not become ready")
	// ErrExited is returned when the server process ended while being polled.
	ErrExited = errors.New("server process exited")
)

const HealthPath = "/api/healthz"

type Options struct {
	Bin  string
	Args []string
	Env  []string

	Host string
	Port string

	PollInterval time.Duration
	MaxAttempts  int
	// Grace is how long a stopping server gets between SIGTERM and kill.
	Grace time.Duration

	Client *http.Client
}

func (o Options) withDefaults() Options {
	if o.Host == "" {
		o.Host = "127.0.0.1"
	}
	if o.Port == "" {
		o.Port = "3000"
	}
	if o.PollInterval <= 0 {
		o.PollInterval = time.Second
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 30
	}
	if o.Grace <= 0 {
		o.Grace = 5 * time.Second
	}
	if o.Client == nil {
		o.Client = &http.Client{Timeout: 2 * time.Second}
	}
	return o
}

type Launcher struct {
	opts Options
	log  *logrus.Entry

	mu      sync.Mutex
	cmd     *exec.Cmd
	cancel  context.CancelFunc
	done    chan struct{}
	waitErr error
}

func New(opts Options, log *logrus.Entry) *Launcher {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Launcher{
		opts: opts.withDefaults(),
		log:  log.WithField("component", "launcher"),
	}
}

// URL is the base address the child server listens on.
func (l *Launcher) URL() string {
	return "http://" + net.JoinHostPort(l.opts.Host, l.opts.Port)
}

// Start spawns the server. The process is stopped when ctx ends or Stop is
// called, whichever comes first.
func (l *Launcher) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cmd != nil {
		return errors.New("server already started")
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, l.opts.Bin, l.opts.Args...)
	cmd.Env = append(os.Environ(), "SERVER_HOST="+l.opts.Host, "SERVER_PORT="+l.opts.Port)
	cmd.Env = append(cmd.Env, l.opts.Env...)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = l.opts.Grace

	stdout := l.log.WriterLevel(logrus.InfoLevel)
	stderr := l.log.WriterLevel(logrus.WarnLevel)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		cancel()
		closeAll(stdout, stderr)
		return fmt.Errorf("start %s: %w", l.opts.Bin, err)
	}
	l.log.WithFields(logrus.Fields{"pid": cmd.Process.Pid, "url": l.URL()}).Info("🚀 Server process started")

	l.cmd = cmd
	l.cancel = cancel
	l.done = make(chan struct{})
	go func(done chan struct{}) {
		err := cmd.Wait()
		closeAll(stdout, stderr)
		l.mu.Lock()
		l.waitErr = err
		l.mu.Unlock()
		close(done)
	}(l.done)
	return nil
}

// Done is closed once the server process has exited.
func (l *Launcher) Done() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.done
}

// Err is the exit error of the process once Done is closed.
func (l *Launcher) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.waitErr
}

// WaitReady polls the health endpoint of the started server.
func (l *Launcher) WaitReady(ctx context.Context) error {
	return Poll(ctx, l.opts.Client, l.URL()+HealthPath, l.opts.PollInterval, l.opts.MaxAttempts, l.Done())
}

// Stop sends SIGTERM and kills the process if it is still running after the
// grace period. It returns once the process is gone.
func (l *Launcher) Stop() {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.mu.Unlock()
	if cancel == nil {
		return
	}

	l.log.Info("🛑 Stopping server process...")
	cancel()
	<-done
	l.log.WithField("exit", l.Err()).Info("✅ Server process exited")
}

// Run starts the server, waits until it is ready, calls ready with its URL
// and then blocks until ctx ends or the process exits on its own.
func (l *Launcher) Run(ctx context.Context, ready func(url string)) error {
	if err := l.Start(ctx); err != nil {
		return err
	}
	defer l.Stop()

	if err := l.WaitReady(ctx); err != nil {
		return err
	}
	if ready != nil {
		ready(l.URL())
	}

	select {
	case <-ctx.Done():
		return nil
	case <-l.Done():
		if err := l.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrExited, err)
		}
		return ErrExited
	}
}

// Poll requests url every interval until it answers 200, at most attempts
// times. A close of exited aborts the wait early.
func Poll(ctx context.Context, client *http.Client, url string, interval time.Duration, attempts int, exited <-chan struct{}) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= attempts; attempt++ {
		if ping(ctx, client, url) {
			return nil
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-exited:
			return ErrExited
		case <-ticker.C:
		}
	}
	return fmt.Errorf("%w after %d attempts", ErrNotReady, attempts)
}

func ping(ctx context.Context, client *http.Client, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}

func closeAll(closers ...io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}
