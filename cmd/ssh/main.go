package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/gookit/color"

	"github.com/tomz197/wifihunt/internal/config"
	"github.com/tomz197/wifihunt/internal/draw"
	"github.com/tomz197/wifihunt/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	shutdownTimeout    = 5 * time.Second
)

func main() {
	logger := config.NewLogger(os.Stderr, "wifihunt-ssh")

	// Sessions are remote terminals, whatever this process's stdout is.
	color.ForceColor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, logger); err != nil {
		logger.Error("ssh server", "err", err)
		os.Exit(1)
	}
}

// serve listens until ctx is done, then drains open sessions.
func serve(ctx context.Context, logger *log.Logger) error {
	addr := net.JoinHostPort(
		config.GetEnv("SSH_HOST", defaultHost),
		config.GetEnv("SSH_PORT", defaultPort),
	)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)

	opts := []ssh.Option{
		wish.WithAddress(addr),
		wish.WithMiddleware(
			gameMiddleware(logger),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// Key presses are tiny; don't let Nagle hold them back.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr, "hostKey", hostKeyPath)
		errCh <- s.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// gameMiddleware gives every session a game of its own. Nothing is shared
// between sessions.
func gameMiddleware(logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "WiFi Hunt needs a terminal. Connect with: ssh -t user@host")
				return
			}

			l := logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
			l.Info("session started", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			win := newWindow(pty.Window.Width, pty.Window.Height)
			go func() {
				for w := range winCh {
					win.resize(w.Width, w.Height)
				}
			}()

			err := loop.Run(sess.Context(), bufio.NewReader(sess), sess, loop.Options{
				TermSizeFunc: win.size,
				Logger:       l,
			})
			if err != nil {
				l.Error("session failed", "err", err)
			}
			l.Info("session ended")
			next(sess)
		}
	}
}

// window is the remote terminal size, updated from PTY window-change
// requests while the game reads it every frame.
type window struct {
	mu            sync.RWMutex
	width, height int
}

func newWindow(width, height int) *window {
	return &window{width: width, height: height}
}

func (w *window) resize(width, height int) {
	w.mu.Lock()
	w.width, w.height = width, height
	w.mu.Unlock()
}

func (w *window) size() (int, int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.width, w.height, nil
}

var _ draw.TermSizeFunc = (*window)(nil).size
