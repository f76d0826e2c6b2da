package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-save-keeper/internal/adapter"
	"github.com/MKhiriev/go-save-keeper/internal/config"
	"github.com/MKhiriev/go-save-keeper/internal/logger"
	"github.com/MKhiriev/go-save-keeper/internal/service"
	"github.com/MKhiriev/go-save-keeper/internal/workers"
	"github.com/MKhiriev/go-save-keeper/models"
)

var (
	errNoServices = errors.New("client services are not provided")
	errNoAdapter  = errors.New("server adapter is not provided")
)

// App is the console client. One App serves one terminal session; the
// logged-in account and its in-memory game live in the session.
type App struct {
	services     *service.ClientServices
	server       adapter.ServerAdapter
	build        models.AppBuildInfo
	syncInterval time.Duration
	logger       *logger.Logger

	in             *bufio.Scanner
	out            io.Writer
	passwordPrompt PasswordPrompt

	mu      sync.RWMutex
	session session
}

type session struct {
	owner    string
	password string
	game     models.GameState
}

// Option customises an [App].
type Option func(*App)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = bufio.NewScanner(in)
		a.out = out
	}
}

// WithPasswordPrompt sets how passwords are read. A nil prompt reads the
// password as the next input line.
func WithPasswordPrompt(prompt PasswordPrompt) Option {
	return func(a *App) {
		a.passwordPrompt = prompt
	}
}

func NewApp(
	services *service.ClientServices,
	server adapter.ServerAdapter,
	build models.AppBuildInfo,
	cfg config.ClientWorkers,
	logger *logger.Logger,
	opts ...Option,
) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}
	if server == nil {
		return nil, errNoAdapter
	}

	app := &App{
		services:     services,
		server:       server,
		build:        build,
		syncInterval: cfg.SyncInterval,
		logger:       logger,
		in:           bufio.NewScanner(os.Stdin),
		out:          os.Stdout,
		session:      session{game: models.NewGameState()},
	}
	for _, opt := range opts {
		opt(app)
	}

	return app, nil
}

// Run implements [Client]. The progression sync worker runs alongside the
// command loop and is stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	syncWorkers := workers.NewWorkers(
		workers.NewProgressionSyncWorker(a.services.GameService, a.currentOwner, a.syncInterval, a.logger),
	)
	workersDone := make(chan error, 1)
	go func() {
		workersDone <- syncWorkers.Run(ctx)
	}()

	a.printf("save-keeper %s. Type \"help\" for commands.\n", a.build.Info().Version)
	err := a.loop(ctx)

	cancel()
	if workerErr := <-workersDone; workerErr != nil && err == nil {
		err = workerErr
	}

	return err
}

func (a *App) loop(ctx context.Context) error {
	for {
		a.printf("> ")
		line, err := a.readLine(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			a.printf("\n")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if quit := a.execute(ctx, fields[0], fields[1:]); quit {
			return nil
		}
	}
}

// readLine returns the next input line. A blocked read is abandoned when
// ctx is cancelled.
func (a *App) readLine(ctx context.Context) (string, error) {
	type result struct {
		line string
		ok   bool
	}

	lines := make(chan result, 1)
	go func() {
		ok := a.in.Scan()
		lines <- result{line: a.in.Text(), ok: ok}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-lines:
		if r.ok {
			return r.line, nil
		}
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
}

func (a *App) readPassword(ctx context.Context, prompt string) (string, error) {
	if a.passwordPrompt != nil {
		return a.passwordPrompt(prompt)
	}

	a.printf("%s", prompt)
	return a.readLine(ctx)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// currentOwner reports the logged-in username, or "" when logged out.
func (a *App) currentOwner() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session.owner
}

func (a *App) snapshot() session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session
}

func (a *App) setSession(s session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = s
}

func (a *App) setGame(game models.GameState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session.game = game
}
