// Package cli is a line-oriented terminal front end for the game service.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/wheelrift/internal/models"
	"github.com/KirkDiggler/wheelrift/internal/services/game"
)

// ErrQuit is returned by the quit command to stop Run
var ErrQuit = errors.New("quit")

// Config holds the configuration for the terminal handler
type Config struct {
	GameService game.Service

	In  io.Reader
	Out io.Writer

	// LeaderboardSize is the number of rows the scores command shows
	LeaderboardSize int

	Logger *zerolog.Logger
}

// Handler reads commands from In and renders state changes to Out
type Handler struct {
	game     game.Service
	in       io.Reader
	commands map[string]CommandHandler
	order    []string
	topN     int
	log      zerolog.Logger

	mu       sync.Mutex
	out      io.Writer
	lastView string
	seen     map[string]bool
}

// New creates a terminal handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.In == nil {
		return nil, errors.New("input cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}

	h := &Handler{
		game:     cfg.GameService,
		in:       cfg.In,
		out:      cfg.Out,
		commands: make(map[string]CommandHandler),
		topN:     cfg.LeaderboardSize,
		log:      zerolog.Nop(),
		seen:     make(map[string]bool),
	}
	if h.topN <= 0 {
		h.topN = 5
	}
	if cfg.Logger != nil {
		h.log = cfg.Logger.With().Str("component", "cli").Logger()
	}

	h.registerCommands()
	return h, nil
}

// RegisterCommand adds a command under its name and aliases
func (h *Handler) RegisterCommand(cmd CommandHandler, aliases ...string) {
	h.commands[cmd.GetName()] = cmd
	h.order = append(h.order, cmd.GetName())
	for _, alias := range aliases {
		h.commands[alias] = cmd
	}
}

// Run processes input lines until EOF, the quit command or ctx ends.
// State changes made by other actors are rendered as they happen.
func (h *Handler) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.watch(ctx)
	}()
	defer func() {
		cancel()
		wg.Wait()
	}()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(h.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	h.printf("Type 'help' for commands, 'start' to play.\n")
	h.render(h.game.GetState(), true)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		case line := <-lines:
			if err := h.Execute(ctx, line); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				h.printf("! %v\n", err)
			}
		}
	}
}

// Execute runs one input line
func (h *Handler) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name := strings.ToLower(fields[0])
	cmd, ok := h.commands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try 'help'", name)
	}

	h.log.Debug().Str("command", cmd.GetName()).Strs("args", fields[1:]).Msg("command")
	return cmd.Handle(ctx, fields[1:])
}

func (h *Handler) watch(ctx context.Context) {
	for {
		changed := h.game.Watch()
		h.render(h.game.GetState(), false)
		h.flushNotifications()

		select {
		case <-ctx.Done():
			return
		case <-changed:
		}
	}
}

// render prints the state when its visible parts changed, or always when forced
func (h *Handler) render(state *models.GameState, force bool) {
	view := renderState(state)

	h.mu.Lock()
	defer h.mu.Unlock()
	if !force && view == h.lastView {
		return
	}
	h.lastView = view
	fmt.Fprint(h.out, view)
}

func (h *Handler) flushNotifications() {
	notes := h.game.GetNotifications()

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, n := range notes {
		if h.seen[n.ID] {
			continue
		}
		h.seen[n.ID] = true
		fmt.Fprint(h.out, renderNotification(n))
	}
}

func (h *Handler) printf(format string, args ...any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.out, format, args...)
}

// humanID is the seat this terminal plays
func (h *Handler) humanID() string {
	state := h.game.GetState()
	for _, p := range state.Players {
		if !p.IsAI() {
			return p.ID
		}
	}
	return ""
}

func (h *Handler) help() string {
	names := make([]string, len(h.order))
	copy(names, h.order)
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-8s %s\n", name, h.commands[name].GetUsage())
	}
	return b.String()
}
