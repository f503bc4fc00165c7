package theme

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/SciCalc/backend/internal/providers/math/plot"
	"github.com/GriffinCanCode/SciCalc/backend/internal/shared/types"
)

// PreferenceKey is the stored preference holding the display mode
const PreferenceKey = "mode"

// Mode is the display mode
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts light or dark in any case
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("invalid theme mode: %q (expected light or dark)", s)
	}
}

// Store persists preferences
type Store interface {
	GetPreference(ctx context.Context, key string) (string, error)
	SetPreference(ctx context.Context, key, value string) error
}

// Provider implements theme management
type Provider struct {
	store  Store
	logger *zap.Logger

	// changeMu orders changes with their writes to the store
	changeMu sync.Mutex
	mu       sync.RWMutex
	current  Mode
}

// NewProvider creates a theme provider starting from the stored mode.
// Without a stored mode, or with an unreadable one, the theme is light.
func NewProvider(ctx context.Context, store Store, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Provider{
		store:   store,
		logger:  logger.Named("theme"),
		current: Light,
	}

	if store == nil {
		return p
	}
	raw, err := store.GetPreference(ctx, PreferenceKey)
	if err != nil {
		p.logger.Debug("no stored theme", zap.Error(err))
		return p
	}
	if mode, err := ParseMode(raw); err == nil {
		p.current = mode
	} else {
		p.logger.Warn("ignoring stored theme", zap.String("value", raw))
	}
	return p
}

// Current returns the active mode
func (t *Provider) Current() Mode {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// IsDark reports whether dark mode is active
func (t *Provider) IsDark() bool {
	return t.Current() == Dark
}

// Label is the toggle button text: it names the mode a click switches to
func (t *Provider) Label() string {
	return label(t.Current())
}

// Set changes and persists the mode. The in-memory mode changes even when
// persisting fails; the error is returned so callers can report it.
func (t *Provider) Set(ctx context.Context, mode Mode) error {
	t.changeMu.Lock()
	defer t.changeMu.Unlock()

	t.mu.Lock()
	t.current = mode
	t.mu.Unlock()

	return t.persist(ctx, mode)
}

// Toggle flips between light and dark and returns the new mode
func (t *Provider) Toggle(ctx context.Context) (Mode, error) {
	t.changeMu.Lock()
	defer t.changeMu.Unlock()

	t.mu.Lock()
	next := Dark
	if t.current == Dark {
		next = Light
	}
	t.current = next
	t.mu.Unlock()

	return next, t.persist(ctx, next)
}

func (t *Provider) persist(ctx context.Context, mode Mode) error {
	if t.store == nil {
		return nil
	}
	if err := t.store.SetPreference(ctx, PreferenceKey, string(mode)); err != nil {
		t.logger.Error("failed to persist theme", zap.String("mode", string(mode)), zap.Error(err))
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}

// Definition returns service metadata
func (t *Provider) Definition() types.Service {
	return types.Service{
		ID:          "theme",
		Name:        "Theme Manager",
		Description: "Light and dark display mode",
		Category:    types.CategoryDisplay,
		Capabilities: []string{
			"get",
			"set",
			"toggle",
		},
		Tools: []types.Tool{
			{
				ID:          "theme.current",
				Name:        "Get Current Theme",
				Description: "Get the active mode, toggle label and chart palette",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
			{
				ID:          "theme.set",
				Name:        "Set Theme",
				Description: "Set the active mode",
				Parameters: []types.Parameter{
					{Name: "mode", Type: "string", Description: "light or dark", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "theme.toggle",
				Name:        "Toggle Theme",
				Description: "Switch between light and dark",
				Parameters:  []types.Parameter{},
				Returns:     "object",
			},
		},
	}
}

// Execute runs a theme operation
func (t *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "theme.current":
		return success(describe(t.Current(), true))
	case "theme.set":
		return t.set(ctx, params)
	case "theme.toggle":
		mode, err := t.Toggle(ctx)
		return success(describe(mode, err == nil))
	default:
		return failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (t *Provider) set(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	raw, ok := params["mode"].(string)
	if !ok || raw == "" {
		return failure("mode parameter required")
	}
	mode, err := ParseMode(raw)
	if err != nil {
		return failure(err.Error())
	}

	err = t.Set(ctx, mode)
	return success(describe(mode, err == nil))
}

// Describe returns the public view of a mode
func Describe(mode Mode) map[string]interface{} {
	return describe(mode, true)
}

func describe(mode Mode, persisted bool) map[string]interface{} {
	return map[string]interface{}{
		"mode":      string(mode),
		"dark":      mode == Dark,
		"label":     label(mode),
		"palette":   plot.PaletteFor(mode == Dark),
		"persisted": persisted,
	}
}

func label(mode Mode) string {
	if mode == Dark {
		return "Light Mode"
	}
	return "Dark Mode"
}

// Helper functions
func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

func failure(message string) (*types.Result, error) {
	errMsg := message
	return &types.Result{Success: false, Error: &errMsg}, nil
}
