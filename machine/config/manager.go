package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmfields/galtonbox/machine/engine"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrInvalidPreset  = errors.New("invalid preset")
)

// Mode selects how beans decide their path through the machine.
type Mode string

const (
	ModeLuck  Mode = "luck"
	ModeSkill Mode = "skill"
)

// IsLuck reports whether beans should decide by coin flip.
func (m Mode) IsLuck() bool {
	return m == ModeLuck
}

// Experiment describes one bean machine run loaded from JSON.
type Experiment struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	SlotCount   int    `json:"slot_count"`
	BeanCount   int    `json:"bean_count"`
	Mode        Mode   `json:"mode"`
	// Seed for the shared random source. Zero means seed from the clock.
	Seed int64 `json:"seed,omitempty"`
	// Repeats is how many additional times the experiment is rerun by
	// scooping the beans back up after the first run completes.
	Repeats int  `json:"repeats,omitempty"`
	Debug   bool `json:"debug,omitempty"`
}

// ValidateExperiment validates an experiment preset for correctness.
func ValidateExperiment(exp *Experiment) error {
	if exp.Name == "" {
		return fmt.Errorf("preset validation: name is required")
	}
	if exp.SlotCount < engine.MinSlotCount {
		return fmt.Errorf("preset validation: slot_count must be at least %d, got %d",
			engine.MinSlotCount, exp.SlotCount)
	}
	if exp.BeanCount < 0 {
		return fmt.Errorf("preset validation: bean_count must be non-negative, got %d", exp.BeanCount)
	}
	if exp.Mode != ModeLuck && exp.Mode != ModeSkill {
		return fmt.Errorf("preset validation: mode must be %q or %q, got %q", ModeLuck, ModeSkill, exp.Mode)
	}
	if exp.Repeats < 0 {
		return fmt.Errorf("preset validation: repeats must be non-negative, got %d", exp.Repeats)
	}
	return nil
}

// Manager handles experiment preset loading and caching
type Manager struct {
	presetDir string
	presets   map[string]*Experiment
	mu        sync.RWMutex
}

// NewManager creates a new preset manager rooted at presetDir.
func NewManager(presetDir string) (*Manager, error) {
	if _, err := os.Stat(presetDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("preset directory does not exist: %s", presetDir)
	}

	return &Manager{
		presetDir: presetDir,
		presets:   make(map[string]*Experiment),
	}, nil
}

// Load loads a preset by name, reading it from disk on the first lookup
// and serving it from cache afterwards.
func (m *Manager) Load(name string) (*Experiment, error) {
	m.mu.RLock()
	if exp, exists := m.presets[name]; exists {
		m.mu.RUnlock()
		return exp, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring the write lock
	if exp, exists := m.presets[name]; exists {
		return exp, nil
	}

	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	data, err := os.ReadFile(filepath.Join(m.presetDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var exp Experiment
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("failed to parse preset: %w", err)
	}

	if err := ValidateExperiment(&exp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	m.presets[name] = &exp
	return &exp, nil
}

// List returns every valid preset in the preset directory, sorted by the
// directory's entry order. Invalid presets are skipped.
func (m *Manager) List() ([]*Experiment, error) {
	entries, err := os.ReadDir(m.presetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset directory: %w", err)
	}

	var experiments []*Experiment
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ".json")
		exp, err := m.Load(name)
		if err != nil {
			continue
		}
		experiments = append(experiments, exp)
	}

	return experiments, nil
}
