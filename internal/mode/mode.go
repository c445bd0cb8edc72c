package mode

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
)

// ErrConfigNotFound is returned when a mode id does not resolve.
var ErrConfigNotFound = errors.New("game mode not found")

// PolicyKind selects how question difficulty is chosen.
type PolicyKind string

const (
	PolicyFixed PolicyKind = "fixed"
	PolicyMixed PolicyKind = "mixed"
	PolicyAuto  PolicyKind = "auto"
)

// DifficultyPolicy is one of Fixed(level), Mixed or Auto.
type DifficultyPolicy struct {
	Kind  PolicyKind
	Level question.Difficulty // set only for PolicyFixed
}

// Fixed restricts a session to a single level.
func Fixed(level question.Difficulty) DifficultyPolicy {
	return DifficultyPolicy{Kind: PolicyFixed, Level: level}
}

var (
	// Mixed draws from every level.
	Mixed = DifficultyPolicy{Kind: PolicyMixed}

	// Auto adapts the next question's level to the previous answer.
	Auto = DifficultyPolicy{Kind: PolicyAuto}
)

// ParsePolicy accepts "Mixed", "Auto" or a level name.
func ParsePolicy(s string) (DifficultyPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mixed":
		return Mixed, nil
	case "auto":
		return Auto, nil
	}
	if d, ok := question.ParseDifficulty(s); ok {
		return Fixed(d), nil
	}
	return DifficultyPolicy{}, fmt.Errorf("invalid difficulty %q: must be Mixed, Auto or a level", s)
}

func (p DifficultyPolicy) String() string {
	switch p.Kind {
	case PolicyFixed:
		return string(p.Level)
	case PolicyAuto:
		return "Auto"
	default:
		return "Mixed"
	}
}

// Config describes a game mode. It is immutable once resolved for a session.
type Config struct {
	ID                string
	Name              string
	QuestionsCount    int
	TimeLimitSeconds  int // 0 means untimed
	Difficulty        DifficultyPolicy
	EndsOnWrongAnswer bool
	Subjects          []string

	// Ordered keeps the bank order for Fixed policies instead of shuffling.
	Ordered bool
}

// Timed reports whether questions have a countdown.
func (c Config) Timed() bool {
	return c.TimeLimitSeconds > 0
}

// Validate checks the invariants of a mode definition.
func (c Config) Validate() error {
	if c.QuestionsCount <= 0 {
		return fmt.Errorf("mode %s: questions count must be positive", c.ID)
	}
	if c.TimeLimitSeconds < 0 {
		return fmt.Errorf("mode %s: time limit must not be negative", c.ID)
	}
	if len(c.Subjects) == 0 {
		return fmt.Errorf("mode %s: at least one subject is required", c.ID)
	}
	if c.Difficulty.Kind == PolicyFixed && !c.Difficulty.Level.Valid() {
		return fmt.Errorf("mode %s: unknown level %q", c.ID, c.Difficulty.Level)
	}
	return nil
}

// clone copies the subject list so callers cannot alias the table entry.
func (c Config) clone() Config {
	c.Subjects = append([]string(nil), c.Subjects...)
	return c
}

// DefaultSubjects are the subjects shipped with the embedded question bank.
var DefaultSubjects = []string{
	"Mathematics",
	"Logical Reasoning",
	"Verbal Ability",
	"Quantitative Aptitude",
	"Technical Aptitude",
}

// Table maps normalized mode ids to their configuration.
type Table map[string]Config

// Defaults returns the built-in modes.
func Defaults() Table {
	t := Table{}
	for _, c := range []Config{
		{
			ID:               "RAPID_FIRE",
			Name:             "Rapid Fire",
			QuestionsCount:   20,
			TimeLimitSeconds: 30,
			Difficulty:       Mixed,
			Subjects:         DefaultSubjects,
		},
		{
			ID:                "SURVIVAL",
			Name:              "Survival",
			QuestionsCount:    100,
			TimeLimitSeconds:  45,
			Difficulty:        Auto,
			EndsOnWrongAnswer: true,
			Subjects:          DefaultSubjects,
		},
		{
			ID:               "MARATHON",
			Name:             "Marathon",
			QuestionsCount:   50,
			TimeLimitSeconds: 60,
			Difficulty:       Mixed,
			Subjects:         DefaultSubjects,
		},
	} {
		t.Put(c)
	}
	return t
}

// NormalizeID upper-cases an id and maps spaces and hyphens to underscores.
func NormalizeID(id string) string {
	id = strings.ToUpper(strings.TrimSpace(id))
	return strings.Join(strings.FieldsFunc(id, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	}), "_")
}

// Put adds or replaces a mode. The id is normalized.
func (t Table) Put(c Config) {
	c.ID = NormalizeID(c.ID)
	t[c.ID] = c.clone()
}

// Lookup resolves a mode id or display name case-insensitively. An id
// match wins; among display-name matches the lowest id wins.
func (t Table) Lookup(id string) (Config, error) {
	key := NormalizeID(id)
	if c, ok := t[key]; ok {
		return c.clone(), nil
	}
	for _, c := range t.List() {
		if NormalizeID(c.Name) == key {
			return c, nil
		}
	}
	return Config{}, fmt.Errorf("configuration for game mode %q: %w", id, ErrConfigNotFound)
}

// List returns all modes sorted by id.
func (t Table) List() []Config {
	out := make([]Config, 0, len(t))
	for _, c := range t {
		out = append(out, c.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
