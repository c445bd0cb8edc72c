package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/mode"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
	"github.com/OmkarBelote/Ai-Aptitude-game/internal/scoring"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// FileConfig represents the settings file. Unset fields keep their defaults.
type FileConfig struct {
	Scoring ScoringConfig         `toml:"scoring" yaml:"scoring"`
	Modes   map[string]ModeConfig `toml:"modes" yaml:"modes"`
	Data    DataConfig            `toml:"data" yaml:"data"`
	Store   StoreConfig           `toml:"store" yaml:"store"`
}

// ScoringConfig overrides scoring constants.
type ScoringConfig struct {
	BaseScore            *int               `toml:"base_score" yaml:"base_score"`
	Multipliers          map[string]float64 `toml:"multipliers" yaml:"multipliers"`
	TimeBonusThreshold   *float64           `toml:"time_bonus_threshold" yaml:"time_bonus_threshold"`
	TimeBonusPoints      *int               `toml:"time_bonus_points" yaml:"time_bonus_points"`
	StreakBonusThreshold *int               `toml:"streak_bonus_threshold" yaml:"streak_bonus_threshold"`
	StreakBonusPoints    *int               `toml:"streak_bonus_points" yaml:"streak_bonus_points"`
}

// ModeConfig overrides a built-in mode or defines a new one.
type ModeConfig struct {
	Name        *string  `toml:"name" yaml:"name"`
	Questions   *int     `toml:"questions" yaml:"questions"`
	TimeLimit   *int     `toml:"time_limit" yaml:"time_limit"`
	Difficulty  *string  `toml:"difficulty" yaml:"difficulty"`
	EndsOnWrong *bool    `toml:"ends_on_wrong" yaml:"ends_on_wrong"`
	Subjects    []string `toml:"subjects" yaml:"subjects"`
	Ordered     *bool    `toml:"ordered" yaml:"ordered"`
}

// DataConfig points at an alternative question bank directory.
type DataConfig struct {
	Dir *string `toml:"dir" yaml:"dir"`
}

// StoreConfig selects where session history is kept.
type StoreConfig struct {
	Backend   *string `toml:"backend" yaml:"backend"`
	Path      *string `toml:"path" yaml:"path"`
	RedisAddr *string `toml:"redis_addr" yaml:"redis_addr"`
	RedisDB   *int    `toml:"redis_db" yaml:"redis_db"`
}

// LoadConfig reads the settings file at path. Files ending in .yaml or .yml
// are YAML, anything else is TOML. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("read config: %w", err)
	}

	var cfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return FileConfig{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// ApplyScoring overlays the [scoring] section onto base.
func (f FileConfig) ApplyScoring(base scoring.Config) (scoring.Config, error) {
	s := f.Scoring
	out := base
	out.Multipliers = make(map[question.Difficulty]float64, len(base.Multipliers))
	for k, v := range base.Multipliers {
		out.Multipliers[k] = v
	}

	if s.BaseScore != nil {
		out.BaseScore = *s.BaseScore
	}
	if s.TimeBonusThreshold != nil {
		out.TimeBonusThreshold = *s.TimeBonusThreshold
	}
	if s.TimeBonusPoints != nil {
		out.TimeBonusPoints = *s.TimeBonusPoints
	}
	if s.StreakBonusThreshold != nil {
		out.StreakBonusThreshold = *s.StreakBonusThreshold
	}
	if s.StreakBonusPoints != nil {
		out.StreakBonusPoints = *s.StreakBonusPoints
	}
	for name, m := range s.Multipliers {
		level, ok := question.ParseDifficulty(name)
		if !ok {
			return scoring.Config{}, fmt.Errorf("scoring: unknown difficulty %q in multipliers", name)
		}
		out.Multipliers[level] = m
	}

	if err := out.Validate(); err != nil {
		return scoring.Config{}, fmt.Errorf("scoring: %w", err)
	}
	return out, nil
}

// ApplyModes overlays the [modes.<id>] sections onto table. Known ids are
// updated field by field; unknown ids define new modes, which need at
// least a question count. New modes default to the built-in subjects.
func (f FileConfig) ApplyModes(table mode.Table) error {
	for id, mc := range f.Modes {
		c, err := table.Lookup(id)
		if err != nil {
			c = mode.Config{
				ID:         mode.NormalizeID(id),
				Name:       id,
				Difficulty: mode.Mixed,
				Subjects:   mode.DefaultSubjects,
			}
		}

		if mc.Name != nil {
			c.Name = *mc.Name
		}
		if mc.Questions != nil {
			c.QuestionsCount = *mc.Questions
		}
		if mc.TimeLimit != nil {
			c.TimeLimitSeconds = *mc.TimeLimit
		}
		if mc.Difficulty != nil {
			p, err := mode.ParsePolicy(*mc.Difficulty)
			if err != nil {
				return fmt.Errorf("modes.%s: %w", id, err)
			}
			c.Difficulty = p
		}
		if mc.EndsOnWrong != nil {
			c.EndsOnWrongAnswer = *mc.EndsOnWrong
		}
		if len(mc.Subjects) > 0 {
			c.Subjects = mc.Subjects
		}
		if mc.Ordered != nil {
			c.Ordered = *mc.Ordered
		}

		if err := c.Validate(); err != nil {
			return fmt.Errorf("modes.%s: %w", id, err)
		}
		table.Put(c)
	}
	return nil
}

// BackendName returns the configured store backend, sqlite by default.
func (s StoreConfig) BackendName() (string, error) {
	if s.Backend == nil || *s.Backend == "" {
		return BackendSQLite, nil
	}
	switch b := strings.ToLower(*s.Backend); b {
	case BackendSQLite, BackendRedis:
		return b, nil
	default:
		return "", fmt.Errorf("store: unknown backend %q: must be sqlite or redis", *s.Backend)
	}
}
