package mode

import (
	"errors"
	"testing"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
)

func TestLookup_CaseInsensitive(t *testing.T) {
	table := Defaults()

	for _, id := range []string{"survival", "SURVIVAL", "Survival", "rapid_fire", "Rapid Fire", "rapid-fire"} {
		c, err := table.Lookup(id)
		if err != nil {
			t.Errorf("Lookup(%q): %v", id, err)
			continue
		}
		if c.ID == "" {
			t.Errorf("Lookup(%q) returned empty config", id)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Defaults().Lookup("blitz")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestLookup_NameCollisionIsDeterministic(t *testing.T) {
	table := Defaults()
	// Both display names normalize to SPEED_RUN.
	table.Put(Config{ID: "ZZ_SPEED", Name: "Speed Run", QuestionsCount: 5, Difficulty: Mixed, Subjects: DefaultSubjects})
	table.Put(Config{ID: "AA_SPEED", Name: "speed-run", QuestionsCount: 5, Difficulty: Mixed, Subjects: DefaultSubjects})

	for range 20 {
		c, err := table.Lookup("speed run")
		if err != nil {
			t.Fatalf("Lookup: %v", err)
		}
		if c.ID != "AA_SPEED" {
			t.Fatalf("Lookup(speed run) = %s, want AA_SPEED", c.ID)
		}
	}

	c, err := table.Lookup("zz-speed")
	if err != nil || c.ID != "ZZ_SPEED" {
		t.Errorf("Lookup(zz-speed) = %s, %v; an id match must win", c.ID, err)
	}
}

func TestDefaults(t *testing.T) {
	table := Defaults()

	tests := []struct {
		id        string
		questions int
		limit     int
		policy    PolicyKind
		endsWrong bool
	}{
		{"RAPID_FIRE", 20, 30, PolicyMixed, false},
		{"SURVIVAL", 100, 45, PolicyAuto, true},
		{"MARATHON", 50, 60, PolicyMixed, false},
	}

	for _, tt := range tests {
		c, err := table.Lookup(tt.id)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", tt.id, err)
		}
		if c.QuestionsCount != tt.questions {
			t.Errorf("%s QuestionsCount = %d, want %d", tt.id, c.QuestionsCount, tt.questions)
		}
		if c.TimeLimitSeconds != tt.limit {
			t.Errorf("%s TimeLimitSeconds = %d, want %d", tt.id, c.TimeLimitSeconds, tt.limit)
		}
		if c.Difficulty.Kind != tt.policy {
			t.Errorf("%s policy = %s, want %s", tt.id, c.Difficulty.Kind, tt.policy)
		}
		if c.EndsOnWrongAnswer != tt.endsWrong {
			t.Errorf("%s EndsOnWrongAnswer = %v, want %v", tt.id, c.EndsOnWrongAnswer, tt.endsWrong)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("%s Validate: %v", tt.id, err)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	table := Defaults()
	c, _ := table.Lookup("MARATHON")
	c.Subjects[0] = "Astrology"

	again, _ := table.Lookup("MARATHON")
	if again.Subjects[0] != "Mathematics" {
		t.Errorf("table entry mutated through lookup result: %v", again.Subjects)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPolicy
	}{
		{"Mixed", Mixed},
		{"", Mixed},
		{"auto", Auto},
		{"Hard", Fixed(question.Hard)},
	}
	for _, tt := range tests {
		got, err := ParsePolicy(tt.in)
		if err != nil {
			t.Errorf("ParsePolicy(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePolicy(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if _, err := ParsePolicy("Impossible"); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestValidate(t *testing.T) {
	bad := []Config{
		{ID: "A", QuestionsCount: 0, Subjects: []string{"x"}},
		{ID: "B", QuestionsCount: 1, TimeLimitSeconds: -1, Subjects: []string{"x"}},
		{ID: "C", QuestionsCount: 1},
		{ID: "D", QuestionsCount: 1, Subjects: []string{"x"}, Difficulty: Fixed("Trivial")},
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("Validate(%s) = nil, want error", c.ID)
		}
	}
}
