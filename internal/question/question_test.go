package question

import "testing"

func TestDifficultyNext(t *testing.T) {
	tests := []struct {
		from    Difficulty
		correct bool
		want    Difficulty
	}{
		{Easy, true, Medium},
		{Medium, true, Hard},
		{Hard, true, Expert},
		{Expert, true, Expert},
		{Expert, false, Hard},
		{Hard, false, Medium},
		{Medium, false, Easy},
		{Easy, false, Easy},
		{Difficulty("Legendary"), true, Medium},
		{Difficulty("Legendary"), false, Easy},
	}

	for _, tt := range tests {
		got := tt.from.Next(tt.correct)
		if got != tt.want {
			t.Errorf("%s.Next(%v) = %s, want %s", tt.from, tt.correct, got, tt.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	d, ok := ParseDifficulty(" hard ")
	if !ok || d != Hard {
		t.Errorf("ParseDifficulty(hard) = %q, %v; want Hard, true", d, ok)
	}
	if _, ok := ParseDifficulty("Mixed"); ok {
		t.Error("expected Mixed not to parse as a level")
	}
}

func TestQuestionIsCorrect(t *testing.T) {
	q := Question{Options: []string{"3", "4", "5"}, CorrectAnswer: "4"}

	if !q.IsCorrect(1) {
		t.Error("expected index 1 to be correct")
	}
	for _, i := range []int{-1, 0, 2, 3} {
		if q.IsCorrect(i) {
			t.Errorf("IsCorrect(%d) = true, want false", i)
		}
	}
	if q.CorrectIndex() != 1 {
		t.Errorf("CorrectIndex = %d, want 1", q.CorrectIndex())
	}
}

func TestQuestionCloneDoesNotShareOptions(t *testing.T) {
	q := Question{Options: []string{"a", "b"}, CorrectAnswer: "a"}
	c := q.Clone()
	c.Options[0] = "z"
	if q.Options[0] != "a" {
		t.Errorf("original options mutated: %v", q.Options)
	}
}
