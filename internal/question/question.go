package question

import "strings"

// Difficulty is the difficulty level of a question.
type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
	Expert Difficulty = "Expert"
)

// ladder orders the levels from easiest to hardest.
var ladder = []Difficulty{Easy, Medium, Hard, Expert}

// Levels returns all difficulty levels, easiest first.
func Levels() []Difficulty {
	out := make([]Difficulty, len(ladder))
	copy(out, ladder)
	return out
}

// ParseDifficulty resolves a level name case-insensitively.
func ParseDifficulty(s string) (Difficulty, bool) {
	for _, d := range ladder {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, true
		}
	}
	return "", false
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	return d.rank() >= 0
}

func (d Difficulty) rank() int {
	for i, l := range ladder {
		if l == d {
			return i
		}
	}
	return -1
}

// StepUp returns the next harder level, capped at Expert.
// Unknown levels are treated as Easy.
func (d Difficulty) StepUp() Difficulty {
	r := d.rank()
	if r < 0 {
		r = 0
	}
	if r < len(ladder)-1 {
		r++
	}
	return ladder[r]
}

// StepDown returns the next easier level, floored at Easy.
func (d Difficulty) StepDown() Difficulty {
	r := d.rank()
	if r > 0 {
		r--
	} else {
		r = 0
	}
	return ladder[r]
}

// Next returns the target level after an answer at level d.
func (d Difficulty) Next(correct bool) Difficulty {
	if correct {
		return d.StepUp()
	}
	return d.StepDown()
}

// Question is a single multiple-choice question from a subject's bank.
type Question struct {
	// ID is unique within the subject.
	ID string `json:"id"`

	// Subject is stamped by the loader from the bank the question came from.
	Subject string `json:"subject"`

	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`

	// Prompt is the question text shown to the player.
	Prompt string `json:"question"`

	// Options holds at least two choices, one of which equals CorrectAnswer.
	// Only the order may change after load.
	Options []string `json:"options"`

	// CorrectAnswer is the text of the correct option, never its index.
	CorrectAnswer string `json:"correct_answer"`

	Explanation string `json:"explanation,omitempty"`
}

// Key identifies a question across subjects.
func (q Question) Key() string {
	return q.Subject + "/" + q.ID
}

// IsCorrect reports whether the option at index matches the correct answer text.
// Out-of-range indexes are never correct.
func (q Question) IsCorrect(index int) bool {
	if index < 0 || index >= len(q.Options) {
		return false
	}
	return q.Options[index] == q.CorrectAnswer
}

// CorrectIndex returns the position of the correct answer in Options, or -1.
func (q Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

// Clone returns a copy that does not share the Options slice.
func (q Question) Clone() Question {
	c := q
	c.Options = append([]string(nil), q.Options...)
	return c
}
