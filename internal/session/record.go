package session

import (
	"time"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/question"
)

// AnswerEvent records the outcome of one question. It is never mutated
// after being appended to a Record.
type AnswerEvent struct {
	Question question.Question `json:"question"`

	// SelectedIndex is the chosen option, -1 when the question timed out.
	SelectedIndex int `json:"selectedIndex"`

	IsCorrect bool `json:"isCorrect"`
	IsTimeout bool `json:"isTimeout"`

	// ResponseTime and TimeLimit are in seconds. TimeLimit is 0 when untimed.
	ResponseTime float64 `json:"responseTime"`
	TimeLimit    float64 `json:"timeLimit"`

	PointsEarned int `json:"pointsEarned"`
}

// TopicStats tracks accuracy for one topic within a subject.
type TopicStats struct {
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// SubjectStats tracks accuracy and points for one subject.
type SubjectStats struct {
	Correct  int                    `json:"correct"`
	Total    int                    `json:"total"`
	Accuracy float64                `json:"accuracy"`
	Points   int                    `json:"points"`
	Topics   map[string]*TopicStats `json:"topics"`
}

// Record is the running and final record of a session.
type Record struct {
	ID        string     `json:"id"`
	GameMode  string     `json:"gameMode"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`

	// Answers is append-only, one entry per answered question.
	Answers []AnswerEvent `json:"answers"`

	Score      int `json:"score"`
	BestStreak int `json:"bestStreak"`

	SubjectBreakdown  map[string]*SubjectStats `json:"subjectBreakdown"`
	DifficultyHistory []question.Difficulty    `json:"difficultyHistory"`

	// Computed at completion.
	TotalQuestions int     `json:"totalQuestions"`
	CorrectAnswers int     `json:"correctAnswers"`
	Accuracy       float64 `json:"accuracy"`
}

// NewRecord creates an empty record with initialized collections.
func NewRecord(id, gameMode string, start time.Time) *Record {
	return &Record{
		ID:                id,
		GameMode:          gameMode,
		StartTime:         start,
		Answers:           []AnswerEvent{},
		SubjectBreakdown:  make(map[string]*SubjectStats),
		DifficultyHistory: []question.Difficulty{},
	}
}

// Completed reports whether the session has an end time.
func (r *Record) Completed() bool {
	return r.EndTime != nil
}

// Duration returns the elapsed time between start and end, or 0 while running.
func (r *Record) Duration() time.Duration {
	if r.EndTime == nil {
		return 0
	}
	return r.EndTime.Sub(r.StartTime)
}

// AnsweredKeys returns the keys of every question in the answer log.
func (r *Record) AnsweredKeys() map[string]bool {
	seen := make(map[string]bool, len(r.Answers))
	for _, a := range r.Answers {
		seen[a.Question.Key()] = true
	}
	return seen
}

// LastAnswer returns the most recent answer, if any.
func (r *Record) LastAnswer() (AnswerEvent, bool) {
	if len(r.Answers) == 0 {
		return AnswerEvent{}, false
	}
	return r.Answers[len(r.Answers)-1], true
}

// Accuracy returns 100*correct/total, or 0 when total is 0.
func Accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(correct) / float64(total)
}

// record appends an answer and updates the subject and topic breakdown.
func (r *Record) record(ev AnswerEvent) {
	r.Answers = append(r.Answers, ev)

	subject := ev.Question.Subject
	sb := r.SubjectBreakdown[subject]
	if sb == nil {
		sb = &SubjectStats{Topics: make(map[string]*TopicStats)}
		r.SubjectBreakdown[subject] = sb
	}
	sb.Total++
	sb.Points += ev.PointsEarned
	if ev.IsCorrect {
		sb.Correct++
	}
	sb.Accuracy = Accuracy(sb.Correct, sb.Total)

	ts := sb.Topics[ev.Question.Topic]
	if ts == nil {
		ts = &TopicStats{}
		sb.Topics[ev.Question.Topic] = ts
	}
	ts.Total++
	if ev.IsCorrect {
		ts.Correct++
	}
	ts.Accuracy = Accuracy(ts.Correct, ts.Total)
}

// finalize computes the completion totals and stamps the end time.
func (r *Record) finalize(end time.Time) {
	correct := 0
	for _, a := range r.Answers {
		if a.IsCorrect {
			correct++
		}
	}
	r.TotalQuestions = len(r.Answers)
	r.CorrectAnswers = correct
	r.Accuracy = Accuracy(correct, r.TotalQuestions)
	r.EndTime = &end
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := *r
	if r.EndTime != nil {
		end := *r.EndTime
		c.EndTime = &end
	}
	c.Answers = make([]AnswerEvent, len(r.Answers))
	for i, a := range r.Answers {
		a.Question = a.Question.Clone()
		c.Answers[i] = a
	}
	c.DifficultyHistory = append([]question.Difficulty{}, r.DifficultyHistory...)
	c.SubjectBreakdown = make(map[string]*SubjectStats, len(r.SubjectBreakdown))
	for name, sb := range r.SubjectBreakdown {
		cp := *sb
		cp.Topics = make(map[string]*TopicStats, len(sb.Topics))
		for topic, ts := range sb.Topics {
			tcp := *ts
			cp.Topics[topic] = &tcp
		}
		c.SubjectBreakdown[name] = &cp
	}
	return &c
}
