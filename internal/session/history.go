package session

import "sort"

// HistoryStats aggregates a list of completed records.
type HistoryStats struct {
	Sessions       int
	TotalQuestions int
	CorrectAnswers int
	Accuracy       float64
	TotalScore     int
	BestScore      int
	BestStreak     int
	Subjects       []SubjectResult
	Modes          []ModeStats
}

// ModeStats summarizes the sessions played in one game mode.
type ModeStats struct {
	Mode            string
	Sessions        int
	BestScore       int
	AverageScore    float64
	AverageAccuracy float64
}

// Aggregate combines records into lifetime statistics. Subject and topic
// accuracy is recomputed from the summed counts.
func Aggregate(recs []*Record) *HistoryStats {
	h := &HistoryStats{}
	subjects := map[string]*SubjectStats{}
	modes := map[string]*ModeStats{}
	accuracySum := map[string]float64{}

	for _, rec := range recs {
		h.Sessions++
		h.TotalQuestions += rec.TotalQuestions
		h.CorrectAnswers += rec.CorrectAnswers
		h.TotalScore += rec.Score
		h.BestScore = max(h.BestScore, rec.Score)
		h.BestStreak = max(h.BestStreak, rec.BestStreak)

		ms := modes[rec.GameMode]
		if ms == nil {
			ms = &ModeStats{Mode: rec.GameMode}
			modes[rec.GameMode] = ms
		}
		ms.Sessions++
		ms.BestScore = max(ms.BestScore, rec.Score)
		ms.AverageScore += float64(rec.Score)
		accuracySum[rec.GameMode] += rec.Accuracy

		for name, sb := range rec.SubjectBreakdown {
			agg := subjects[name]
			if agg == nil {
				agg = &SubjectStats{Topics: map[string]*TopicStats{}}
				subjects[name] = agg
			}
			agg.Correct += sb.Correct
			agg.Total += sb.Total
			agg.Points += sb.Points
			for topic, ts := range sb.Topics {
				at := agg.Topics[topic]
				if at == nil {
					at = &TopicStats{}
					agg.Topics[topic] = at
				}
				at.Correct += ts.Correct
				at.Total += ts.Total
			}
		}
	}
	h.Accuracy = Accuracy(h.CorrectAnswers, h.TotalQuestions)

	for name, sb := range subjects {
		row := SubjectResult{
			Subject:  name,
			Correct:  sb.Correct,
			Total:    sb.Total,
			Accuracy: Accuracy(sb.Correct, sb.Total),
			Points:   sb.Points,
		}
		for topic, ts := range sb.Topics {
			row.Topics = append(row.Topics, TopicResult{
				Topic:    topic,
				Correct:  ts.Correct,
				Total:    ts.Total,
				Accuracy: Accuracy(ts.Correct, ts.Total),
			})
		}
		sort.Slice(row.Topics, func(i, j int) bool { return row.Topics[i].Topic < row.Topics[j].Topic })
		h.Subjects = append(h.Subjects, row)
	}
	sort.Slice(h.Subjects, func(i, j int) bool { return h.Subjects[i].Subject < h.Subjects[j].Subject })

	for mode, ms := range modes {
		ms.AverageScore /= float64(ms.Sessions)
		ms.AverageAccuracy = accuracySum[mode] / float64(ms.Sessions)
		h.Modes = append(h.Modes, *ms)
	}
	sort.Slice(h.Modes, func(i, j int) bool { return h.Modes[i].Mode < h.Modes[j].Mode })
	return h
}

// NewestFirst returns the records ordered by start time, most recent first.
// The input slice is not modified.
func NewestFirst(recs []*Record) []*Record {
	out := append([]*Record(nil), recs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out
}
