package console

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/OmkarBelote/Ai-Aptitude-game/internal/session"
)

// WriteSummary prints the results of one session.
func WriteSummary(w io.Writer, s *session.Summary) {
	fmt.Fprintf(w, "Session %s (%s)\n", s.ID, s.GameMode)
	fmt.Fprintf(w, "Score: %d   Accuracy: %.1f%% (%d/%d)   Best streak: %d\n",
		s.Score, s.Accuracy, s.CorrectAnswers, s.TotalQuestions, s.BestStreak)
	if s.Timeouts > 0 {
		fmt.Fprintf(w, "Timeouts: %d\n", s.Timeouts)
	}
	if s.Duration > 0 {
		fmt.Fprintf(w, "Duration: %s\n", s.Duration.Round(time.Second))
	}

	if len(s.Subjects) > 0 {
		fmt.Fprintln(w)
		writeSubjects(w, s.Subjects, true)
	}

	if len(s.Difficulty) > 0 {
		fmt.Fprint(w, "\nDifficulty:")
		for _, d := range s.Difficulty {
			fmt.Fprintf(w, " %s×%d", d.Level, d.Count)
		}
		fmt.Fprintln(w)
	}
}

func writeSubjects(w io.Writer, subjects []session.SubjectResult, points bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if points {
		fmt.Fprintln(tw, "SUBJECT\tCORRECT\tACCURACY\tPOINTS")
	} else {
		fmt.Fprintln(tw, "SUBJECT\tCORRECT\tACCURACY")
	}
	for _, sub := range subjects {
		row := fmt.Sprintf("%s\t%d/%d\t%.1f%%", sub.Subject, sub.Correct, sub.Total, sub.Accuracy)
		if points {
			row += fmt.Sprintf("\t%d", sub.Points)
		}
		fmt.Fprintln(tw, row)
		for _, t := range sub.Topics {
			fmt.Fprintf(tw, "  %s\t%d/%d\t%.1f%%\n", t.Topic, t.Correct, t.Total, t.Accuracy)
		}
	}
	tw.Flush()
}

// WriteHistory prints one line per session in the given order.
func WriteHistory(w io.Writer, recs []*session.Record) {
	if len(recs) == 0 {
		fmt.Fprintln(w, "No sessions played yet.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tMODE\tSCORE\tCORRECT\tACCURACY")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d/%d\t%.1f%%\n",
			r.ID, r.StartTime.Local().Format("2006-01-02 15:04"), r.GameMode,
			r.Score, r.CorrectAnswers, r.TotalQuestions, r.Accuracy)
	}
	tw.Flush()
}

// WriteStats prints lifetime statistics.
func WriteStats(w io.Writer, h *session.HistoryStats) {
	if h.Sessions == 0 {
		fmt.Fprintln(w, "No sessions played yet.")
		return
	}
	fmt.Fprintf(w, "Sessions: %d   Questions: %d   Accuracy: %.1f%%\n", h.Sessions, h.TotalQuestions, h.Accuracy)
	fmt.Fprintf(w, "Total score: %d   Best score: %d   Best streak: %d\n\n", h.TotalScore, h.BestScore, h.BestStreak)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tSESSIONS\tBEST\tAVG SCORE\tAVG ACCURACY")
	for _, m := range h.Modes {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f\t%.1f%%\n", m.Mode, m.Sessions, m.BestScore, m.AverageScore, m.AverageAccuracy)
	}
	tw.Flush()

	if len(h.Subjects) > 0 {
		fmt.Fprintln(w)
		writeSubjects(w, h.Subjects, false)
	}
}
