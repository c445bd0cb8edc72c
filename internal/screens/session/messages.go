package session

// startedMsg is sent when the controller has loaded its batch.
type startedMsg struct {
	Err error
}

// timerTickMsg is sent every second while a timed question is open.
// Ticks carrying an old token belong to an earlier question and are dropped.
type timerTickMsg struct {
	token int
}
