package tui

import (
	"shoutbox/internal/board"
)

// Fetch results carry the sequence number of the request that produced
// them. Update applies a result only while its number is still the
// newest issued for that operation kind, so a slow response can never
// clobber a later request.
type sentencesLoadedMsg struct {
	seq       int
	sentences []board.Sentence
}

type sentencesErrMsg struct {
	seq int
	err error
}

type usersLoadedMsg struct {
	seq   int
	users []string
}

type usersErrMsg struct {
	seq int
	err error
}

type createDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	id  string
	err error
}

// searchTickMsg fires when a debounce countdown ends. Only the newest
// generation commits; earlier timers are simply ignored when they fire.
type searchTickMsg struct {
	gen int
}

type updateAvailableMsg struct {
	version string
}

type noticeMsg struct {
	level noticeLevel
	text  string
}

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeWarn
	noticeError
)

// notice is the one-line flash shown in place of the status bar until
// the next keypress.
type notice struct {
	level noticeLevel
	text  string
}
