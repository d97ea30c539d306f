package tui

type state int

const (
	playState state = iota
	errorState
)
