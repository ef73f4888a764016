package consts

import "errors"

const (
	TotalCards      = 108
	InitialHandSize = 7
	DefaultPlayers  = 4

	MinPlayers = 2
	MaxPlayers = 10

	// UnoCards is the hand size at which a player calls out "Uno".
	UnoCards = 1
)

// Strategy names accepted by configuration.
const (
	StrategyRandom = "random"
	StrategyNaive  = "naive"
	StrategyGood   = "good"
)

const (
	CodeInvariantViolation = 1
	CodeGameInterrupted    = 2
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsOverdraw           = NewErr(CodeInvariantViolation, true, "Not enough cards in deck and pile. ")
	ErrorsEmptyPile          = NewErr(CodeInvariantViolation, true, "Pile is empty. ")
	ErrorsUncoloredWild      = NewErr(CodeInvariantViolation, true, "Wild card discarded without a color. ")
	ErrorsUncoloredTop       = NewErr(CodeInvariantViolation, true, "Top card has no color. ")
	ErrorsNoCandidates       = NewErr(CodeInvariantViolation, true, "No candidate cards. ")
	ErrorsIllegalSelection   = NewErr(CodeInvariantViolation, true, "Selected card is not in the legal set. ")
	ErrorsCardNotInHand      = NewErr(CodeInvariantViolation, true, "Card is not in hand. ")
	ErrorsCardsNotConserved  = NewErr(CodeInvariantViolation, true, "Card count is not conserved. ")
	ErrorsInvalidPlayerCount = NewErr(CodeInvariantViolation, true, "Player count invalid. ")
	ErrorsInvalidHandSize    = NewErr(CodeInvariantViolation, true, "Hand size invalid. ")
	ErrorsTurnLimit          = NewErr(CodeGameInterrupted, false, "Turn limit reached. ")
)

// IsInvariantViolation reports whether err carries a fatal consts.Error.
func IsInvariantViolation(err error) bool {
	var e Error
	return errors.As(err, &e) && e.Exit && e.Code == CodeInvariantViolation
}
