package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidPhase       GameError = "action not allowed right now"
	ErrNotYourTurn        GameError = "not your turn"
	ErrInvalidLetter      GameError = "pick a single letter"
	ErrNotConsonant       GameError = "pick a consonant"
	ErrNotVowel           GameError = "pick a vowel"
	ErrLetterUsed         GameError = "letter already used"
	ErrInsufficientFunds  GameError = "not enough money to buy a vowel"
	ErrNoVowelsLeft       GameError = "no vowels left to buy"
	ErrBadWedgeIndex      GameError = "wedge index out of range"
	ErrEmptyGuess         GameError = "guess cannot be empty"
	ErrPassPending        GameError = "turn is about to pass"
	ErrNilInput           GameError = "input cannot be nil"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilDictionary      GameError = "dictionary cannot be nil"
	ErrNilRoller          GameError = "roller cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
	ErrNilNotifier        GameError = "notification service cannot be nil"
	ErrNilMessenger       GameError = "messaging service cannot be nil"
	ErrNilResultsRepo     GameError = "results repository cannot be nil"
	ErrNoPlayers          GameError = "at least one player is required"
	ErrInvalidTotalRounds GameError = "total rounds must be positive"
)
