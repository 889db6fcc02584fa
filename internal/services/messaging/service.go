package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/wheelrift/internal/common/random"
	"github.com/KirkDiggler/wheelrift/internal/models"
)

// service implements the Service interface
type service struct {
	roller random.Roller
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Roller == nil {
		return nil, errors.New("roller cannot be nil")
	}

	return &service{roller: cfg.Roller}, nil
}

func (s *service) pick(messages []string) string {
	return messages[random.Index(s.roller, len(messages))]
}

// GetWedgeMessage announces where the wheel landed
func (s *service) GetWedgeMessage(ctx context.Context, input *GetWedgeMessageInput) (*GetWedgeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName
	var messages []string
	tone := ToneNeutral

	switch {
	case input.Negated:
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("%s's ice shield shatters and soaks up the %s!", name, input.Wedge.Label),
			fmt.Sprintf("Frozen solid! The %s bounces right off %s.", input.Wedge.Label, name),
			fmt.Sprintf("Not today! %s's shield cracks, but the bank is safe.", name),
		}
	case input.Wedge.Kind == models.WedgeKindBankrupt:
		tone = ToneSarcastic
		messages = []string{
			fmt.Sprintf("BANKRUPT! %s, your round bank just evaporated.", name),
			fmt.Sprintf("Oof. %s hits BANKRUPT. Easy come, easy go.", name),
			fmt.Sprintf("The wheel giveth and the wheel taketh away. Sorry, %s.", name),
		}
	case input.Wedge.Kind == models.WedgeKindLoseTurn:
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("LOSE A TURN! %s, take a seat.", name),
			fmt.Sprintf("%s spins straight into a nap. Lose a turn!", name),
			fmt.Sprintf("Tough break, %s. The wheel says sit this one out.", name),
		}
	case input.Wedge.IsRift():
		tone = ToneCelebration
		messages = []string{
			fmt.Sprintf("The RIFT tears open for %s! Make words, fast!", name),
			fmt.Sprintf("%s lands on the RIFT. Letters are spilling out!", name),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s lands on %s. Call a consonant!", name, input.Wedge.Label),
			fmt.Sprintf("%s for %s! Pick a consonant.", input.Wedge.Label, name),
			fmt.Sprintf("The wheel stops on %s. Your letter, %s?", input.Wedge.Label, name),
		}
	}

	return &GetWedgeMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetComboMessage announces an elemental combo
func (s *service) GetComboMessage(ctx context.Context, input *GetComboMessageInput) (*GetComboMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName
	var messages []string

	switch input.Element {
	case models.ElementFire:
		messages = []string{
			fmt.Sprintf("%s is on FIRE! The next vowel is coming for free.", name),
			fmt.Sprintf("Fire x%d! %s's next hit lights up a vowel.", input.ComboCount, name),
		}
	case models.ElementIce:
		messages = []string{
			fmt.Sprintf("Ice x%d! %s grows a shield against the next hazard.", input.ComboCount, name),
			fmt.Sprintf("%s freezes over. The next hazard will bounce off.", name),
		}
	case models.ElementLightning:
		messages = []string{
			fmt.Sprintf("Lightning x%d! A bolt strikes the board for %s.", input.ComboCount, name),
			fmt.Sprintf("%s crackles with power. A consonant is about to light up!", name),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s builds a combo!", name),
		}
	}

	return &GetComboMessageOutput{
		Message: s.pick(messages),
		Tone:    ToneCelebration,
	}, nil
}

// GetLetterResultMessage reacts to a letter pick
func (s *service) GetLetterResultMessage(ctx context.Context, input *GetLetterResultMessageInput) (*GetLetterResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName
	letter := string(input.Letter)
	var messages []string
	var tone MessageTone

	switch {
	case input.Count == 0:
		tone = ToneSarcastic
		messages = []string{
			fmt.Sprintf("No %s. Sorry, %s.", letter, name),
			fmt.Sprintf("The board has no %s for you, %s.", letter, name),
			fmt.Sprintf("Not a single %s. Bold choice, %s.", letter, name),
		}
	case input.Amount > 0:
		tone = ToneEncouraging
		messages = []string{
			fmt.Sprintf("%d %s! That's $%d for %s.", input.Count, plural(letter, input.Count), input.Amount, name),
			fmt.Sprintf("Yes! %s finds %d %s and banks $%d.", name, input.Count, plural(letter, input.Count), input.Amount),
		}
	default:
		tone = ToneEncouraging
		messages = []string{
			fmt.Sprintf("%d %s on the board, %s.", input.Count, plural(letter, input.Count), name),
			fmt.Sprintf("There %s %d %s. Nice pick, %s.", isAre(input.Count), input.Count, plural(letter, input.Count), name),
		}
	}

	return &GetLetterResultMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetTurnMessage announces whose turn it is and why
func (s *service) GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName
	var messages []string
	tone := ToneNeutral

	switch input.Reason {
	case TurnReasonStart:
		messages = []string{
			fmt.Sprintf("Welcome to the wheel! %s, you're up first.", name),
			fmt.Sprintf("A fresh puzzle! %s spins first.", name),
		}
	case TurnReasonMiss:
		messages = []string{
			fmt.Sprintf("Over to you, %s.", name),
			fmt.Sprintf("%s, the wheel is yours.", name),
		}
	case TurnReasonHazard:
		tone = ToneFunny
		messages = []string{
			fmt.Sprintf("%s's misfortune is %s's opportunity.", input.PreviousName, name),
			fmt.Sprintf("Let's move on quickly. %s, spin!", name),
		}
	case TurnReasonWrongSolve:
		tone = ToneSarcastic
		messages = []string{
			fmt.Sprintf("That's not it, %s. %s, your turn.", input.PreviousName, name),
			fmt.Sprintf("Close, but no. Over to %s.", name),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s passes. %s, you're up.", input.PreviousName, name),
			fmt.Sprintf("Next up, %s.", name),
		}
	}

	return &GetTurnMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetSolveMessage reacts to a solve attempt
func (s *service) GetSolveMessage(ctx context.Context, input *GetSolveMessageInput) (*GetSolveMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName
	if !input.Correct {
		messages := []string{
			fmt.Sprintf("Sorry %s, that's not the answer.", name),
			fmt.Sprintf("Ooh, not quite, %s.", name),
			fmt.Sprintf("The board disagrees with you, %s.", name),
		}
		return &GetSolveMessageOutput{
			Message: s.pick(messages),
			Tone:    ToneSarcastic,
		}, nil
	}

	messages := []string{
		fmt.Sprintf("%s solves it and banks $%d!", name, input.Amount),
		fmt.Sprintf("That's it! $%d goes home with %s.", input.Amount, name),
		fmt.Sprintf("Brilliant, %s! $%d banked.", name, input.Amount),
	}

	return &GetSolveMessageOutput{
		Message: s.pick(messages),
		Tone:    ToneCelebration,
	}, nil
}

// GetRiftMessage announces the rift opening or closing
func (s *service) GetRiftMessage(ctx context.Context, input *GetRiftMessageInput) (*GetRiftMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName
	var messages []string
	tone := ToneCelebration

	switch input.Stage {
	case RiftStageOpen:
		messages = []string{
			fmt.Sprintf("The Anagram Rift opens! %s, build words from the pool.", name),
			fmt.Sprintf("Rift time, %s! Every word counts.", name),
		}
	case RiftStageRejected:
		tone = ToneSarcastic
		messages = []string{
			"The rift fizzles. Not enough letters on the board yet.",
			fmt.Sprintf("The rift sputters shut. Carry on, %s.", name),
		}
	default:
		if input.Score == 0 {
			tone = ToneSarcastic
			messages = []string{
				fmt.Sprintf("The rift closes. Nothing for %s this time.", name),
				fmt.Sprintf("Zero words, %s? The rift is unimpressed.", name),
			}
		} else {
			messages = []string{
				fmt.Sprintf("The rift closes! %s found %d %s.", name, input.Score, plural("word", input.Score)),
				fmt.Sprintf("%d %s from %s. The rift pays out!", input.Score, plural("word", input.Score), name),
			}
		}
	}

	return &GetRiftMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetGameEndMessage crowns the winner
func (s *service) GetGameEndMessage(ctx context.Context, input *GetGameEndMessageInput) (*GetGameEndMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		fmt.Sprintf("Game over! %s takes it with $%d.", input.WinnerName, input.Amount),
		fmt.Sprintf("And the champion is %s, with $%d!", input.WinnerName, input.Amount),
		fmt.Sprintf("%s spins their way to victory. $%d!", input.WinnerName, input.Amount),
	}

	return &GetGameEndMessageOutput{
		Message: s.pick(messages),
		Tone:    ToneCelebration,
	}, nil
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func isAre(n int) string {
	if n == 1 {
		return "is"
	}
	return "are"
}
