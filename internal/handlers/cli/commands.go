package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/KirkDiggler/wheelrift/internal/services/game"
)

func (h *Handler) registerCommands() {
	h.RegisterCommand(h.command("help", "show this list", func(ctx context.Context, args []string) error {
		h.printf("%s", h.help())
		return nil
	}), "?")

	h.RegisterCommand(h.command("start", "start a new game", func(ctx context.Context, args []string) error {
		_, err := h.game.StartGame(ctx, &game.StartGameInput{})
		return err
	}))

	h.RegisterCommand(h.command("spin", "spin the wheel", func(ctx context.Context, args []string) error {
		_, err := h.game.SpinWheel(ctx, &game.SpinWheelInput{PlayerID: h.humanID()})
		return err
	}), "s")

	h.RegisterCommand(h.command("pick", "pick <letter>: call a consonant, or the vowel you bought", h.pick), "p")

	h.RegisterCommand(h.command("vowel", "vowel [letter]: buy a vowel", func(ctx context.Context, args []string) error {
		if _, err := h.game.BuyVowel(ctx, &game.BuyVowelInput{PlayerID: h.humanID()}); err != nil {
			return err
		}
		if len(args) == 0 {
			return nil
		}
		return h.pick(ctx, args)
	}), "v")

	h.RegisterCommand(h.command("solve", "solve <phrase>: guess the puzzle", func(ctx context.Context, args []string) error {
		out, err := h.game.AttemptSolve(ctx, &game.AttemptSolveInput{
			PlayerID: h.humanID(),
			Guess:    strings.Join(args, " "),
		})
		if err != nil {
			return err
		}
		if out.Correct {
			h.printf("Solved! $%d banked.\n", out.Banked)
		}
		return nil
	}))

	h.RegisterCommand(h.command("pass", "pass the turn", func(ctx context.Context, args []string) error {
		_, err := h.game.PassTurn(ctx, &game.PassTurnInput{PlayerID: h.humanID()})
		return err
	}))

	h.RegisterCommand(h.command("next", "go to the next round", func(ctx context.Context, args []string) error {
		out, err := h.game.NextRound(ctx, &game.NextRoundInput{})
		if err != nil {
			return err
		}
		if out.GameOver && out.Result != nil {
			h.printf("%s", renderResult(out.Result))
		}
		return nil
	}), "n")

	h.RegisterCommand(h.command("restart", "back to the title screen", func(ctx context.Context, args []string) error {
		_, err := h.game.Restart(ctx, &game.RestartInput{})
		return err
	}))

	h.RegisterCommand(h.command("rift", "open the Anagram Rift", func(ctx context.Context, args []string) error {
		out, err := h.game.StartAnagramRift(ctx, &game.StartAnagramRiftInput{PlayerID: h.humanID()})
		if err != nil {
			return err
		}
		if out.Rift != nil {
			h.printf("Rift letters: %s\n", renderPool(out.Rift.Pool))
		}
		return nil
	}))

	h.RegisterCommand(h.command("word", "word <word>: play a word in the rift", func(ctx context.Context, args []string) error {
		if len(args) != 1 {
			return errors.New("usage: word <word>")
		}
		_, err := h.game.SubmitRiftWord(ctx, &game.SubmitRiftWordInput{
			PlayerID: h.humanID(),
			Word:     args[0],
		})
		return err
	}), "w")

	h.RegisterCommand(h.command("end", "close the rift early", func(ctx context.Context, args []string) error {
		out, err := h.game.EndAnagramRift(ctx, &game.EndAnagramRiftInput{PlayerID: h.humanID()})
		if err != nil {
			return err
		}
		h.printf("Rift score: %d\n", out.Score)
		return nil
	}))

	h.RegisterCommand(h.command("board", "show the board", func(ctx context.Context, args []string) error {
		h.render(h.game.GetState(), true)
		return nil
	}), "b")

	h.RegisterCommand(h.command("scores", "show the leaderboard", func(ctx context.Context, args []string) error {
		out, err := h.game.GetLeaderboard(ctx, &game.GetLeaderboardInput{Limit: h.topN})
		if err != nil {
			return err
		}
		h.printf("%s", renderLeaderboard(out.Entries))
		return nil
	}))

	h.RegisterCommand(h.command("quit", "leave the game", func(ctx context.Context, args []string) error {
		return ErrQuit
	}), "q", "exit")
}

func (h *Handler) command(name, usage string, run func(ctx context.Context, args []string) error) CommandHandler {
	return &funcCommand{
		BaseCommand: BaseCommand{Name: name, Usage: usage},
		run:         run,
	}
}

func (h *Handler) pick(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: pick <letter>")
	}

	out, err := h.game.PickLetter(ctx, &game.PickLetterInput{
		PlayerID: h.humanID(),
		Letter:   args[0],
	})
	if err != nil {
		return err
	}
	if out.Count > 0 {
		h.printf("%d %c on the board.\n", out.Count, out.Letter)
	} else {
		h.printf("No %c.\n", out.Letter)
	}
	return nil
}

// Compile-time check that funcCommand implements CommandHandler
var _ CommandHandler = (*funcCommand)(nil)

