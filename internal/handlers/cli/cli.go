// Package cli runs the quiz in a terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/character-forge/internal/domain/character"
	"github.com/KirkDiggler/character-forge/internal/domain/traits"
	dnderr "github.com/KirkDiggler/character-forge/internal/errors"
	"github.com/KirkDiggler/character-forge/internal/services/quiz"
)

// OwnerID owns every session the terminal opens
const OwnerID = "terminal"

var rule = strings.Repeat("=", 60)

// ErrInputClosed is returned when input ends before the quiz does
var ErrInputClosed = errors.New("input closed before the quiz finished")

// RunnerConfig holds the terminal's dependencies
type RunnerConfig struct {
	QuizService quiz.Service
	In          io.Reader
	Out         io.Writer
}

// Runner prompts through the quiz and prints the resulting sheet
type Runner struct {
	quiz quiz.Service
	in   *bufio.Scanner
	out  io.Writer
}

// NewRunner creates a terminal runner
func NewRunner(cfg *RunnerConfig) *Runner {
	if cfg.QuizService == nil {
		panic("quiz service is required")
	}
	return &Runner{
		quiz: cfg.QuizService,
		in:   bufio.NewScanner(cfg.In),
		out:  cfg.Out,
	}
}

// Interactive asks every question, re-prompting on invalid keys, then
// forges and prints the character. A nil seed is drawn from entropy.
func (r *Runner) Interactive(ctx context.Context, seed *int64) (*character.Character, error) {
	fmt.Fprintln(r.out, "\nWelcome to the Baldur's Gate 3 Character Forge!")
	fmt.Fprintln(r.out, "Answer the prompts as your *character* (not yourself) to build unique NPCs or player avatars.")
	fmt.Fprintln(r.out)

	session, err := r.quiz.StartSession(ctx, OwnerID)
	if err != nil {
		return nil, err
	}

	view, err := r.quiz.CurrentQuestion(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	for view != nil {
		fmt.Fprintf(r.out, "Q%d. %s\n", view.Index+1, view.Question.Prompt)
		for _, opt := range view.Question.Options {
			fmt.Fprintf(r.out, "  %s) %s\n", opt.Key, opt.Text)
		}

		view, err = r.ask(ctx, session.ID, view)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(r.out)
	}

	char, err := r.quiz.Finish(ctx, &quiz.FinishInput{SessionID: session.ID, Seed: seed})
	if err != nil {
		return nil, err
	}

	PrintCharacter(r.out, char)
	fmt.Fprintln(r.out, "Save this file or copy the summary to keep your character. Enjoy BG3!")
	return char, nil
}

// ask reads answers until one is accepted and returns the next question
func (r *Runner) ask(ctx context.Context, sessionID string, view *quiz.QuestionView) (*quiz.QuestionView, error) {
	for {
		fmt.Fprint(r.out, "Choose: ")
		if !r.in.Scan() {
			if err := r.in.Err(); err != nil {
				return nil, err
			}
			return nil, ErrInputClosed
		}

		result, err := r.quiz.Answer(ctx, sessionID, r.in.Text())
		if dnderr.IsInvalidOption(err) {
			fmt.Fprintf(r.out, "Invalid option. Pick one of: %s\n", strings.Join(view.Question.Keys(), ", "))
			continue
		}
		if err != nil {
			return nil, err
		}
		return result.Next, nil
	}
}

// Demo answers the quiz at random from seed and prints the result
func (r *Runner) Demo(ctx context.Context, seed *int64) (*character.Character, error) {
	run, err := r.quiz.Demo(ctx, seed)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(r.out, "--- Demo run (seed %d) ---\n", run.Seed)
	PrintCharacter(r.out, run.Character)
	return run.Character, nil
}

// PrintCharacter writes the character sheet
func PrintCharacter(w io.Writer, char *character.Character) {
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "CHARACTER SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, char.Summary)

	fmt.Fprintln(w, "\nStats:")
	for _, t := range traits.All {
		fmt.Fprintf(w, "  %-12s: %+d\n", t, char.Stats[t])
	}

	fmt.Fprintln(w, "\nMechanical tips & roleplay pointers:")
	for _, tip := range char.Tips {
		fmt.Fprintf(w, " - %s\n", tip)
	}

	fmt.Fprintln(w, "\nSuggested roleplay hooks:")
	for _, hook := range char.Hooks {
		fmt.Fprintf(w, " - %s\n", hook)
	}
	fmt.Fprintln(w, rule+"\n")
}
