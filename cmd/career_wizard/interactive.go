package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/kamau/career-compass/internal/observability"
	"github.com/kamau/career-compass/internal/types"
	"github.com/kamau/career-compass/internal/wizard"
)

// runInteractive drives the wizard through its four steps on the terminal.
// All state lives in the wizard; this loop only collects input and renders.
func runInteractive(ctx context.Context, w *wizard.Wizard, printer *observability.Printer, verbose bool) error {
	for {
		printStepHeader(w)

		switch w.Step() {
		case wizard.StepPersonality:
			if err := stepPersonality(w); err != nil {
				return err
			}
		case wizard.StepScores:
			if err := stepScores(w); err != nil {
				return err
			}
		case wizard.StepInterests:
			if err := stepInterests(ctx, w, verbose); err != nil {
				return err
			}
		case wizard.StepResult:
			again, err := stepResult(ctx, w, printer)
			if err != nil {
				return err
			}
			if !again {
				return nil
			}
		}
	}
}

func printStepHeader(w *wizard.Wizard) {
	display := int(w.Step())
	if display > 3 {
		display = 3
	}
	fmt.Printf("\n── Step %d of 3 · %s · %d%% ──\n\n", display, w.Step(), w.Progress())
}

func stepPersonality(w *wizard.Wizard) error {
	name, err := (&promptui.Prompt{
		Label:   "Full name",
		Default: w.Name(),
	}).Run()
	if err != nil {
		return err
	}
	w.SetName(name)

	email, err := (&promptui.Prompt{
		Label:   "Email",
		Default: w.Email(),
	}).Run()
	if err != nil {
		return err
	}
	w.SetEmail(email)

	for _, q := range w.Questions() {
		labels := make([]string, len(q.Options))
		for i, opt := range q.Options {
			labels[i] = opt.Label
		}
		idx, _, err := (&promptui.Select{
			Label: q.Text,
			Items: labels,
			Size:  len(labels),
		}).Run()
		if err != nil {
			return err
		}
		w.Answer(q.ID, q.Options[idx].Value)
	}

	if !w.Continue() {
		fmt.Println("Name, email and an answer to every question are required to continue.")
	}
	return nil
}

func stepScores(w *wizard.Wizard) error {
	fmt.Println("Enter subject scores 0-100 (optional, leave blank to skip).")

	for _, subject := range types.ScoreSubjects {
		value, err := (&promptui.Prompt{
			Label:    strings.ReplaceAll(subject, "_", " "),
			Default:  w.Scores()[subject],
			Validate: validateScore,
		}).Run()
		if err != nil {
			return err
		}
		w.SetScore(subject, strings.TrimSpace(value))
	}

	file, err := (&promptui.Prompt{
		Label:   "Path to a scores document (optional)",
		Default: w.ScoresFileName(),
	}).Run()
	if err != nil {
		return err
	}
	if trimmed := strings.TrimSpace(file); trimmed != "" {
		w.AttachScoresFile(filepath.Base(trimmed))
	} else {
		w.ClearScoresFile()
	}

	idx, _, err := (&promptui.Select{
		Label: "Next",
		Items: []string{"Continue", "Back"},
	}).Run()
	if err != nil {
		return err
	}
	if idx == 1 {
		w.Back()
		return nil
	}
	if !w.Continue() {
		fmt.Println("Enter at least one score or attach a scores document to continue.")
	}
	return nil
}

func validateScore(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 || n > 100 {
		return fmt.Errorf("enter a number between 0 and 100, or leave blank")
	}
	return nil
}

func stepInterests(ctx context.Context, w *wizard.Wizard, verbose bool) error {
	for {
		selected := make(map[string]bool)
		for _, v := range w.Interests() {
			selected[v] = true
		}

		items := make([]string, 0, len(types.InterestOptions)+2)
		for _, opt := range types.InterestOptions {
			marker := "[ ] "
			if selected[opt] {
				marker = "[x] "
			}
			items = append(items, marker+opt)
		}
		items = append(items, "See my results", "Back")

		idx, _, err := (&promptui.Select{
			Label: "Choose your interests and passions",
			Items: items,
			Size:  len(items),
		}).Run()
		if err != nil {
			return err
		}

		switch idx {
		case len(items) - 1: // Back
			w.Back()
			return nil
		case len(items) - 2: // Submit
			if !w.CanContinue() {
				fmt.Println("Select at least one interest to continue.")
				continue
			}
			if verbose {
				fmt.Println("Submitting…")
			}
			if w.Submit(ctx) {
				return nil
			}
			fmt.Println(w.Err())
			// stay on this step; the action is retryable
		default:
			w.ToggleInterest(types.InterestOptions[idx])
		}
	}
}

func stepResult(ctx context.Context, w *wizard.Wizard, printer *observability.Printer) (bool, error) {
	printer.PrintTemperament(w.Temperament())

	var rec *types.Recommendation
	if w.Result() != nil {
		rec = w.Result().Recommendation
	}
	printer.PrintRecommendation(rec)

	for {
		idx, _, err := (&promptui.Select{
			Label: "What next",
			Items: []string{"Send results to my email", "Start over", "Exit"},
		}).Run()
		if err != nil {
			return false, err
		}

		switch idx {
		case 0:
			w.SendResultsEmail(ctx)
			fmt.Println(w.SendStatus())
		case 1:
			w.Reset()
			return true, nil
		default:
			return false, nil
		}
	}
}
