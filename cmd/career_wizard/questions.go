package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamau/career-compass/internal/observability"
	"github.com/kamau/career-compass/internal/parsing"
	"github.com/kamau/career-compass/internal/questions"
)

var questionsPath string

var questionsCommand = &cobra.Command{
	Use:   "questions",
	Short: "Parse and print the personality question document",
	Long:  "Parses the question source document (embedded default or --questions path) and prints the resulting question list. Useful for checking a customized questionnaire before running the assessment.",
	RunE:  runQuestionsCmd,
}

func init() {
	questionsCommand.Flags().StringVarP(&questionsPath, "questions", "q", "", "Path to an alternate question source document")
	rootCmd.AddCommand(questionsCommand)
}

func runQuestionsCmd(_ *cobra.Command, _ []string) error {
	document, err := questions.Load(questionsPath)
	if err != nil {
		return err
	}

	questionList := parsing.ParseQuestions(document)
	if len(questionList) == 0 {
		fmt.Println("No question blocks found; the personality step will be skipped.")
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintQuestions(questionList)

	for _, q := range questionList {
		fmt.Printf("\n%s: %s\n", q.ID, q.Text)
		for _, opt := range q.Options {
			fmt.Printf("  (%s) %s\n", opt.Value, opt.Label)
		}
	}
	return nil
}
