// Package export synthesizes local artifacts from a completed session.
// Nothing here calls the network; exports are one-shot local file
// synthesis plus a navigation URL builder.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/emilbergold/mentora/internal/session"
)

// StudyNotes renders a plain-text summary of the completed module:
// title, score, and per-chapter summary, quiz, flashcards, and
// challenge.
func StudyNotes(s *session.Session) string {
	var b strings.Builder

	title := "Learning Module"
	if s.Media != nil {
		title = s.Media.Label()
	}
	score := s.ComputeScore()

	fmt.Fprintf(&b, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
	fmt.Fprintf(&b, "Score: %d%% (%d/%d correct)\n\n", score.Percent, score.Correct, score.Total)

	if s.Module == nil {
		return b.String()
	}

	fmt.Fprintf(&b, "Summary\n-------\n%s\n", s.Module.SimpleSummary)

	for ci, concept := range s.Module.Concepts {
		fmt.Fprintf(&b, "\nChapter %d: %s\n", ci+1, concept.Title)
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", len(concept.Title)+12))
		fmt.Fprintf(&b, "%s\n", concept.Summary)

		if len(concept.Quiz) > 0 {
			b.WriteString("\nQuiz:\n")
			for qi, q := range concept.Quiz {
				fmt.Fprintf(&b, "  %d. %s\n", qi+1, q.Question)
				fmt.Fprintf(&b, "     Answer: %s\n", q.Answer)
				if a, ok := s.AnswerFor(ci, qi); ok {
					result := "incorrect"
					if a.Correct {
						result = "correct"
					}
					fmt.Fprintf(&b, "     Your answer: %s (%s)\n", a.Selected, result)
				}
			}
		}

		if len(concept.Flashcards) > 0 {
			b.WriteString("\nFlashcards:\n")
			for _, card := range concept.Flashcards {
				fmt.Fprintf(&b, "  - %s :: %s\n", card.Front, card.Back)
			}
		}

		if concept.Challenge.Scenario != "" {
			fmt.Fprintf(&b, "\nChallenge:\n  %s\n  Task: %s\n", concept.Challenge.Scenario, concept.Challenge.Task)
		}

		if concept.Badge.Name != "" {
			fmt.Fprintf(&b, "\nBadge earned: %s - %s\n", concept.Badge.Name, concept.Badge.Description)
		}
	}

	return b.String()
}

// WriteStudyNotes writes the rendered notes to path.
func WriteStudyNotes(s *session.Session, path string) error {
	if err := os.WriteFile(path, []byte(StudyNotes(s)), 0o644); err != nil {
		return fmt.Errorf("writing study notes: %w", err)
	}
	return nil
}
