package formatter

import (
	"fmt"
	"strings"

	"github.com/emilbergold/mentora/internal/session"
	"github.com/emilbergold/mentora/internal/studio"
)

// ConceptHeader renders the chapter position line, e.g. "Chapter 2 of 6: Forces".
func ConceptHeader(index, total int, title string) string {
	return Header(fmt.Sprintf("Chapter %d of %d: %s", index+1, total, title))
}

// QuizQuestion renders one quiz question with its options and, when
// answered, the outcome and explanation.
func QuizQuestion(q studio.QuizQuestion, number int, answered *session.Answer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", StyleBold.Render(fmt.Sprintf("Q%d.", number)), q.Question)

	if q.ShortAnswer() {
		if answered == nil {
			b.WriteString(Dim("  (short answer: press enter to reveal)"))
			return b.String()
		}
	} else {
		for i, opt := range q.Options {
			marker := "  "
			line := fmt.Sprintf("%d) %s", i+1, opt)
			if answered != nil && answered.Selected == opt {
				if answered.Correct {
					line = Good(line)
					marker = Good("✓ ")
				} else {
					line = Bad(line)
					marker = Bad("✗ ")
				}
			}
			fmt.Fprintf(&b, "  %s%s\n", marker, line)
		}
	}

	if answered != nil {
		if answered.Correct {
			b.WriteString(Good("  Correct."))
		} else {
			b.WriteString(Bad(fmt.Sprintf("  Not quite. Answer: %s", q.Answer)))
		}
		if q.Explanation != "" {
			b.WriteString("\n" + Dim("  "+q.Explanation))
		}
	}

	return b.String()
}

// Flashcard renders a card, front only or flipped.
func Flashcard(card studio.Flashcard, flipped bool) string {
	if flipped {
		return fmt.Sprintf("%s\n%s", StyleBold.Render(card.Front), Accent(card.Back))
	}
	return fmt.Sprintf("%s\n%s", StyleBold.Render(card.Front), Dim("(space to flip)"))
}

// ScoreLine renders the final score summary.
func ScoreLine(score session.Score) string {
	line := fmt.Sprintf("Score: %d%%  (%d of %d correct)", score.Percent, score.Correct, score.Total)
	switch {
	case score.Percent >= 80:
		return Good(line)
	case score.Percent >= 50:
		return StyleYellow.Render(line)
	default:
		return Bad(line)
	}
}

// Wrap soft-wraps text to the given width, preserving paragraphs.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		out = append(out, wrapLine(para, width))
	}
	return strings.Join(out, "\n")
}

func wrapLine(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if lineLen > 0 && lineLen+1+len(w) > width {
			b.WriteByte('\n')
			lineLen = 0
		} else if i > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
