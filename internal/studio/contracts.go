package studio

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrEmptyGeneration indicates module generation returned no usable text.
	ErrEmptyGeneration = errors.New("module generation returned no content")

	// ErrZeroConcepts indicates the generated module contained no concepts.
	// Callers surface this as a user-facing failure; it is never retried.
	ErrZeroConcepts = errors.New("generated module contains no concepts")
)

// QuizQuestion is one question inside a concept's quiz. An empty Options
// slice means short-answer mode; otherwise Answer equals one of the
// options (a generation contract, not locally verified).
type QuizQuestion struct {
	Question    string   `json:"question" validate:"required"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer" validate:"required"`
	Explanation string   `json:"explanation"`
}

// ShortAnswer reports whether the question is in short-answer mode.
func (q QuizQuestion) ShortAnswer() bool {
	return len(q.Options) == 0
}

// Flashcard is a front/back study card.
type Flashcard struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back" validate:"required"`
}

// Badge is awarded for completing a concept chapter.
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Challenge is an open-ended problem-solving scenario.
type Challenge struct {
	Scenario string `json:"scenario" validate:"required"`
	Task     string `json:"task" validate:"required"`
}

// VisualTaskItem pairs a term with an image prompt for the pre-module
// visual-matching task.
type VisualTaskItem struct {
	Term        string `json:"term" validate:"required"`
	ImagePrompt string `json:"image_prompt" validate:"required"`
}

// Concept is one chapter of a learning module. Quiz carries exactly 3
// questions and Flashcards exactly 2, per the generation contract.
type Concept struct {
	Title       string         `json:"title" validate:"required"`
	Summary     string         `json:"summary" validate:"required"`
	StoryScene  string         `json:"story_scene"`
	ImagePrompt string         `json:"image_prompt"`
	Quiz        []QuizQuestion `json:"quiz" validate:"len=3,dive"`
	Flashcards  []Flashcard    `json:"flashcards" validate:"len=2,dive"`
	Badge       Badge          `json:"badge"`
	Narration   string         `json:"narration"`
	Challenge   Challenge      `json:"problem_solving_challenge"`
}

// ModuleData is the full learning module produced in one structured
// generation from a transcript. Immutable after creation; discarded on
// reset.
type ModuleData struct {
	SimpleSummary string           `json:"simple_summary" validate:"required"`
	VisualTask    []VisualTaskItem `json:"visual_task" validate:"len=3,dive"`
	Concepts      []Concept        `json:"concepts" validate:"max=10,dive"`
}

var validate = validator.New()

// ValidateModule checks a parsed module against the generation contract.
// The zero-concepts case is reported separately so callers can surface it
// as its own failure.
func ValidateModule(m ModuleData) error {
	if len(m.Concepts) == 0 {
		return ErrZeroConcepts
	}
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("module schema: %w", err)
	}
	return nil
}

// IdeaCategory selects the voice for article idea generation.
type IdeaCategory string

const (
	CategoryProfessional IdeaCategory = "Professional"
	CategoryCasualBlog   IdeaCategory = "Casual Blog"
	CategoryEducational  IdeaCategory = "Educational"
)

// Valid reports whether the category is one of the known values.
func (c IdeaCategory) Valid() bool {
	switch c {
	case CategoryProfessional, CategoryCasualBlog, CategoryEducational:
		return true
	}
	return false
}

// Summary is the two-section result of transcript summarization.
type Summary struct {
	Quick       string
	KeyConcepts string
}
