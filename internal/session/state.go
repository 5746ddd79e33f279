// Package session holds the single state record driving the learning
// workflow. All mutation goes through the transition methods below;
// no other component touches the fields directly. The model runs on
// one logical thread of control (the UI update loop), so interleaved
// asynchronous completions cannot race.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/emilbergold/mentora/internal/media"
	"github.com/emilbergold/mentora/internal/studio"
)

// Phase is the workflow position of a session.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseGenerating Phase = "generating"
	PhasePreModule  Phase = "pre-module"
	PhaseLearning   Phase = "learning"
	PhaseResults    Phase = "results"

	// PhaseError is reachable from generating only; other components
	// surface their own inline errors without a global transition.
	PhaseError Phase = "error"
)

// ErrInvalidTransition is returned when a transition is requested from
// the wrong phase.
var ErrInvalidTransition = errors.New("invalid session transition")

// Answer records one answered quiz question.
type Answer struct {
	Selected string
	Correct  bool
}

// QuizAnswers maps concept index → question index → answer. It grows
// monotonically as the user answers; keys are positional.
type QuizAnswers map[int]map[int]Answer

// Session is the single shared state record for one study session.
type Session struct {
	ID    string
	Phase Phase

	// Media and transcript survive a module reset but not an app reset.
	Media      media.Media
	Transcript string

	Module       *studio.ModuleData
	Answers      QuizAnswers
	ConceptIndex int

	// Err is set when the generating phase fails.
	Err error

	// Generation increments whenever prior work becomes irrelevant.
	// Completion handlers compare it to decide whether to apply their
	// result; completions from a torn-down workflow are dropped.
	Generation int
}

// New creates an idle session.
func New() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Phase:   PhaseIdle,
		Answers: QuizAnswers{},
	}
}

// StillCurrent reports whether a completion started at generation gen
// is still relevant to the session.
func (s *Session) StillCurrent(gen int) bool {
	return s.Generation == gen
}

// SelectMedia records the chosen study source and invalidates any
// transcript produced for previous media.
func (s *Session) SelectMedia(m media.Media) error {
	if s.Phase != PhaseIdle {
		return fmt.Errorf("%w: select media in %s", ErrInvalidTransition, s.Phase)
	}
	s.Media = m
	s.Transcript = ""
	s.Generation++
	return nil
}

// SetTranscript records the transcript for the selected media.
func (s *Session) SetTranscript(text string) {
	s.Transcript = text
}

// StartGeneration moves idle → generating, clearing prior module data
// and quiz answers and recording the transcript.
func (s *Session) StartGeneration(transcript string) error {
	if s.Phase != PhaseIdle {
		return fmt.Errorf("%w: start generation in %s", ErrInvalidTransition, s.Phase)
	}
	s.Phase = PhaseGenerating
	s.Transcript = transcript
	s.Module = nil
	s.Answers = QuizAnswers{}
	s.ConceptIndex = 0
	s.Err = nil
	s.Generation++
	return nil
}

// ModuleReady moves generating → pre-module when the module has at
// least one concept; a concept-free module moves to the error phase.
func (s *Session) ModuleReady(module *studio.ModuleData) error {
	if s.Phase != PhaseGenerating {
		return fmt.Errorf("%w: module ready in %s", ErrInvalidTransition, s.Phase)
	}
	if module == nil || len(module.Concepts) == 0 {
		s.Phase = PhaseError
		s.Err = studio.ErrZeroConcepts
		return nil
	}
	s.Module = module
	s.Phase = PhasePreModule
	return nil
}

// GenerationFailed moves generating → error.
func (s *Session) GenerationFailed(err error) error {
	if s.Phase != PhaseGenerating {
		return fmt.Errorf("%w: generation failed in %s", ErrInvalidTransition, s.Phase)
	}
	s.Phase = PhaseError
	s.Err = err
	return nil
}

// StartModule moves pre-module → learning at the first concept. The
// presentation layer gates this behind the visual-matching task; the
// state machine does not validate task completion.
func (s *Session) StartModule() error {
	if s.Phase != PhasePreModule {
		return fmt.Errorf("%w: start module in %s", ErrInvalidTransition, s.Phase)
	}
	s.Phase = PhaseLearning
	s.ConceptIndex = 0
	return nil
}

// Next advances to the next concept. A no-op at the last index; no
// wraparound.
func (s *Session) Next() {
	if s.Phase != PhaseLearning || s.Module == nil {
		return
	}
	if s.ConceptIndex < len(s.Module.Concepts)-1 {
		s.ConceptIndex++
	}
}

// Prev steps back one concept. A no-op at index 0; no wraparound.
func (s *Session) Prev() {
	if s.Phase != PhaseLearning {
		return
	}
	if s.ConceptIndex > 0 {
		s.ConceptIndex--
	}
}

// RecordAnswer upserts an answer for the given concept and question.
// Answering the same question twice overwrites; the UI disables
// re-answering, but the state machine is idempotent by overwrite.
func (s *Session) RecordAnswer(conceptIdx, questionIdx int, selected string, correct bool) {
	if s.Answers == nil {
		s.Answers = QuizAnswers{}
	}
	if s.Answers[conceptIdx] == nil {
		s.Answers[conceptIdx] = map[int]Answer{}
	}
	s.Answers[conceptIdx][questionIdx] = Answer{Selected: selected, Correct: correct}
}

// AnswerFor returns the recorded answer for a question, if any.
func (s *Session) AnswerFor(conceptIdx, questionIdx int) (Answer, bool) {
	a, ok := s.Answers[conceptIdx][questionIdx]
	return a, ok
}

// Finish moves learning → results. The presentation flow only offers
// this from the last concept; it is not a hard precondition here.
func (s *Session) Finish() error {
	if s.Phase != PhaseLearning {
		return fmt.Errorf("%w: finish in %s", ErrInvalidTransition, s.Phase)
	}
	s.Phase = PhaseResults
	return nil
}

// ResetModule returns to idle keeping the selected media and transcript
// but clearing module data, answers, index, and any error.
func (s *Session) ResetModule() {
	s.Phase = PhaseIdle
	s.Module = nil
	s.Answers = QuizAnswers{}
	s.ConceptIndex = 0
	s.Err = nil
	s.Generation++
}

// ResetApp returns to idle with a full state wipe.
func (s *Session) ResetApp() {
	s.Phase = PhaseIdle
	s.Media = nil
	s.Transcript = ""
	s.Module = nil
	s.Answers = QuizAnswers{}
	s.ConceptIndex = 0
	s.Err = nil
	s.Generation++
}
