package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilbergold/mentora/internal/media"
	"github.com/emilbergold/mentora/internal/studio"
)

func testModule(concepts int) *studio.ModuleData {
	m := &studio.ModuleData{SimpleSummary: "s"}
	for i := 0; i < concepts; i++ {
		m.Concepts = append(m.Concepts, studio.Concept{
			Title: "Concept",
			Quiz: []studio.QuizQuestion{
				{Question: "q1", Options: []string{"a", "b"}, Answer: "a"},
				{Question: "q2", Options: []string{"a", "b"}, Answer: "b"},
				{Question: "q3", Answer: "short"},
			},
		})
	}
	return m
}

func learningSession(t *testing.T, concepts int) *Session {
	t.Helper()
	s := New()
	require.NoError(t, s.StartGeneration("transcript"))
	require.NoError(t, s.ModuleReady(testModule(concepts)))
	require.NoError(t, s.StartModule())
	return s
}

func TestNew_StartsIdle(t *testing.T) {
	s := New()
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.NotEmpty(t, s.ID)
	assert.Empty(t, s.Answers)
}

func TestStartGeneration_ClearsPriorModuleState(t *testing.T) {
	s := learningSession(t, 3)
	s.RecordAnswer(0, 0, "a", true)
	s.ResetModule()

	require.NoError(t, s.StartGeneration("new transcript"))
	assert.Equal(t, PhaseGenerating, s.Phase)
	assert.Equal(t, "new transcript", s.Transcript)
	assert.Nil(t, s.Module)
	assert.Empty(t, s.Answers)
	assert.Zero(t, s.ConceptIndex)
}

func TestStartGeneration_OnlyFromIdle(t *testing.T) {
	s := New()
	require.NoError(t, s.StartGeneration("t"))
	err := s.StartGeneration("t")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestModuleReady_TransitionsToPreModule(t *testing.T) {
	s := New()
	require.NoError(t, s.StartGeneration("t"))
	require.NoError(t, s.ModuleReady(testModule(6)))
	assert.Equal(t, PhasePreModule, s.Phase)
	require.NotNil(t, s.Module)
	assert.Len(t, s.Module.Concepts, 6)
}

func TestModuleReady_ZeroConceptsGoesToError(t *testing.T) {
	s := New()
	require.NoError(t, s.StartGeneration("t"))
	require.NoError(t, s.ModuleReady(testModule(0)))
	assert.Equal(t, PhaseError, s.Phase, "zero concepts must never reach pre-module")
	assert.ErrorIs(t, s.Err, studio.ErrZeroConcepts)
}

func TestGenerationFailed(t *testing.T) {
	s := New()
	require.NoError(t, s.StartGeneration("t"))
	cause := errors.New("provider down")
	require.NoError(t, s.GenerationFailed(cause))
	assert.Equal(t, PhaseError, s.Phase)
	assert.ErrorIs(t, s.Err, cause)
}

func TestNextPrev_ClampAtBoundaries(t *testing.T) {
	s := learningSession(t, 3)

	s.Prev()
	assert.Zero(t, s.ConceptIndex, "prev at index 0 is a no-op")

	s.Next()
	s.Next()
	assert.Equal(t, 2, s.ConceptIndex)

	s.Next()
	assert.Equal(t, 2, s.ConceptIndex, "next at the last index is a no-op")

	s.Prev()
	assert.Equal(t, 1, s.ConceptIndex)
}

func TestNextPrev_IgnoredOutsideLearning(t *testing.T) {
	s := New()
	s.Next()
	s.Prev()
	assert.Zero(t, s.ConceptIndex)
}

func TestRecordAnswer_IdempotentUpsert(t *testing.T) {
	s := learningSession(t, 2)

	s.RecordAnswer(1, 2, "short", true)
	s.RecordAnswer(1, 2, "short", true)

	a, ok := s.AnswerFor(1, 2)
	require.True(t, ok)
	assert.Equal(t, Answer{Selected: "short", Correct: true}, a)
	assert.Len(t, s.Answers[1], 1, "repeated identical calls leave the mapping unchanged")
}

func TestRecordAnswer_OverwriteWins(t *testing.T) {
	s := learningSession(t, 1)
	s.RecordAnswer(0, 0, "a", true)
	s.RecordAnswer(0, 0, "b", false)

	a, _ := s.AnswerFor(0, 0)
	assert.Equal(t, Answer{Selected: "b", Correct: false}, a)
}

func TestFinish_OnlyFromLearning(t *testing.T) {
	s := learningSession(t, 1)
	require.NoError(t, s.Finish())
	assert.Equal(t, PhaseResults, s.Phase)

	assert.ErrorIs(t, s.Finish(), ErrInvalidTransition)
}

func TestResetModule_KeepsMediaAndTranscript(t *testing.T) {
	s := New()
	v, err := media.SelectVideo(media.Video{ID: "v1", Title: "t", Channel: "c"})
	require.NoError(t, err)
	require.NoError(t, s.SelectMedia(v))
	require.NoError(t, s.StartGeneration("transcript"))
	require.NoError(t, s.ModuleReady(testModule(2)))
	require.NoError(t, s.StartModule())
	s.Next()
	s.RecordAnswer(0, 0, "a", true)

	s.ResetModule()

	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Equal(t, v, s.Media)
	assert.Equal(t, "transcript", s.Transcript)
	assert.Nil(t, s.Module)
	assert.Empty(t, s.Answers)
	assert.Zero(t, s.ConceptIndex)
	assert.NoError(t, s.Err)
}

func TestResetApp_WipesEverything(t *testing.T) {
	s := New()
	v, err := media.SelectVideo(media.Video{ID: "v1", Title: "t", Channel: "c"})
	require.NoError(t, err)
	require.NoError(t, s.SelectMedia(v))
	require.NoError(t, s.StartGeneration("transcript"))
	require.NoError(t, s.GenerationFailed(errors.New("boom")))

	s.ResetApp()

	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Nil(t, s.Media)
	assert.Empty(t, s.Transcript)
	assert.Nil(t, s.Module)
	assert.Empty(t, s.Answers)
	assert.Zero(t, s.ConceptIndex)
	assert.NoError(t, s.Err)
}

func TestGenerationGuard_StaleCompletionsDetectable(t *testing.T) {
	s := New()
	require.NoError(t, s.StartGeneration("t"))
	gen := s.Generation
	assert.True(t, s.StillCurrent(gen))

	s.ResetApp()
	assert.False(t, s.StillCurrent(gen), "completions from before a reset must be ignored")
}

func TestSelectMedia_InvalidatesTranscript(t *testing.T) {
	s := New()
	v, err := media.SelectVideo(media.Video{ID: "v1", Title: "t", Channel: "c"})
	require.NoError(t, err)
	require.NoError(t, s.SelectMedia(v))
	s.SetTranscript("old transcript")

	v2, err := media.SelectVideo(media.Video{ID: "v2", Title: "t2", Channel: "c2"})
	require.NoError(t, err)
	require.NoError(t, s.SelectMedia(v2))
	assert.Empty(t, s.Transcript)
}

// Full walkthrough: generate 6 concepts, answer all 18 questions
// correctly, finish with a perfect score.
func TestSession_FullScenario(t *testing.T) {
	s := New()
	require.NoError(t, s.StartGeneration("Newton's laws..."))
	require.NoError(t, s.ModuleReady(testModule(6)))
	assert.Equal(t, PhasePreModule, s.Phase)

	require.NoError(t, s.StartModule())
	assert.Equal(t, PhaseLearning, s.Phase)
	assert.Zero(t, s.ConceptIndex)

	for ci := 0; ci < 6; ci++ {
		for qi, q := range s.Module.Concepts[ci].Quiz {
			s.RecordAnswer(ci, qi, q.Answer, true)
		}
		if ci < 5 {
			s.Next()
		}
	}
	assert.Equal(t, 5, s.ConceptIndex)

	require.NoError(t, s.Finish())
	assert.Equal(t, PhaseResults, s.Phase)

	score := s.ComputeScore()
	assert.Equal(t, 18, score.Total)
	assert.Equal(t, 18, score.Correct)
	assert.Equal(t, 100, score.Percent)
}
