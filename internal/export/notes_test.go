package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilbergold/mentora/internal/media"
	"github.com/emilbergold/mentora/internal/session"
	"github.com/emilbergold/mentora/internal/studio"
)

func completedSession(t *testing.T) *session.Session {
	t.Helper()
	s := session.New()
	v, err := media.SelectVideo(media.Video{ID: "v1", Title: "Newton's Laws", Channel: "Physics Hub"})
	require.NoError(t, err)
	require.NoError(t, s.SelectMedia(v))
	require.NoError(t, s.StartGeneration("transcript"))

	module := &studio.ModuleData{
		SimpleSummary: "Motion follows three laws.",
		Concepts: []studio.Concept{{
			Title:   "Inertia",
			Summary: "Objects resist changes in motion.",
			Quiz: []studio.QuizQuestion{
				{Question: "What resists motion change?", Options: []string{"inertia", "gravity"}, Answer: "inertia"},
			},
			Flashcards: []studio.Flashcard{{Front: "Inertia", Back: "Resistance to change in motion"}},
			Badge:      studio.Badge{Name: "Inertia Master", Description: "Completed chapter one"},
			Challenge:  studio.Challenge{Scenario: "A puck slides on ice.", Task: "Explain why it keeps going."},
		}},
	}
	require.NoError(t, s.ModuleReady(module))
	require.NoError(t, s.StartModule())
	s.RecordAnswer(0, 0, "inertia", true)
	require.NoError(t, s.Finish())
	return s
}

func TestStudyNotes_RendersAllSections(t *testing.T) {
	notes := StudyNotes(completedSession(t))

	assert.Contains(t, notes, "Newton's Laws")
	assert.Contains(t, notes, "Score: 100% (1/1 correct)")
	assert.Contains(t, notes, "Motion follows three laws.")
	assert.Contains(t, notes, "Chapter 1: Inertia")
	assert.Contains(t, notes, "What resists motion change?")
	assert.Contains(t, notes, "Your answer: inertia (correct)")
	assert.Contains(t, notes, "Inertia :: Resistance to change in motion")
	assert.Contains(t, notes, "A puck slides on ice.")
	assert.Contains(t, notes, "Badge earned: Inertia Master")
}

func TestStudyNotes_NoModule(t *testing.T) {
	s := session.New()
	notes := StudyNotes(s)
	assert.Contains(t, notes, "Learning Module")
	assert.Contains(t, notes, "Score: 0% (0/0 correct)")
}

func TestWriteStudyNotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, WriteStudyNotes(completedSession(t), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Chapter 1: Inertia")
}
