package cli

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilbergold/mentora/internal/genai"
	"github.com/emilbergold/mentora/internal/session"
	"github.com/emilbergold/mentora/internal/studio"
)

func preModuleFixture(t *testing.T) (*SharedState, *preModuleView) {
	t.Helper()
	state := &SharedState{App: testApp(t), Session: session.New()}
	require.NoError(t, state.Session.StartGeneration("transcript"))
	require.NoError(t, state.Session.ModuleReady(sampleModule()))
	v := newPreModuleView(state)
	v.order = []int{0, 1, 2} // deterministic slots for the test
	return state, v
}

func loadedImages(gen int) visualImagesMsg {
	return visualImagesMsg{gen: gen, results: []studio.SequenceResult{
		{Prompt: "an apple falling", Image: &genai.ImageResponse{Data: "aGVsbG8="}},
		{Prompt: "a sliding puck", Image: &genai.ImageResponse{Data: "aGVsbG8="}},
		{Prompt: "skid marks", Image: &genai.ImageResponse{Data: "aGVsbG8="}},
	}}
}

func TestPreModuleView_MatchingGateUnlocksStart(t *testing.T) {
	state, v := preModuleFixture(t)
	model, _ := v.Update(loadedImages(state.Session.Generation))
	v = model.(*preModuleView)

	// Identity order: term i matches slot i+1.
	press(t, v, "1")
	press(t, v, "2")
	press(t, v, "3")
	require.True(t, v.allMatched())

	model, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v = model.(*preModuleView)
	require.NotNil(t, cmd)
	assert.Equal(t, session.PhaseLearning, state.Session.Phase)
}

func TestPreModuleView_WrongMatchShowsMiss(t *testing.T) {
	state, v := preModuleFixture(t)
	model, _ := v.Update(loadedImages(state.Session.Generation))
	v = model.(*preModuleView)

	press(t, v, "2") // term 0, slot 2: wrong
	assert.False(t, v.matched[0])
	assert.Contains(t, v.View(), "Not that one")
	assert.Equal(t, session.PhasePreModule, state.Session.Phase)
}

func TestPreModuleView_EnterBeforeAllMatchedIsNoop(t *testing.T) {
	state, v := preModuleFixture(t)

	model, _ := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_ = model
	assert.Equal(t, session.PhasePreModule, state.Session.Phase)
}

func TestPreModuleView_SkipOnlyWhenAnImageFailed(t *testing.T) {
	state, v := preModuleFixture(t)

	// Before images load, skip does nothing.
	press(t, v, "s")
	assert.Equal(t, session.PhasePreModule, state.Session.Phase)

	msg := loadedImages(state.Session.Generation)
	msg.results[2] = studio.SequenceResult{Prompt: "skid marks", Err: errors.New("rate limited")}
	model, _ := v.Update(msg)
	v = model.(*preModuleView)
	assert.Contains(t, v.View(), "skip the warm-up")

	model, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	_ = model
	require.NotNil(t, cmd)
	assert.Equal(t, session.PhaseLearning, state.Session.Phase)
}

func TestPreModuleView_StaleImagesDropped(t *testing.T) {
	state, v := preModuleFixture(t)
	stale := state.Session.Generation - 1

	model, _ := v.Update(loadedImages(stale))
	v = model.(*preModuleView)
	assert.False(t, v.loaded)
}
