package cli

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilbergold/mentora/internal/session"
)

func errorFixture(t *testing.T) (*SharedState, *errorView) {
	t.Helper()
	state := &SharedState{App: testApp(t), Session: session.New()}
	state.Session.SetTranscript("kept transcript")
	require.NoError(t, state.Session.StartGeneration("kept transcript"))
	require.NoError(t, state.Session.GenerationFailed(errors.New("upstream unavailable")))
	return state, newErrorView(state)
}

func TestErrorView_ShowsFailure(t *testing.T) {
	_, v := errorFixture(t)
	assert.Contains(t, v.View(), "upstream unavailable")
}

func TestErrorView_RetryKeepsTranscriptAndReturnsToHub(t *testing.T) {
	state, v := errorFixture(t)

	model, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	_ = model
	require.NotNil(t, cmd)
	msg, ok := cmd().(replaceViewMsg)
	require.True(t, ok)
	assert.Equal(t, ViewHub, msg.view.ID())
	assert.Equal(t, session.PhaseIdle, state.Session.Phase)
	assert.Equal(t, "kept transcript", state.Session.Transcript)
}

func TestErrorView_StartOverWipesSession(t *testing.T) {
	state, v := errorFixture(t)

	model, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("R")})
	_ = model
	require.NotNil(t, cmd)
	msg, ok := cmd().(replaceViewMsg)
	require.True(t, ok)
	assert.Equal(t, ViewSelect, msg.view.ID())
	assert.Empty(t, state.Session.Transcript)
}
