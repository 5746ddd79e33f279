package cli

import (
	"github.com/emilbergold/mentora/internal/session"
	"github.com/emilbergold/mentora/internal/studio"
)

// App bundles the service ports the TUI depends on. Wiring happens in
// cmd/mentora; views reach services only through this struct.
type App struct {
	Transcribe studio.TranscribeService
	Modules    studio.ModuleService
	Summaries  studio.SummaryService
	Challenges studio.ChallengeService
	Images     studio.ImageService
	Search     studio.SearchService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// SharedState is the context shared across all views via pointer.
// The session record is the single mutable state of the workflow;
// views mutate it only through its transition methods.
type SharedState struct {
	App     *App
	Session *session.Session

	// Terminal dimensions
	Width  int
	Height int
}
