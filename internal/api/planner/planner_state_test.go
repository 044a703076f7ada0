package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, ViewLanding, s.View)
	assert.Equal(t, types.DefaultPreferences(), s.Preferences)
	assert.Nil(t, s.Itinerary)
	assert.Empty(t, s.ErrorMessage)
	assert.Zero(t, s.RunID)
}

func TestNormalizeInterest(t *testing.T) {
	tests := map[string]string{
		"food":            "Food",
		"  street   food": "Street Food",
		"HISTORY":         "History",
		"":                "",
		"   ":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeInterest(in), "input %q", in)
	}
}

func TestTransition_DefinedEdges(t *testing.T) {
	loading := wizardReady()
	loading.View = ViewLoading
	loading.RunID = 3

	errored := wizardReady()
	errored.View = ViewError
	errored.ErrorMessage = types.GenericGenerationMessage

	itin := sampleItinerary()
	done := wizardReady()
	done.View = ViewItinerary
	done.Itinerary = itin
	done.RunID = 3

	tests := []struct {
		name     string
		from     State
		action   Action
		wantView View
	}{
		{name: "landing start", from: NewState(), action: Action{Type: ActionStartPlanning}, wantView: ViewWizard},
		{name: "wizard back", from: wizardReady(), action: Action{Type: ActionBack}, wantView: ViewLanding},
		{name: "wizard submit", from: wizardReady(), action: Action{Type: ActionSubmit}, wantView: ViewLoading},
		{name: "loading success", from: loading, action: Action{Type: ActionGenerationSucceeded, RunID: 3, Itinerary: itin}, wantView: ViewItinerary},
		{name: "loading failure", from: loading, action: Action{Type: ActionGenerationFailed, RunID: 3}, wantView: ViewError},
		{name: "loading cancel", from: loading, action: Action{Type: ActionCancel}, wantView: ViewWizard},
		{name: "error try again", from: errored, action: Action{Type: ActionTryAgain}, wantView: ViewWizard},
		{name: "itinerary reset", from: done, action: Action{Type: ActionReset}, wantView: ViewLanding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := Transition(tt.from, tt.action)
			require.True(t, ok)
			assert.Equal(t, tt.wantView, next.View)
		})
	}
}

func TestTransition_UndefinedPairsAreNoOps(t *testing.T) {
	loading := wizardReady()
	loading.View = ViewLoading
	loading.RunID = 1

	errored := wizardReady()
	errored.View = ViewError

	done := wizardReady()
	done.View = ViewItinerary
	done.Itinerary = sampleItinerary()

	tests := []struct {
		name   string
		from   State
		action Action
	}{
		{name: "landing submit", from: NewState(), action: Action{Type: ActionSubmit}},
		{name: "landing set destination", from: NewState(), action: Action{Type: ActionSetDestination, Text: "Rome"}},
		{name: "wizard start planning", from: wizardReady(), action: Action{Type: ActionStartPlanning}},
		{name: "wizard reset", from: wizardReady(), action: Action{Type: ActionReset}},
		{name: "wizard stray success", from: wizardReady(), action: Action{Type: ActionGenerationSucceeded, Itinerary: sampleItinerary()}},
		{name: "loading submit", from: loading, action: Action{Type: ActionSubmit}},
		{name: "loading edit", from: loading, action: Action{Type: ActionSetDestination, Text: "Rome"}},
		{name: "loading back", from: loading, action: Action{Type: ActionBack}},
		{name: "error reset", from: errored, action: Action{Type: ActionReset}},
		{name: "error cancel", from: errored, action: Action{Type: ActionCancel}},
		{name: "itinerary back", from: done, action: Action{Type: ActionBack}},
		{name: "itinerary try again", from: done, action: Action{Type: ActionTryAgain}},
		{name: "unknown action", from: wizardReady(), action: Action{Type: "teleport"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := Transition(tt.from, tt.action)
			assert.False(t, ok)
			assert.Equal(t, tt.from, next)
		})
	}
}

func TestTransition_WizardEdits(t *testing.T) {
	s := NewState()
	s.View = ViewWizard

	s, ok := Transition(s, Action{Type: ActionSetDestination, Text: "Lisbon"})
	require.True(t, ok)
	assert.Equal(t, "Lisbon", s.Preferences.Destination)

	s, ok = Transition(s, Action{Type: ActionSetDuration, Number: 14})
	require.True(t, ok)
	assert.Equal(t, 14, s.Preferences.Duration)

	for _, bad := range []int{0, 15, -2} {
		next, ok := Transition(s, Action{Type: ActionSetDuration, Number: bad})
		assert.False(t, ok, "duration %d", bad)
		assert.Equal(t, 14, next.Preferences.Duration)
	}

	s, ok = Transition(s, Action{Type: ActionSetTravelers, Number: 4})
	require.True(t, ok)
	assert.Equal(t, 4, s.Preferences.Travelers)
	_, ok = Transition(s, Action{Type: ActionSetTravelers, Number: 0})
	assert.False(t, ok)

	s, ok = Transition(s, Action{Type: ActionSetBudget, Text: "Luxury"})
	require.True(t, ok)
	assert.Equal(t, types.BudgetTierLuxury, s.Preferences.Budget)
	_, ok = Transition(s, Action{Type: ActionSetBudget, Text: "luxury"})
	assert.False(t, ok)

	assert.Equal(t, ViewWizard, s.View)
}

func TestTransition_ToggleInterest(t *testing.T) {
	s := NewState()
	s.View = ViewWizard

	s, _ = Transition(s, Action{Type: ActionToggleInterest, Text: "Food"})
	s, _ = Transition(s, Action{Type: ActionToggleInterest, Text: "art"})
	assert.Equal(t, []string{"Food", "Art"}, s.Preferences.Interests)

	s, ok := Transition(s, Action{Type: ActionToggleInterest, Text: "FOOD"})
	require.True(t, ok)
	assert.Equal(t, []string{"Art"}, s.Preferences.Interests)

	s, _ = Transition(s, Action{Type: ActionToggleInterest, Text: "Art"})
	assert.Empty(t, s.Preferences.Interests)

	_, ok = Transition(s, Action{Type: ActionToggleInterest, Text: "  "})
	assert.False(t, ok)
}

func TestTransition_ToggleDoesNotAliasPreviousState(t *testing.T) {
	s := wizardReady()
	s.Preferences.Interests = []string{"Food", "Art", "History"}

	next, ok := Transition(s, Action{Type: ActionToggleInterest, Text: "Food"})
	require.True(t, ok)
	assert.Equal(t, []string{"Art", "History"}, next.Preferences.Interests)
	assert.Equal(t, []string{"Food", "Art", "History"}, s.Preferences.Interests)
}

func TestTransition_SubmitGuard(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		interests   []string
		want        bool
	}{
		{name: "ready", destination: "Kyoto", interests: []string{"Food"}, want: true},
		{name: "no destination", destination: "", interests: []string{"Food"}},
		{name: "blank destination", destination: "   ", interests: []string{"Food"}},
		{name: "no interests", destination: "Kyoto", interests: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.View = ViewWizard
			s.Preferences.Destination = tt.destination
			s.Preferences.Interests = tt.interests

			next, ok := Transition(s, Action{Type: ActionSubmit})
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, ViewLoading, next.View)
				assert.Equal(t, uint64(1), next.RunID)
			} else {
				assert.Equal(t, ViewWizard, next.View)
				assert.Zero(t, next.RunID)
			}
		})
	}
}

func TestTransition_StaleResultsAreIgnored(t *testing.T) {
	s, ok := Transition(wizardReady(), Action{Type: ActionSubmit})
	require.True(t, ok)
	s, _ = Transition(s, Action{Type: ActionCancel})
	s, ok = Transition(s, Action{Type: ActionSubmit})
	require.True(t, ok)
	require.Equal(t, uint64(2), s.RunID)

	next, ok := Transition(s, Action{Type: ActionGenerationSucceeded, RunID: 1, Itinerary: sampleItinerary()})
	assert.False(t, ok)
	assert.Equal(t, ViewLoading, next.View)

	next, ok = Transition(s, Action{Type: ActionGenerationFailed, RunID: 1})
	assert.False(t, ok)
	assert.Equal(t, ViewLoading, next.View)

	_, ok = Transition(s, Action{Type: ActionGenerationSucceeded, RunID: 2})
	assert.False(t, ok, "success without an itinerary")

	next, ok = Transition(s, Action{Type: ActionGenerationSucceeded, RunID: 2, Itinerary: sampleItinerary()})
	assert.True(t, ok)
	assert.Equal(t, ViewItinerary, next.View)
	assert.NotNil(t, next.Itinerary)
}

func TestTransition_FailureKeepsPreferences(t *testing.T) {
	s, _ := Transition(wizardReady(), Action{Type: ActionSubmit})
	prefs := s.Preferences

	s, ok := Transition(s, Action{Type: ActionGenerationFailed, RunID: s.RunID})
	require.True(t, ok)
	assert.Equal(t, ViewError, s.View)
	assert.Equal(t, types.GenericGenerationMessage, s.ErrorMessage)
	assert.Equal(t, prefs, s.Preferences)

	s, ok = Transition(s, Action{Type: ActionTryAgain})
	require.True(t, ok)
	assert.Equal(t, ViewWizard, s.View)
	assert.Equal(t, prefs, s.Preferences)

	s, ok = Transition(s, Action{Type: ActionSubmit})
	require.True(t, ok)
	assert.Empty(t, s.ErrorMessage, "submit clears the previous error")
}

func TestTransition_ResetRestoresDefaults(t *testing.T) {
	s := wizardReady()
	s.Preferences.Duration = 7
	s.Preferences.Travelers = 3
	s.Preferences.Budget = types.BudgetTierLuxury
	s, _ = Transition(s, Action{Type: ActionSubmit})
	s, _ = Transition(s, Action{Type: ActionGenerationSucceeded, RunID: s.RunID, Itinerary: sampleItinerary()})
	require.Equal(t, ViewItinerary, s.View)

	s, ok := Transition(s, Action{Type: ActionReset})
	require.True(t, ok)
	assert.Equal(t, ViewLanding, s.View)
	assert.Equal(t, types.DefaultPreferences(), s.Preferences)
	assert.Nil(t, s.Itinerary)
	assert.Empty(t, s.ErrorMessage)
	assert.Equal(t, uint64(1), s.RunID)
}
