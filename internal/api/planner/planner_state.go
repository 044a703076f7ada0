package planner

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/FACorreiaa/wanderplan/internal/types"
)

type View string

const (
	ViewLanding   View = "landing"
	ViewWizard    View = "wizard"
	ViewLoading   View = "loading"
	ViewItinerary View = "itinerary"
	ViewError     View = "error"
)

type ActionType string

const (
	ActionStartPlanning       ActionType = "start_planning"
	ActionSetDestination      ActionType = "set_destination"
	ActionSetDuration         ActionType = "set_duration"
	ActionSetTravelers        ActionType = "set_travelers"
	ActionSetBudget           ActionType = "set_budget"
	ActionToggleInterest      ActionType = "toggle_interest"
	ActionBack                ActionType = "back"
	ActionSubmit              ActionType = "submit"
	ActionCancel              ActionType = "cancel"
	ActionTryAgain            ActionType = "try_again"
	ActionReset               ActionType = "reset"
	ActionGenerationSucceeded ActionType = "generation_succeeded"
	ActionGenerationFailed    ActionType = "generation_failed"
)

// Action is one input to the controller. Only the payload field matching
// Type is read.
type Action struct {
	Type      ActionType
	Text      string
	Number    int
	RunID     uint64
	Itinerary *types.TripItinerary
}

// State is everything the client renders.
type State struct {
	View         View
	Preferences  types.TripPreferences
	Itinerary    *types.TripItinerary
	ErrorMessage string
	// RunID identifies the generation started by the latest submit.
	RunID uint64
}

func NewState() State {
	return State{
		View:        ViewLanding,
		Preferences: types.DefaultPreferences(),
	}
}

// NormalizeInterest trims and title-cases a free-form tag so "street food"
// and "Street Food" toggle the same entry.
func NormalizeInterest(tag string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(tag), " "))
}

// Transition applies a to s. It returns s unchanged and false for any
// (view, action) pair that is not a defined edge or fails its guard.
func Transition(s State, a Action) (State, bool) {
	switch s.View {
	case ViewLanding:
		if a.Type == ActionStartPlanning {
			s.View = ViewWizard
			return s, true
		}

	case ViewWizard:
		return wizardTransition(s, a)

	case ViewLoading:
		switch a.Type {
		case ActionGenerationSucceeded:
			if a.RunID != s.RunID || a.Itinerary == nil {
				return s, false
			}
			s.View = ViewItinerary
			s.Itinerary = a.Itinerary
			s.ErrorMessage = ""
			return s, true
		case ActionGenerationFailed:
			if a.RunID != s.RunID {
				return s, false
			}
			s.View = ViewError
			s.ErrorMessage = types.GenericGenerationMessage
			return s, true
		case ActionCancel:
			s.View = ViewWizard
			return s, true
		}

	case ViewError:
		if a.Type == ActionTryAgain {
			s.View = ViewWizard
			return s, true
		}

	case ViewItinerary:
		if a.Type == ActionReset {
			return State{
				View:        ViewLanding,
				Preferences: types.DefaultPreferences(),
				RunID:       s.RunID,
			}, true
		}
	}
	return s, false
}

func wizardTransition(s State, a Action) (State, bool) {
	prefs := s.Preferences.Clone()

	switch a.Type {
	case ActionSetDestination:
		prefs.Destination = a.Text

	case ActionSetDuration:
		if a.Number < types.MinTripDuration || a.Number > types.MaxTripDuration {
			return s, false
		}
		prefs.Duration = a.Number

	case ActionSetTravelers:
		if a.Number < 1 {
			return s, false
		}
		prefs.Travelers = a.Number

	case ActionSetBudget:
		budget := types.BudgetTier(a.Text)
		if !budget.Valid() {
			return s, false
		}
		prefs.Budget = budget

	case ActionToggleInterest:
		tag := NormalizeInterest(a.Text)
		if tag == "" {
			return s, false
		}
		if prefs.HasInterest(tag) {
			kept := prefs.Interests[:0]
			for _, i := range prefs.Interests {
				if !strings.EqualFold(i, tag) {
					kept = append(kept, i)
				}
			}
			prefs.Interests = kept
		} else {
			prefs.Interests = append(prefs.Interests, tag)
		}

	case ActionBack:
		s.View = ViewLanding
		return s, true

	case ActionSubmit:
		if !s.Preferences.CanSubmit() {
			return s, false
		}
		s.View = ViewLoading
		s.ErrorMessage = ""
		s.Itinerary = nil
		s.RunID++
		return s, true

	default:
		return s, false
	}

	s.Preferences = prefs
	return s, true
}
