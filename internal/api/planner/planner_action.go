package planner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidAction = errors.New("invalid action")

// ActionRequest is the wire form of a user action.
type ActionRequest struct {
	Type  string          `json:"type" example:"set_destination"`
	Value json.RawMessage `json:"value,omitempty" swaggertype:"string" example:"Kyoto"`
}

// ToAction decodes the payload for the given type. Generation outcomes are
// internal and cannot be sent by clients.
func (r ActionRequest) ToAction() (Action, error) {
	a := Action{Type: ActionType(r.Type)}

	switch a.Type {
	case ActionSetDestination, ActionSetBudget, ActionToggleInterest:
		if err := decodeValue(r.Value, &a.Text); err != nil {
			return Action{}, fmt.Errorf("%w: %s expects a string value: %v", ErrInvalidAction, r.Type, err)
		}
	case ActionSetDuration, ActionSetTravelers:
		if err := decodeValue(r.Value, &a.Number); err != nil {
			return Action{}, fmt.Errorf("%w: %s expects an integer value: %v", ErrInvalidAction, r.Type, err)
		}
	case ActionStartPlanning, ActionBack, ActionSubmit, ActionCancel, ActionTryAgain, ActionReset:
	default:
		return Action{}, fmt.Errorf("%w: unknown action type %q", ErrInvalidAction, r.Type)
	}
	return a, nil
}

func decodeValue(raw json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return errors.New("value is required")
	}
	return json.Unmarshal(raw, dst)
}
