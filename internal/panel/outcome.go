package panel

import (
	"encoding/json"
	"time"
)

// Phase is the lifecycle state of the most recent demo request.
type Phase int

const (
	// PhaseIdle means no request has been triggered yet. Once an action has
	// been taken the panel never returns to it.
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Action identifies one of the three demo operations.
type Action int

const (
	ActionListRecipes Action = iota
	ActionCreateRecipe
	ActionWeeklyPlan
)

func (a Action) String() string {
	switch a {
	case ActionListRecipes:
		return "list recipes"
	case ActionCreateRecipe:
		return "create recipe"
	case ActionWeeklyPlan:
		return "weekly plan"
	default:
		return "unknown"
	}
}

// Outcome is a snapshot of the panel's request state. Exactly one of Result
// and Err is set once an attempt has completed; both are empty while loading.
type Outcome struct {
	Phase   Phase
	Action  Action
	Seq     uint64
	Result  json.RawMessage
	Err     string
	Updated time.Time
}
