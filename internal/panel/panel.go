package panel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ladle-tui/ladle/internal/recipes"
)

// Panel is the demo panel core: backend-address selection plus the outcome
// state machine, independent of any rendering framework.
type Panel struct {
	store  *Store
	sel    *Selection
	client recipes.Dispatcher
}

// New builds a Panel. defaultAddr is the externally supplied default backend
// address, passed in explicitly so the panel stays testable without
// environment manipulation.
func New(client recipes.Dispatcher, defaultAddr string, extra []string) *Panel {
	return &Panel{
		store:  &Store{},
		sel:    NewSelection(defaultAddr, extra),
		client: client,
	}
}

// Resolution carries the result of one attempt back to Apply.
type Resolution struct {
	Seq     uint64
	Payload json.RawMessage
	Err     error
}

// Trigger begins a new attempt: the outcome moves to Loading synchronously
// and the returned function performs the single HTTP call for action. The
// backend address is captured at trigger time; later selection changes do not
// affect an attempt already started.
func (p *Panel) Trigger(action Action) (uint64, func(context.Context) Resolution) {
	base := p.sel.Current()
	seq := p.store.Begin(action)

	run := func(ctx context.Context) Resolution {
		var payload json.RawMessage
		var err error
		switch action {
		case ActionListRecipes:
			payload, err = p.client.ListRecipes(ctx, base)
		case ActionCreateRecipe:
			payload, err = p.client.CreateRecipe(ctx, base, recipes.SampleRecipe())
		case ActionWeeklyPlan:
			payload, err = p.client.WeeklyPlan(ctx, base, recipes.SamplePlanDate)
		default:
			err = fmt.Errorf("unknown action %d", action)
		}
		return Resolution{Seq: seq, Payload: payload, Err: err}
	}
	return seq, run
}

// Apply records a resolution and reports whether it was the latest attempt.
func (p *Panel) Apply(r Resolution) bool {
	return p.store.Resolve(r.Seq, r.Payload, r.Err)
}

// Outcome returns a snapshot of the current request state.
func (p *Panel) Outcome() Outcome {
	return p.store.Outcome()
}

// Busy reports whether an attempt is outstanding. Callers check this before
// dispatching a new trigger; the store itself does not forbid overlap.
func (p *Panel) Busy() bool {
	return p.store.Busy()
}

// Select records address as the backend for subsequent actions.
func (p *Panel) Select(address string) {
	p.sel.Use(address)
}

// Address returns the backend address the next action will use.
func (p *Panel) Address() string {
	return p.sel.Current()
}

// Presets returns the selectable backend addresses.
func (p *Panel) Presets() []string {
	return p.sel.Presets()
}

// Endpoints returns the URL set derived from the current address.
func (p *Panel) Endpoints() recipes.Endpoints {
	return recipes.NewEndpoints(p.sel.Current())
}
