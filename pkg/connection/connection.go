// Package connection defines the capability surface a connector exposes to an
// agent host.
//
// A Connection is a named adapter around an external API. It advertises a
// fixed set of Actions (name, typed parameters, description) and dispatches
// invocations by name. Hosts discover capabilities through the Registry and
// invoke them with PerformAction; they never call connector internals
// directly.
package connection

import (
	"context"
	"fmt"
	"strings"

	"github.com/tombee/datalink/pkg/errors"
)

// ParamType identifies the expected Go type of an action parameter.
type ParamType string

const (
	// TypeString expects a string value.
	TypeString ParamType = "string"
	// TypeInt expects an integer value (float64 with a zero fraction is
	// accepted, since JSON decoding produces float64).
	TypeInt ParamType = "int"
	// TypeFloat expects a numeric value.
	TypeFloat ParamType = "float"
	// TypeBool expects a boolean value.
	TypeBool ParamType = "bool"
)

// ActionParameter describes one parameter of an action.
type ActionParameter struct {
	// Name is the parameter key in the invocation map.
	Name string

	// Required marks the parameter as mandatory.
	Required bool

	// Type is the expected value type.
	Type ParamType

	// Description is shown to hosts and humans.
	Description string
}

// Action is declarative metadata for one named operation a connection exposes.
type Action struct {
	// Name is the action identifier (e.g., "execute-query").
	Name string

	// Parameters lists the action's parameters in declaration order.
	Parameters []ActionParameter

	// Description explains what the action does.
	Description string
}

// ValidateParams checks the invocation map against the action's parameter
// spec. It returns a ValidationError naming every missing or mistyped
// parameter, or nil when the input is acceptable. Unknown extra keys are
// tolerated.
func (a Action) ValidateParams(params map[string]interface{}) error {
	var problems []string

	for _, p := range a.Parameters {
		value, present := params[p.Name]
		if !present {
			if p.Required {
				problems = append(problems, fmt.Sprintf("missing required parameter: %s", p.Name))
			}
			continue
		}

		if !matchesType(value, p.Type) {
			problems = append(problems, fmt.Sprintf("parameter %s must be of type %s", p.Name, p.Type))
		}
	}

	if len(problems) > 0 {
		return &errors.ValidationError{
			Field:      a.Name,
			Message:    strings.Join(problems, ", "),
			Suggestion: "check the action's parameter list with the actions command",
		}
	}

	return nil
}

// matchesType reports whether value satisfies the declared parameter type.
func matchesType(value interface{}, t ParamType) bool {
	switch t {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeBool:
		_, ok := value.(bool)
		return ok
	case TypeInt:
		switch v := value.(type) {
		case int, int32, int64:
			return true
		case float64:
			return v == float64(int64(v))
		default:
			return false
		}
	case TypeFloat:
		switch value.(type) {
		case float32, float64, int, int32, int64:
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// Connection represents a configured external integration exposed to a host.
// Each connection dispatches multiple named actions.
type Connection interface {
	// Name returns the connection identifier.
	Name() string

	// IsLLMProvider reports whether this connection provides language-model
	// inference. Data connectors return false.
	IsLLMProvider() bool

	// Actions returns the declarative metadata for every registered action.
	Actions() map[string]Action

	// PerformAction validates parameters against the named action's spec and
	// dispatches to its handler. Unknown actions yield a NotFoundError,
	// invalid parameters a ValidationError; both propagate to the host.
	PerformAction(ctx context.Context, name string, params map[string]interface{}) (interface{}, error)

	// IsConfigured reports whether the connection's credentials are present.
	// It never returns an error; failures are reported as false.
	IsConfigured(ctx context.Context, verbose bool) bool
}
