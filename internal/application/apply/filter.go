package apply

import (
	"errors"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/yetkin-kariyer/botfleet/internal/domain/actor"
)

// MatchFilter evaluates a candidate-filter expression against an actor.
// Empty filter matches everyone. Supports "true"/"false" literals.
//
// Available parameters: name, persona, tone, expertise (comma-joined),
// expertiseCount, isActive, scheduleEnabled.
func MatchFilter(filter string, a *actor.Actor) (bool, error) {
	f := strings.TrimSpace(filter)
	if f == "" {
		return true, nil
	}
	switch strings.ToLower(f) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	expr, err := govaluate.NewEvaluableExpression(f)
	if err != nil {
		return false, err
	}
	result, err := expr.Evaluate(filterParams(a))
	if err != nil {
		return false, err
	}
	b, ok := result.(bool)
	if !ok {
		return false, errors.New("filter did not evaluate to boolean")
	}
	return b, nil
}

func filterParams(a *actor.Actor) map[string]interface{} {
	params := map[string]interface{}{
		"name":            a.Name,
		"persona":         "",
		"tone":            "",
		"expertise":       "",
		"expertiseCount":  0,
		"isActive":        false,
		"scheduleEnabled": false,
	}
	if a.Character != nil {
		params["persona"] = a.Character.Persona
		params["tone"] = a.Character.Tone
		params["expertise"] = strings.Join(a.Character.Expertise, ",")
		params["expertiseCount"] = len(a.Character.Expertise)
	}
	if a.Config != nil {
		params["isActive"] = a.Config.IsActive
		params["scheduleEnabled"] = a.Config.ScheduleEnabled
	}
	return params
}
