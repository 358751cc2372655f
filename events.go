package stagekit

import "fmt"

// Events is the normalized event-hook record: for each hook, an ordered
// list of validated actions. A nil hook list means the raw config did not
// specify that hook.
type Events struct {
	OnPress   []EventAction
	OnHover   []EventAction
	OnRelease []EventAction
}

// EventAction is one validated event entry: a behavior channel to target
// plus a typed patch of the fields to override. The type set is sealed;
// ApplyEventAction matches it exhaustively.
type EventAction interface {
	// Kind returns the behavior channel this action targets.
	Kind() BehaviorKind
	eventAction()
}

// SpinAction patches the spin config.
type SpinAction struct {
	Set SpinSet
}

// Kind returns BehaviorSpin.
func (SpinAction) Kind() BehaviorKind { return BehaviorSpin }
func (SpinAction) eventAction()       {}

// OrbitAction patches the orbit config.
type OrbitAction struct {
	Set OrbitSet
}

// Kind returns BehaviorOrbit.
func (OrbitAction) Kind() BehaviorKind { return BehaviorOrbit }
func (OrbitAction) eventAction()       {}

// PulseAction patches the pulse config.
type PulseAction struct {
	Set PulseSet
}

// Kind returns BehaviorPulse.
func (PulseAction) Kind() BehaviorKind { return BehaviorPulse }
func (PulseAction) eventAction()       {}

// FadeAction patches the fade config.
type FadeAction struct {
	Set FadeSet
}

// Kind returns BehaviorFade.
func (FadeAction) Kind() BehaviorKind { return BehaviorFade }
func (FadeAction) eventAction()       {}

// SpinSet is the typed patch for a spin action. Nil fields are left
// untouched by ApplyEventAction.
type SpinSet struct {
	Enabled   *bool
	RPM       *float64
	Direction *Direction
}

// OrbitSet is the typed patch for an orbit action.
type OrbitSet struct {
	Enabled *bool
	RPM     *float64
	Radius  *float64
	Center  *Vec2
}

// PulseSet is the typed patch for a pulse action.
type PulseSet struct {
	Enabled   *bool
	RPM       *float64
	Amplitude *float64
}

// FadeSet is the typed patch for a fade action.
type FadeSet struct {
	Enabled *bool
	RPM     *float64
	From    *float64
	To      *float64
}

// ApplyEventAction returns a copy of b with the action's patch merged in.
// Only non-nil patch fields are written; the input is never mutated.
func ApplyEventAction(b Behaviors, action EventAction) Behaviors {
	switch a := action.(type) {
	case SpinAction:
		if a.Set.Enabled != nil {
			b.Spin.Enabled = *a.Set.Enabled
		}
		if a.Set.RPM != nil {
			b.Spin.RPM = *a.Set.RPM
		}
		if a.Set.Direction != nil {
			b.Spin.Direction = *a.Set.Direction
		}
	case OrbitAction:
		if a.Set.Enabled != nil {
			b.Orbit.Enabled = *a.Set.Enabled
		}
		if a.Set.RPM != nil {
			b.Orbit.RPM = *a.Set.RPM
		}
		if a.Set.Radius != nil {
			b.Orbit.Radius = *a.Set.Radius
		}
		if a.Set.Center != nil {
			c := *a.Set.Center
			b.Orbit.Center = &c
		}
	case PulseAction:
		if a.Set.Enabled != nil {
			b.Pulse.Enabled = *a.Set.Enabled
		}
		if a.Set.RPM != nil {
			b.Pulse.RPM = *a.Set.RPM
		}
		if a.Set.Amplitude != nil {
			b.Pulse.Amplitude = *a.Set.Amplitude
		}
	case FadeAction:
		if a.Set.Enabled != nil {
			b.Fade.Enabled = *a.Set.Enabled
		}
		if a.Set.RPM != nil {
			b.Fade.RPM = *a.Set.RPM
		}
		if a.Set.From != nil {
			b.Fade.From = *a.Set.From
		}
		if a.Set.To != nil {
			b.Fade.To = *a.Set.To
		}
	default:
		panic(fmt.Sprintf("stagekit: unknown event action type %T", action))
	}
	return b
}

// --- Hook validation ---

// normalizeEventHooks validates a raw events block and builds the
// normalized record. Hook-level and action-level violations are errors;
// an unknown action drops the entry, but an entry whose set fields fail
// type checks is recorded as an error yet still appended with its valid
// fields populated.
func normalizeEventHooks(raw *EventHooks, path string, col *issueCollector) *Events {
	if raw == nil {
		return nil
	}
	return &Events{
		OnPress:   normalizeHook(raw.OnPress, path+".onPress", col),
		OnHover:   normalizeHook(raw.OnHover, path+".onHover", col),
		OnRelease: normalizeHook(raw.OnRelease, path+".onRelease", col),
	}
}

// normalizeHook validates one hook value, which must be a list of
// {action, set} entries.
func normalizeHook(raw any, path string, col *issueCollector) []EventAction {
	if raw == nil {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		col.errorf(CodeEventHookInvalid, path, "event hook must be an array, got %T", raw)
		return nil
	}

	var actions []EventAction
	for i, entry := range list {
		entryPath := fmt.Sprintf("%s[%d]", path, i)
		action, keep := normalizeEventEntry(entry, entryPath, col)
		if keep {
			actions = append(actions, action)
		}
	}
	return actions
}

// normalizeEventEntry validates one {action, set} entry. keep is false
// only when the entry must be dropped (missing or unknown action).
func normalizeEventEntry(entry any, path string, col *issueCollector) (EventAction, bool) {
	m, ok := entry.(map[string]any)
	if !ok {
		col.errorf(CodeEventActionUnknown, path, "event entry must be an object, got %T", entry)
		return nil, false
	}

	name, ok := m["action"].(string)
	if !ok {
		col.errorf(CodeEventActionUnknown, path+".action", "event action is required")
		return nil, false
	}
	kind, ok := behaviorKindFromString(name)
	if !ok {
		col.errorf(CodeEventActionUnknown, path+".action", "unknown event action %q", name)
		return nil, false
	}

	set, _ := m["set"].(map[string]any)
	if m["set"] != nil && set == nil {
		col.errorf(CodeEventSetType, path+".set", "set must be an object, got %T", m["set"])
	}
	setPath := path + ".set"

	// A field-level type failure below records an error but the entry is
	// still appended, with only its well-typed fields populated. Unknown
	// actions are dropped instead.
	switch kind {
	case BehaviorSpin:
		a := SpinAction{}
		a.Set.Enabled = setBool(set, "enabled", setPath, col)
		a.Set.RPM = setNumber(set, "rpm", setPath, col)
		a.Set.Direction = setDirection(set, "direction", setPath, col)
		return a, true
	case BehaviorOrbit:
		a := OrbitAction{}
		a.Set.Enabled = setBool(set, "enabled", setPath, col)
		a.Set.RPM = setNumber(set, "rpm", setPath, col)
		a.Set.Radius = setNumber(set, "radius", setPath, col)
		a.Set.Center = setVec2(set, "center", setPath, col)
		return a, true
	case BehaviorPulse:
		a := PulseAction{}
		a.Set.Enabled = setBool(set, "enabled", setPath, col)
		a.Set.RPM = setNumber(set, "rpm", setPath, col)
		a.Set.Amplitude = setNumber(set, "amplitude", setPath, col)
		return a, true
	case BehaviorFade:
		a := FadeAction{}
		a.Set.Enabled = setBool(set, "enabled", setPath, col)
		a.Set.RPM = setNumber(set, "rpm", setPath, col)
		a.Set.From = setNumber(set, "from", setPath, col)
		a.Set.To = setNumber(set, "to", setPath, col)
		return a, true
	default:
		panic(fmt.Sprintf("stagekit: unhandled behavior kind %v", kind))
	}
}

// setNumber extracts an optional numeric set field.
func setNumber(set map[string]any, key, path string, col *issueCollector) *float64 {
	v, present := set[key]
	if !present {
		return nil
	}
	f, ok := asFloat(v)
	if !ok {
		col.errorf(CodeEventSetType, path+"."+key, "%s must be a number, got %T", key, v)
		return nil
	}
	return &f
}

// setBool extracts an optional boolean set field.
func setBool(set map[string]any, key, path string, col *issueCollector) *bool {
	v, present := set[key]
	if !present {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		col.errorf(CodeEventSetType, path+"."+key, "%s must be a boolean, got %T", key, v)
		return nil
	}
	return &b
}

// setDirection extracts an optional "cw"/"ccw" set field.
func setDirection(set map[string]any, key, path string, col *issueCollector) *Direction {
	v, present := set[key]
	if !present {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		col.errorf(CodeEventSetType, path+"."+key, "%s must be a string, got %T", key, v)
		return nil
	}
	var d Direction
	switch s {
	case "cw":
		d = DirectionCW
	case "ccw":
		d = DirectionCCW
	default:
		col.errorf(CodeEventSetType, path+"."+key, "%s must be \"cw\" or \"ccw\", got %q", key, s)
		return nil
	}
	return &d
}

// setVec2 extracts an optional {x, y} set field.
func setVec2(set map[string]any, key, path string, col *issueCollector) *Vec2 {
	v, present := set[key]
	if !present {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		col.errorf(CodeEventSetType, path+"."+key, "%s must be an {x, y} object, got %T", key, v)
		return nil
	}
	x, okX := asFloat(m["x"])
	y, okY := asFloat(m["y"])
	if !okX || !okY {
		col.errorf(CodeEventSetType, path+"."+key, "%s must have numeric x and y", key)
		return nil
	}
	return &Vec2{x, y}
}

// asFloat widens the numeric types YAML and JSON decoders produce.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
