package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("add_units", createAddUnits)
	registry.Register("scale_units", createScaleUnits)
	registry.Register("set_horizon", createSetHorizon)
	registry.Register("extend_horizon", createExtendHorizon)
	registry.Register("shift_start", createShiftStart)
	registry.Register("set_cgf", createSetCGF)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}

	return factory(params)
}

// List returns the sorted names of all registered transforms.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "add_units:units=2"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

func intParam(transform, key string, params map[string]string) (int, error) {
	raw, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// Factory functions for each transform

func createAddUnits(params map[string]string) (ScenarioTransform, error) {
	units, err := intParam("add_units", "units", params)
	if err != nil {
		return nil, err
	}
	return &AddUnits{Units: units}, nil
}

func createScaleUnits(params map[string]string) (ScenarioTransform, error) {
	factor, err := intParam("scale_units", "factor", params)
	if err != nil {
		return nil, err
	}
	return &ScaleUnits{Factor: factor}, nil
}

func createSetHorizon(params map[string]string) (ScenarioTransform, error) {
	months, err := intParam("set_horizon", "months", params)
	if err != nil {
		return nil, err
	}
	return &SetHorizon{Months: months}, nil
}

func createExtendHorizon(params map[string]string) (ScenarioTransform, error) {
	months, err := intParam("extend_horizon", "months", params)
	if err != nil {
		return nil, err
	}
	return &ExtendHorizon{Months: months}, nil
}

func createShiftStart(params map[string]string) (ScenarioTransform, error) {
	months, err := intParam("shift_start", "months", params)
	if err != nil {
		return nil, err
	}
	return &ShiftStart{Months: months}, nil
}

func createSetCGF(params map[string]string) (ScenarioTransform, error) {
	raw, ok := params["enabled"]
	if !ok {
		return nil, fmt.Errorf("set_cgf requires 'enabled' parameter")
	}
	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid enabled value: %w", err)
	}
	return &SetCGF{Enabled: enabled}, nil
}
