package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/rgehrsitz/herdsim/internal/domain"
)

func baseParams() domain.SimulationParameters {
	return domain.SimulationParameters{
		UnitCount:      2,
		StartYear:      2026,
		StartMonth:     7,
		StartDay:       31,
		DurationMonths: 60,
		CGFEnabled:     true,
	}
}

func TestApplyTransforms_Sequence(t *testing.T) {
	base := baseParams()

	got, err := ApplyTransforms(base, []ScenarioTransform{
		&AddUnits{Units: 1},
		&ScaleUnits{Factor: 2},
		&ExtendHorizon{Months: 24},
		&SetCGF{Enabled: false},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got.UnitCount != 6 {
		t.Errorf("Expected 6 units, got %d", got.UnitCount)
	}
	if got.DurationMonths != 84 {
		t.Errorf("Expected 84 months, got %d", got.DurationMonths)
	}
	if got.CGFEnabled {
		t.Error("Expected CGF to be disabled")
	}
	if base.UnitCount != 2 || !base.CGFEnabled {
		t.Error("Base parameters must not change")
	}
}

func TestApplyTransforms_Empty(t *testing.T) {
	base := baseParams()
	got, err := ApplyTransforms(base, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != base {
		t.Errorf("Expected unchanged parameters, got %+v", got)
	}
}

func TestApplyTransforms_Errors(t *testing.T) {
	base := baseParams()

	if _, err := ApplyTransforms(base, []ScenarioTransform{nil}); err == nil {
		t.Error("Expected error for nil transform")
	}

	_, err := ApplyTransforms(base, []ScenarioTransform{&AddUnits{Units: -2}})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !errors.Is(err, domain.ErrInvalidParameters) {
		t.Errorf("Expected ErrInvalidParameters in chain, got %v", err)
	}
	var terr *TransformError
	if !errors.As(err, &terr) || terr.TransformName != "add_units" {
		t.Errorf("Expected TransformError from add_units, got %v", err)
	}

	if _, err := ApplyTransforms(base, []ScenarioTransform{&ExtendHorizon{Months: -60}}); err == nil {
		t.Error("Expected error when horizon drops below one month")
	}
	if _, err := ApplyTransforms(base, []ScenarioTransform{&ScaleUnits{Factor: 0}}); err == nil {
		t.Error("Expected error for zero factor")
	}
	if _, err := ApplyTransforms(base, []ScenarioTransform{&SetHorizon{Months: 0}}); err == nil {
		t.Error("Expected error for empty horizon")
	}
}

func TestShiftStart(t *testing.T) {
	base := baseParams() // 31 Aug 2026

	got, err := (&ShiftStart{Months: 6}).Apply(base)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got.StartYear != 2027 || got.StartMonth != 1 {
		t.Errorf("Expected Feb 2027, got %d/%d", got.StartYear, got.StartMonth)
	}
	if got.StartDay != 28 {
		t.Errorf("Expected day clamped to 28, got %d", got.StartDay)
	}

	got, _ = (&ShiftStart{Months: -8}).Apply(base)
	if got.StartYear != 2025 || got.StartMonth != 11 {
		t.Errorf("Expected Dec 2025, got %d/%d", got.StartYear, got.StartMonth)
	}

	if !strings.Contains((&ShiftStart{Months: -3}).Description(), "earlier") {
		t.Error("Expected negative shift to read as earlier")
	}

	early := base
	early.StartYear = 1
	if err := (&ShiftStart{Months: -12}).Validate(early); err == nil {
		t.Error("Expected error for year 0")
	}
}

func TestTransformRegistry_ParseTransformSpec(t *testing.T) {
	registry := NewTransformRegistry()

	tests := []struct {
		spec string
		name string
	}{
		{"add_units:units=3", "add_units"},
		{"scale_units: factor = 2", "scale_units"},
		{"set_horizon:months=48", "set_horizon"},
		{"extend_horizon:months=-12", "extend_horizon"},
		{"shift_start:months=6", "shift_start"},
		{"set_cgf:enabled=false", "set_cgf"},
	}
	for _, tt := range tests {
		tr, err := registry.ParseTransformSpec(tt.spec)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.spec, err)
			continue
		}
		if tr.Name() != tt.name {
			t.Errorf("%s: expected %s, got %s", tt.spec, tt.name, tr.Name())
		}
	}

	for _, bad := range []string{"add_units", "add_units:count", "add_units:units=x", "unknown:x=1", "set_cgf:enabled=maybe", "set_horizon:"} {
		if _, err := registry.ParseTransformSpec(bad); err == nil {
			t.Errorf("Expected error for spec %q", bad)
		}
	}

	if len(registry.List()) != 6 {
		t.Errorf("Expected 6 transforms, got %v", registry.List())
	}
}

func TestTemplateRegistry_RegisterAndGet(t *testing.T) {
	registry := NewTemplateRegistry()
	registry.Register(Template{Name: "test_template", Description: "A test template"})

	if _, ok := registry.Get("TEST_TEMPLATE"); !ok {
		t.Fatal("Expected case-insensitive lookup to work")
	}
	if _, ok := registry.Get("nonexistent"); ok {
		t.Error("Expected not to find nonexistent template")
	}
}

func TestTemplateRegistry_Clone(t *testing.T) {
	registry := CreateBuiltInTemplates()
	count := len(registry.List())

	clone := registry.Clone()
	clone.Register(Template{Name: "custom", Description: "one-off"})

	if _, ok := registry.Get("custom"); ok {
		t.Error("Expected the original registry to be unchanged")
	}
	if _, ok := clone.Get("add_unit"); !ok {
		t.Error("Expected the clone to keep the built-in templates")
	}
	if got := len(clone.List()); got != count+1 {
		t.Errorf("Expected %d templates in the clone, got %d", count+1, got)
	}
}

func TestCreateBuiltInTemplates(t *testing.T) {
	registry := CreateBuiltInTemplates()
	base := baseParams()

	want := map[string]func(p domain.SimulationParameters) bool{
		"add_unit":         func(p domain.SimulationParameters) bool { return p.UnitCount == 3 },
		"double_units":     func(p domain.SimulationParameters) bool { return p.UnitCount == 4 },
		"horizon_3yr":      func(p domain.SimulationParameters) bool { return p.DurationMonths == 36 },
		"horizon_5yr":      func(p domain.SimulationParameters) bool { return p.DurationMonths == 60 },
		"horizon_10yr":     func(p domain.SimulationParameters) bool { return p.DurationMonths == 120 },
		"delay_6mo":        func(p domain.SimulationParameters) bool { return p.StartYear == 2027 && p.StartMonth == 1 },
		"delay_12mo":       func(p domain.SimulationParameters) bool { return p.StartYear == 2027 && p.StartMonth == 7 },
		"with_cgf":         func(p domain.SimulationParameters) bool { return p.CGFEnabled },
		"without_cgf":      func(p domain.SimulationParameters) bool { return !p.CGFEnabled },
		"expand_long_term": func(p domain.SimulationParameters) bool { return p.UnitCount == 4 && p.DurationMonths == 120 },
		"lean":             func(p domain.SimulationParameters) bool { return !p.CGFEnabled && p.DurationMonths == 60 },
	}

	for name, check := range want {
		tmpl, ok := registry.Get(name)
		if !ok {
			t.Errorf("Expected to find template: %s", name)
			continue
		}
		got, err := ApplyTemplate(base, tmpl)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if !check(got) {
			t.Errorf("%s: unexpected parameters %+v", name, got)
		}
	}

	if len(registry.List()) != len(want) {
		t.Errorf("Expected %d templates, got %d", len(want), len(registry.List()))
	}
}

func TestParseTemplateList(t *testing.T) {
	got := ParseTemplateList(" double_units, ,without_cgf ,")
	if len(got) != 2 || got[0] != "double_units" || got[1] != "without_cgf" {
		t.Errorf("Unexpected parse result: %v", got)
	}
	if ParseTemplateList("") != nil {
		t.Error("Expected nil for empty list")
	}
}

func TestGetTemplateHelp(t *testing.T) {
	help := GetTemplateHelp(CreateBuiltInTemplates())
	for _, want := range []string{"Unit Count:", "Horizon:", "Timing:", "Growing Fund:", "double_units", "herdsim compare"} {
		if !strings.Contains(help, want) {
			t.Errorf("Expected help to contain %q", want)
		}
	}
	if GetTemplateHelp(NewTemplateRegistry()) != "No templates registered" {
		t.Error("Expected empty registry message")
	}
}
