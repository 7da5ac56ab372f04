package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/theirongolddev/scaleos/internal/model"
)

func TestPreset_BaseMatchesDefaults(t *testing.T) {
	for _, name := range []string{"", PresetBase} {
		a, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if a != model.DefaultAssumptions() {
			t.Fatalf("Preset(%q) = %+v, want DefaultAssumptions", name, a)
		}
	}
}

func TestPreset_AllValid(t *testing.T) {
	for _, name := range PresetNames() {
		a, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := a.Validate(); err != nil {
			t.Fatalf("Preset(%q).Validate: %v", name, err)
		}
	}
}

func TestPreset_Growth(t *testing.T) {
	a, err := Preset(PresetGrowth)
	if err != nil {
		t.Fatal(err)
	}
	if a.TenureMonths != 9 || a.InitialCEOs != 3 || a.NewCEOsPerMonth != 2 {
		t.Fatalf("growth inputs = %v/%v/%v, want 9/3/2", a.TenureMonths, a.InitialCEOs, a.NewCEOsPerMonth)
	}
	if a.HoursPerDay != 8 {
		t.Fatalf("growth HoursPerDay = %v, want 8", a.HoursPerDay)
	}
}

func TestPreset_Unknown(t *testing.T) {
	if _, err := Preset("moonshot"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("Preset(moonshot) err = %v, want ErrUnknownPreset", err)
	}
}

func TestPreset_ReturnsCopy(t *testing.T) {
	a, _ := Preset(PresetGrowth)
	a.TenureMonths = 99
	b, _ := Preset(PresetGrowth)
	if b.TenureMonths != 9 {
		t.Fatalf("preset mutated through returned value: tenure = %v", b.TenureMonths)
	}
}

func TestPresetNames(t *testing.T) {
	want := []string{PresetBase, PresetGrowth, PresetLifestyle}
	if got := PresetNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("PresetNames() = %v, want %v", got, want)
	}
}

func TestNextPreset(t *testing.T) {
	tests := map[string]string{
		PresetBase:      PresetGrowth,
		PresetGrowth:    PresetLifestyle,
		PresetLifestyle: PresetBase,
		"unknown":       PresetBase,
	}
	for in, want := range tests {
		if got := NextPreset(in); got != want {
			t.Errorf("NextPreset(%q) = %q, want %q", in, got, want)
		}
	}
}
