package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/theirongolddev/scaleos/internal/model"
)

// Preset names.
const (
	PresetBase      = "base"
	PresetGrowth    = "growth"
	PresetLifestyle = "lifestyle"
)

// ErrUnknownPreset is returned for a preset name that is not defined.
var ErrUnknownPreset = errors.New("unknown preset")

// presets maps preset names to their assumption sets. Hour and day levers
// are shared by every preset.
var presets = map[string]func() model.Assumptions{
	PresetBase: model.DefaultAssumptions,
	PresetGrowth: func() model.Assumptions {
		a := model.DefaultAssumptions()
		a.TenureMonths = 9
		a.InitialCEOs = 3
		a.NewCEOsPerMonth = 2
		a.CEOPricePerMonth = 5500
		a.WorkshopBasePerMonth = 2
		a.WorkshopQuarterBonus = 2
		a.WorkshopPrice = 8000
		a.SprintsPerQuarter = 2
		a.SprintPrice = 30000
		a.OnDemandCourses = 10
		return a
	},
	PresetLifestyle: func() model.Assumptions {
		a := model.DefaultAssumptions()
		a.InitialCEOs = 1
		a.NewCEOsPerMonth = 0.5
		a.CEOPricePerMonth = 6000
		a.WorkshopQuarterBonus = 0
		a.WorkshopPrice = 8500
		a.SprintsPerQuarter = 0.5
		a.SprintPrice = 35000
		a.OnDemandCourses = 5
		return a
	},
}

// Preset returns the assumptions for a named preset. An empty name means base.
func Preset(name string) (model.Assumptions, error) {
	if name == "" {
		name = PresetBase
	}
	fn, ok := presets[name]
	if !ok {
		return model.Assumptions{}, fmt.Errorf("%w %q (want one of %v)", ErrUnknownPreset, name, PresetNames())
	}
	return fn(), nil
}

// PresetNames returns the defined presets with base first.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		if name != PresetBase {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{PresetBase}, names...)
}

// NextPreset returns the preset after name in PresetNames order, wrapping.
func NextPreset(name string) string {
	names := PresetNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return PresetBase
}
