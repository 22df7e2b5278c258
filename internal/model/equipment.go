package model

import "strings"

// EquipmentType is the closed set of unit operation categories the extractor
// is allowed to use. Anything else maps to EquipmentOther.
type EquipmentType string

const (
	EquipmentReactor            EquipmentType = "Reactor"
	EquipmentMixer              EquipmentType = "Mixer"
	EquipmentHeatExchanger      EquipmentType = "Heat Exchanger"
	EquipmentDistillationColumn EquipmentType = "Distillation Column"
	EquipmentAbsorber           EquipmentType = "Absorber"
	EquipmentScrubber           EquipmentType = "Scrubber"
	EquipmentEvaporator         EquipmentType = "Evaporator"
	EquipmentCondenser          EquipmentType = "Condenser"
	EquipmentSeparator          EquipmentType = "Separator"
	EquipmentFilter             EquipmentType = "Filter"
	EquipmentCentrifuge         EquipmentType = "Centrifuge"
	EquipmentPump               EquipmentType = "Pump"
	EquipmentCompressor         EquipmentType = "Compressor"
	EquipmentValve              EquipmentType = "Valve"
	EquipmentOther              EquipmentType = "Other"
)

var allEquipmentTypes = []EquipmentType{
	EquipmentReactor,
	EquipmentMixer,
	EquipmentHeatExchanger,
	EquipmentDistillationColumn,
	EquipmentAbsorber,
	EquipmentScrubber,
	EquipmentEvaporator,
	EquipmentCondenser,
	EquipmentSeparator,
	EquipmentFilter,
	EquipmentCentrifuge,
	EquipmentPump,
	EquipmentCompressor,
	EquipmentValve,
	EquipmentOther,
}

func AllEquipmentTypes() []EquipmentType {
	out := make([]EquipmentType, len(allEquipmentTypes))
	copy(out, allEquipmentTypes)
	return out
}

func (t EquipmentType) Valid() bool {
	for _, known := range allEquipmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ParseEquipmentType normalizes a raw category string. Unknown categories
// collapse to EquipmentOther rather than failing.
func ParseEquipmentType(s string) EquipmentType {
	candidate := EquipmentType(strings.TrimSpace(s))
	if candidate.Valid() {
		return candidate
	}
	return EquipmentOther
}
