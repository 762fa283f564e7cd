package enums

import "fmt"

// Stage names a step in the processing pipeline. Values arriving from memo
// process labels are not validated against the vocabulary.
type Stage string

const (
	StageAcid      Stage = "ACID"
	StageHeat1     Stage = "HEAT 1"
	StageHeat2     Stage = "HEAT 2"
	StageRough     Stage = "ROUGH"
	StagePreform   Stage = "PREFORM"
	StageCutting   Stage = "CUTTING"
	StageCalibrate Stage = "CALIBRATE"

	// StageUnknown is reported for a lot without any memo.
	StageUnknown Stage = "Unknown"
)

var knownStages = []Stage{
	StageAcid,
	StageHeat1,
	StageHeat2,
	StageRough,
	StagePreform,
	StageCutting,
	StageCalibrate,
}

// KnownStages returns the fixed, ordered stage vocabulary used for aggregation.
func KnownStages() []Stage {
	out := make([]Stage, len(knownStages))
	copy(out, knownStages)
	return out
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	return string(s)
}

// IsKnown reports whether the stage is part of the fixed vocabulary.
func (s Stage) IsKnown() bool {
	for _, candidate := range knownStages {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStage converts raw input into a known Stage.
func ParseStage(value string) (Stage, error) {
	for _, candidate := range knownStages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stage %q", value)
}
