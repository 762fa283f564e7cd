package production

import (
	"strings"

	"github.com/angelmondragon/lotflow-backend/pkg/enums"
)

// TransitionSeparator joins the source and target stage of a process label.
const TransitionSeparator = " TO "

// Process is a parsed memo process label. Single-stage labels carry the same
// stage in From and To.
type Process struct {
	Label        string      `json:"label"`
	From         enums.Stage `json:"from_stage"`
	To           enums.Stage `json:"to_stage"`
	IsTransition bool        `json:"is_transition"`
}

// ParseProcess turns a free-form label into a Process. Labels are not checked
// against the stage vocabulary and parsing never fails.
func ParseProcess(label string) Process {
	if !strings.Contains(label, TransitionSeparator) {
		return Process{
			Label: label,
			From:  enums.Stage(label),
			To:    enums.Stage(label),
		}
	}

	parts := strings.Split(label, TransitionSeparator)
	return Process{
		Label:        label,
		From:         enums.Stage(parts[0]),
		To:           enums.Stage(parts[1]),
		IsTransition: true,
	}
}

// String re-joins the stages. For labels holding a single separator the
// result equals the original label.
func (p Process) String() string {
	if !p.IsTransition {
		return string(p.From)
	}
	return string(p.From) + TransitionSeparator + string(p.To)
}
