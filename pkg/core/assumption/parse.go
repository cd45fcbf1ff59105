package assumption

import (
	"fmt"

	"financial_planner/pkg/core/utils"
)

// ParseLenient decodes hand-written or machine-repaired input: standard JSON,
// Hjson (comments, unquoted keys) or slightly broken JSON. The result goes
// through Decode, so missing fields keep their defaults.
func ParseLenient(data []byte) (AssumptionSet, error) {
	normalized, err := utils.Normalize(string(data))
	if err != nil {
		return AssumptionSet{}, fmt.Errorf("failed to parse assumptions: %w", err)
	}
	return Decode([]byte(normalized))
}
