package service

import (
	"strings"

	"github.com/pkg/errors"
)

// Employment types form a closed set; classification is authoritative here,
// not re-derived by clients.
const (
	EmploymentRegular        = "REGULAR"
	EmploymentPartTime       = "PART_TIME"
	EmploymentApprenticeship = "APPRENTICESHIP"
)

// ClassifyEmploymentType normalizes a free-form type string into the closed
// set, matching case-insensitively.
func ClassifyEmploymentType(value string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	normalized = strings.ReplaceAll(normalized, " ", "_")

	switch normalized {
	case EmploymentRegular:
		return EmploymentRegular, nil
	case EmploymentPartTime, "PARTTIME":
		return EmploymentPartTime, nil
	case EmploymentApprenticeship, "APPRENTICE":
		return EmploymentApprenticeship, nil
	default:
		return "", errors.Errorf("unknown employment type: %s", value)
	}
}
