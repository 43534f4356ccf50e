package usecase

import (
	"github.com/piresc/armada/internal/pkg/models"
)

// EvaluateTransition maps a containment state change to the transition the
// region's rule type cares about. It returns ok=false when the pair of
// states does not constitute a reportable transition for the rule.
//
// FORBIDDEN regions report entering, STAY_IN regions report leaving, and
// STANDARD regions report both directions at informational severity.
func EvaluateTransition(rule models.RuleType, wasInside, isInsideNow bool) (models.TransitionKind, models.AlertSeverity, bool) {
	if wasInside == isInsideNow {
		return "", "", false
	}

	entered := !wasInside && isInsideNow

	switch rule {
	case models.RuleForbidden:
		if entered {
			return models.TransitionEnter, models.SeverityWarning, true
		}
	case models.RuleStayIn:
		if !entered {
			return models.TransitionExit, models.SeverityWarning, true
		}
	case models.RuleStandard:
		if entered {
			return models.TransitionEnter, models.SeverityInfo, true
		}
		return models.TransitionExit, models.SeverityInfo, true
	}

	return "", "", false
}
