package usecase

import (
	"time"

	"monitor-srv/internal/model"
)

// Field vocabulary accepted by trigger conditions. Anything else resolves
// to "condition not satisfied", never an error.
const (
	fieldIntentScore       = "intent_score"
	fieldVelocity          = "velocity"
	fieldTechResearchScore = "tech_research_score"
)

// evaluateTrigger reports whether every condition of the trigger holds
// against the account state. Conditions are AND-combined; a trigger with
// no conditions never fires.
func (uc *usecase) evaluateTrigger(trigger model.Trigger, state *model.IntentMonitoringData, now time.Time) bool {
	if len(trigger.Conditions) == 0 {
		return false
	}
	for _, cond := range trigger.Conditions {
		if !uc.evaluateCondition(cond, state, now) {
			return false
		}
	}
	return true
}

func (uc *usecase) evaluateCondition(cond model.Condition, state *model.IntentMonitoringData, now time.Time) bool {
	switch cond.Operator {
	case model.OperatorGreaterThan, model.OperatorLessThan, model.OperatorEquals:
		value, ok := resolveField(cond.Field, state)
		if !ok {
			return false
		}
		return compare(cond.Operator, value, cond.Threshold)

	case model.OperatorIncreasesBy, model.OperatorDecreasesBy:
		return uc.evaluateWindowed(cond, state, now)

	default:
		// contains is reserved for string semantics the numeric snapshot
		// cannot express.
		return false
	}
}

// evaluateWindowed checks the change of the account's total score over
// the condition's lookback window against the threshold.
func (uc *usecase) evaluateWindowed(cond model.Condition, state *model.IntentMonitoringData, now time.Time) bool {
	if cond.Window <= 0 {
		return false
	}
	past, ok := state.TotalAt(now.Add(-cond.Window))
	if !ok {
		// Not enough history yet to cover the window.
		return false
	}

	delta := state.TotalScore() - past
	if cond.Operator == model.OperatorIncreasesBy {
		return delta >= cond.Threshold
	}
	return -delta >= cond.Threshold
}

func resolveField(field string, state *model.IntentMonitoringData) (float64, bool) {
	switch field {
	case fieldIntentScore:
		return state.TotalScore(), true
	case fieldVelocity:
		return state.Velocity, true
	case fieldTechResearchScore:
		return state.Signals[model.SignalTechnologySearches], true
	}

	// Named signal categories resolve directly.
	if value, ok := state.Signals[model.SignalCategory(field)]; ok {
		return value, true
	}
	return 0, false
}

func compare(op model.ConditionOperator, value, threshold float64) bool {
	switch op {
	case model.OperatorGreaterThan:
		return value > threshold
	case model.OperatorLessThan:
		return value < threshold
	case model.OperatorEquals:
		return value == threshold
	}
	return false
}
