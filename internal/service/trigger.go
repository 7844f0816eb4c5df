package service

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/linkedlift/engagement-backend/internal/model"
)

// scheduleWindowMinutes is the half-width of the window around a rule's
// configured time-of-day within which a schedule rule fires.
const scheduleWindowMinutes = 30

// keywordTriggerChance stands in for an unimplemented "check recent posts for
// keyword matches" feature. Until a content source is wired in, keyword rules
// fire with this fixed probability.
const keywordTriggerChance = 0.2

// TriggerEvaluator decides whether a rule should schedule new work right now.
// It has no side effects.
type TriggerEvaluator struct {
	Rand Rand
}

func NewTriggerEvaluator(r Rand) *TriggerEvaluator {
	return &TriggerEvaluator{Rand: r}
}

// ShouldTrigger reports whether the rule fires at the given moment.
func (e *TriggerEvaluator) ShouldTrigger(rule *model.AutomationRule, now time.Time) bool {
	switch rule.TriggerType {
	case model.TriggerSchedule:
		if rule.ScheduleTime == nil {
			return false
		}
		return e.withinScheduleWindow(*rule.ScheduleTime, now)
	case model.TriggerKeyword:
		return e.Rand.Float64() < keywordTriggerChance
	case model.TriggerManual:
		return false
	default:
		return false
	}
}

// withinScheduleWindow compares absolute minute-of-day distance, ignoring the
// date. Times that straddle midnight are NOT treated as circularly close:
// a rule at 00:10 does not fire at 23:50.
func (e *TriggerEvaluator) withinScheduleWindow(scheduleTime string, now time.Time) bool {
	scheduleMinute, ok := parseMinuteOfDay(scheduleTime)
	if !ok {
		log.Println("⚠️ Invalid schedule_time, rule will never fire:", scheduleTime)
		return false
	}

	nowMinute := now.Hour()*60 + now.Minute()
	diff := nowMinute - scheduleMinute
	if diff < 0 {
		diff = -diff
	}
	return diff <= scheduleWindowMinutes
}

// parseMinuteOfDay parses "HH:MM" into minutes since midnight
func parseMinuteOfDay(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
