package config

import "time"

// TickSchedule calculates the tick interval as the score grows.
// Every catch shortens the interval by Step while the interval is at or
// above Threshold, and the result never drops below Threshold.
type TickSchedule struct {
	Initial   time.Duration
	Step      time.Duration
	Threshold time.Duration
}

// Schedule returns the tick schedule described by the config.
func (t TickConfig) Schedule() TickSchedule {
	return TickSchedule{
		Initial:   time.Duration(t.InitialMS) * time.Millisecond,
		Step:      time.Duration(t.StepMS) * time.Millisecond,
		Threshold: time.Duration(t.ThresholdMS) * time.Millisecond,
	}
}

// Next returns the interval that follows cur after one catch.
func (s TickSchedule) Next(cur time.Duration) time.Duration {
	if cur < s.Threshold {
		return cur
	}
	next := cur - s.Step
	if next < s.Threshold {
		next = s.Threshold
	}
	return next
}
