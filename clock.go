package main

import (
	"time"
)

var globalTimer struct {
	start   time.Time
	now     time.Duration
	started bool
}

// UpdateGlobalTimer samples the wall clock once per tick so everything in a
// tick sees the same time.
func UpdateGlobalTimer() {
	gt := &globalTimer
	if !gt.started {
		gt.start = time.Now()
		gt.started = true
	}
	gt.now = time.Since(gt.start)
}

func GlobalTimerNow() time.Duration {
	return globalTimer.now
}

// Timer for profiling.
// Usage :
//
//	{
//		timer := NewProfTimer("some function")
//		defer timer.Report()
//		// reports some function took 10ms
//	}
type ProfTimer struct {
	Start time.Time
	Name  string
}

func NewProfTimer(name string) ProfTimer {
	return ProfTimer{
		Start: time.Now(),
		Name:  name,
	}
}

func (p ProfTimer) Report() {
	now := time.Now()
	InfoLogger.Printf("\"%v\" took %v\n", p.Name, now.Sub(p.Start))
}
