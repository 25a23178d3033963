package driver

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"flowgradient/field"
)

// TraceRecord is one frame of an origin trajectory.
type TraceRecord struct {
	Frame   int     `csv:"frame"`
	Time    float64 `csv:"time"`
	Width   float64 `csv:"width"`
	Height  float64 `csv:"height"`
	TargetX float64 `csv:"target_x"`
	TargetY float64 `csv:"target_y"`
	SmoothX float64 `csv:"smooth_x"`
	SmoothY float64 `csv:"smooth_y"`
	OriginX float64 `csv:"origin_x"`
	OriginY float64 `csv:"origin_y"`
}

// Trace steps a running driver through frames frames, dt apart, at a fixed
// resolution and records every hand-off. The first frame is stepped at
// start + dt. A negative frame count records nothing.
func Trace(d *Driver, res field.Vec2, frames int, dt time.Duration) []TraceRecord {
	frames = max(frames, 0)
	records := make([]TraceRecord, 0, frames)

	now := d.start
	for i := range frames {
		now += dt
		u := d.Step(now, res)
		target := d.Target(res)

		records = append(records, TraceRecord{
			Frame:   i,
			Time:    u.Time,
			Width:   res.X,
			Height:  res.Y,
			TargetX: target.X,
			TargetY: target.Y,
			SmoothX: d.origin.X,
			SmoothY: d.origin.Y,
			OriginX: u.Origin.X,
			OriginY: u.Origin.Y,
		})
	}

	return records
}

func WriteTraceCSV(w io.Writer, records []TraceRecord) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}
