package driver

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestTrace(t *testing.T) {
	d := New(AuroraConfig())
	d.Start(newRng(7), 3*time.Second, res)

	records := Trace(d, res, 120, frame)
	if len(records) != 120 {
		t.Fatalf("got %d records, want 120", len(records))
	}

	for i, r := range records {
		if r.Frame != i {
			t.Errorf("record %d has frame %d", i, r.Frame)
		}
		if i > 0 && r.Time <= records[i-1].Time {
			t.Errorf("time didn't advance at frame %d: %v -> %v", i, records[i-1].Time, r.Time)
		}
		if r.Width != res.X || r.Height != res.Y {
			t.Errorf("frame %d resolution = %vx%v", i, r.Width, r.Height)
		}
	}

	last := records[len(records)-1]
	if u := d.Last(); u.Origin.X != last.OriginX || u.Origin.Y != last.OriginY {
		t.Errorf("last record %+v doesn't match the driver's last hand-off %+v", last, u)
	}
}

func TestWriteTraceCSV(t *testing.T) {
	d := New(RibbonConfig())
	d.Start(newRng(8), 0, res)

	var buf bytes.Buffer
	if err := WriteTraceCSV(&buf, Trace(d, res, 10, frame)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 11 {
		t.Fatalf("got %d lines, want header plus 10 rows", len(lines))
	}

	const header = "frame,time,width,height,target_x,target_y,smooth_x,smooth_y,origin_x,origin_y"
	if lines[0] != header {
		t.Errorf("header = %q, want %q", lines[0], header)
	}
	if !strings.HasPrefix(lines[1], "0,") {
		t.Errorf("first row = %q, want frame 0", lines[1])
	}
}

func TestTraceNegativeFrames(t *testing.T) {
	d := New(AuroraConfig())
	d.Start(newRng(9), 0, res)

	if records := Trace(d, res, -60, frame); len(records) != 0 {
		t.Errorf("got %d records for a negative frame count", len(records))
	}
	if u := d.Last(); u.Time != 0 {
		t.Errorf("driver advanced to %v without any frames", u.Time)
	}
}
