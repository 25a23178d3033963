package main

import (
	"bytes"
	"context"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"flowgradient/config"
	"flowgradient/field"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		want    field.Vec2
		wantErr bool
	}{
		{"800x600", field.V2(800, 600), false},
		{"1x1", field.V2(1, 1), false},
		{"800", field.Vec2{}, true},
		{"0x600", field.Vec2{}, true},
		{"-5x5", field.Vec2{}, true},
		{"axb", field.Vec2{}, true},
		{"800x600junk", field.Vec2{}, true},
		{"800x600x2", field.Vec2{}, true},
		{"800x", field.Vec2{}, true},
	}

	for _, tt := range tests {
		got, err := ParseSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Eq(tt.want) {
			t.Errorf("ParseSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func loadPreset(t *testing.T, name string) config.Preset {
	t.Helper()
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatal(err)
	}
	p, err := cfg.Preset(name)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestFrameAt(t *testing.T) {
	preset := loadPreset(t, "aurora")
	res := field.V2(320, 240)

	for _, at := range []time.Duration{0, time.Second, 2500 * time.Millisecond} {
		u := FrameAt(preset, NewRand(7), res, at)
		if math.Abs(u.Time-at.Seconds()) > 1e-9 {
			t.Errorf("FrameAt(%v) time = %v", at, u.Time)
		}
		if !u.Resolution.Eq(res) {
			t.Errorf("FrameAt(%v) resolution = %v", at, u.Resolution)
		}
	}

	a := FrameAt(preset, NewRand(7), res, 3*time.Second)
	b := FrameAt(preset, NewRand(7), res, 3*time.Second)
	if a != b {
		t.Errorf("same seed gave %+v and %+v", a, b)
	}
}

func TestFrameAtNegative(t *testing.T) {
	preset := loadPreset(t, "aurora")
	res := field.V2(320, 240)

	u := FrameAt(preset, NewRand(7), res, -time.Second)
	if u.Time != 0 {
		t.Errorf("FrameAt(-1s) time = %v, want 0", u.Time)
	}
}

func TestHeadlessRejectsNegativeFlags(t *testing.T) {
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatal(err)
	}

	oldAt, oldFrames, oldSnapshot, oldTrace := FlagAt, FlagFrames, FlagSnapshot, FlagTrace
	defer func() {
		FlagAt, FlagFrames, FlagSnapshot, FlagTrace = oldAt, oldFrames, oldSnapshot, oldTrace
	}()

	dir := t.TempDir()

	FlagAt = -2
	FlagSnapshot = filepath.Join(dir, "snap.png")
	if err := RunSnapshot(cfg, NewRand(1)); err == nil {
		t.Errorf("RunSnapshot with -at %v succeeded", FlagAt)
	}
	if _, err := os.Stat(FlagSnapshot); err == nil {
		t.Errorf("RunSnapshot wrote %s after rejecting -at", FlagSnapshot)
	}

	FlagFrames = -10
	FlagTrace = filepath.Join(dir, "trace.csv")
	if err := RunTrace(cfg, NewRand(1)); err == nil {
		t.Errorf("RunTrace with -frames %v succeeded", FlagFrames)
	}
	if _, err := os.Stat(FlagTrace); err == nil {
		t.Errorf("RunTrace wrote %s after rejecting -frames", FlagTrace)
	}
}

func TestRenderPNG(t *testing.T) {
	preset := loadPreset(t, "ribbon")
	model := field.NewModel(preset.Field, preset.Noise)
	u := field.Uniforms{Resolution: field.V2(48, 32), Time: 2, Origin: field.V2(-14, 16)}

	data, err := RenderPNG(context.Background(), model, u)
	if err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 48 || b.Dy() != 32 {
		t.Fatalf("size = %v", b)
	}

	want := model.Eval(field.V2(10.5, 20.5), u).NRGBA()
	r, g, bl, _ := img.At(10, 20).RGBA()
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(bl>>8) != want.B {
		t.Errorf("pixel (10, 20) = %v %v %v, want %v", r>>8, g>>8, bl>>8, want)
	}

	if _, err := RenderPNG(context.Background(), model, field.Uniforms{}); err == nil {
		t.Error("empty resolution should fail")
	}
}

func TestScreenshotName(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	name, err := ScreenshotName(dir, now)
	if err != nil {
		t.Fatal(err)
	}
	if name != "pic-0309140507.png" {
		t.Fatalf("name = %q", name)
	}

	for _, taken := range []string{"pic-0309140507.png", "pic-0309140507-(2).png"} {
		if err := os.WriteFile(filepath.Join(dir, taken), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	name, err = ScreenshotName(dir, now)
	if err != nil {
		t.Fatal(err)
	}
	if name != "pic-0309140507-(3).png" {
		t.Errorf("name = %q, want the third free name", name)
	}
}

func TestDebugText(t *testing.T) {
	dm := &TheDebugPrintManager
	savedMsgs, savedPersist := dm.DebugMsgs, dm.PersistentDebugMsgs
	t.Cleanup(func() {
		dm.DebugMsgs = savedMsgs
		dm.PersistentDebugMsgs = savedPersist
	})
	dm.DebugMsgs = nil
	dm.PersistentDebugMsgs = nil

	DebugPutsPersist("preset", "aurora")
	DebugPuts("FPS", "60")
	DebugPuts("FPS", "59")
	DebugPutsPersist("preset", "ribbon")

	if got, want := DebugText(), "preset: ribbon\nFPS: 59"; got != want {
		t.Errorf("DebugText() = %q, want %q", got, want)
	}

	ClearDebugMsgs()
	if got := DebugText(); got != "preset: ribbon" {
		t.Errorf("after clear = %q", got)
	}
}
