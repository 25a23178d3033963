package main

import (
	"errors"
	"strings"
	"testing"

	"flowgradient/config"
	"flowgradient/driver"
	"flowgradient/field"
	"flowgradient/surface"
)

func stubBackground(t *testing.T, err error) {
	t.Helper()
	old := newBackground
	newBackground = func(field.Preset) (*Background, error) {
		return nil, err
	}
	t.Cleanup(func() { newBackground = old })
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatal(err)
	}
	a, err := NewApp(cfg, "", NewRand(3))
	if err != nil {
		t.Fatal(err)
	}
	a.Surface.Resize(800, 600, 1)
	return a
}

func TestMountCompileFailure(t *testing.T) {
	stubBackground(t, &surface.CompileError{
		Stage:  "compile",
		Recipe: "aurora",
		Err:    errors.New("unexpected token"),
	})

	a := newTestApp(t)
	a.mount()

	if !errors.Is(a.InitErr, surface.ErrCompileFailure) {
		t.Fatalf("InitErr = %v, want a compile failure", a.InitErr)
	}
	if s := a.Driver.State(); s != driver.StateUninitialized {
		t.Errorf("driver state = %v after a compile failure, want uninitialized", s)
	}

	a.Close()
	a.Close()
	if s := a.Driver.State(); s != driver.StateUninitialized {
		t.Errorf("driver state = %v after close, want uninitialized", s)
	}
}

func TestMountStartsDriver(t *testing.T) {
	stubBackground(t, nil)

	a := newTestApp(t)
	a.mount()

	if a.InitErr != nil {
		t.Fatalf("InitErr = %v", a.InitErr)
	}
	if !a.running() {
		t.Fatalf("driver state = %v, want running", a.Driver.State())
	}
	if !strings.Contains(DebugText(), "seeds: ") {
		t.Errorf("debug text %q doesn't show the seeds", DebugText())
	}

	a.Close()
	if s := a.Driver.State(); s != driver.StateStopped {
		t.Errorf("driver state = %v after close, want stopped", s)
	}
}

func TestReloadBackground(t *testing.T) {
	stubBackground(t, &surface.CompileError{Stage: "compile", Err: errors.New("bad")})

	a := newTestApp(t)
	a.mount()
	if a.running() {
		t.Fatal("driver running after a compile failure")
	}

	stubBackground(t, nil)
	a.reloadBackground()
	if a.InitErr != nil || !a.running() {
		t.Fatalf("after a good reload InitErr = %v, driver %v", a.InitErr, a.Driver.State())
	}

	stubBackground(t, &surface.CompileError{Stage: "compile", Err: errors.New("bad again")})
	a.reloadBackground()
	if a.running() {
		t.Errorf("driver still running after the shader stopped compiling")
	}
}

func TestSwitchPreset(t *testing.T) {
	stubBackground(t, nil)

	a := newTestApp(t)
	a.mount()

	prev, prevIndex := a.Driver, a.PresetIndex
	next := (prevIndex + 1) % len(a.PresetNames)

	a.switchPreset(next)

	if a.PresetIndex != next {
		t.Errorf("preset index = %d, want %d", a.PresetIndex, next)
	}
	if prev.State() != driver.StateStopped {
		t.Errorf("previous driver state = %v, want stopped", prev.State())
	}
	if !a.running() {
		t.Errorf("new driver state = %v, want running", a.Driver.State())
	}
}

func TestSwitchPresetFailureKeepsAnimation(t *testing.T) {
	stubBackground(t, nil)

	a := newTestApp(t)
	a.mount()

	prev, prevIndex := a.Driver, a.PresetIndex

	a.PresetNames = append(a.PresetNames, "missing")
	a.switchPreset(len(a.PresetNames) - 1)

	if a.Driver != prev || a.PresetIndex != prevIndex {
		t.Errorf("a failed switch replaced the preset")
	}
	if !a.running() {
		t.Errorf("driver state = %v after a failed switch, want running", a.Driver.State())
	}
}
