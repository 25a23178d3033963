package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"flowgradient/config"
	"flowgradient/driver"
	"flowgradient/field"
	"flowgradient/term"
)

// frames are stepped at this rate when there's no display to pace them
const headlessFrame = time.Second / 60

func ParseSize(str string) (field.Vec2, error) {
	wStr, hStr, ok := strings.Cut(str, "x")
	if !ok {
		return field.Vec2{}, fmt.Errorf("invalid size %q, want WxH", str)
	}
	w, err := strconv.Atoi(wStr)
	if err != nil {
		return field.Vec2{}, fmt.Errorf("invalid size %q, want WxH: %w", str, err)
	}
	h, err := strconv.Atoi(hStr)
	if err != nil {
		return field.Vec2{}, fmt.Errorf("invalid size %q, want WxH: %w", str, err)
	}
	if w <= 0 || h <= 0 {
		return field.Vec2{}, fmt.Errorf("invalid size %q", str)
	}
	return field.V2(float64(w), float64(h)), nil
}

// FrameAt runs a fresh driver for preset from zero up to at and returns the
// frame it lands on.
func FrameAt(preset config.Preset, rng *rand.Rand, res field.Vec2, at time.Duration) field.Uniforms {
	d := driver.New(preset.Driver)
	d.Start(rng, 0, res)

	frames := int(at / headlessFrame)
	driver.Trace(d, res, frames, headlessFrame)

	u := d.Last()
	if frames == 0 || at > time.Duration(frames)*headlessFrame {
		// land exactly on at
		u = d.Step(at, res)
	}
	d.Stop()

	return u
}

func RunSnapshot(cfg *config.Config, rng *rand.Rand) error {
	res, err := ParseSize(FlagSize)
	if err != nil {
		return err
	}
	preset, err := cfg.Preset(FlagPreset)
	if err != nil {
		return err
	}

	if FlagAt < 0 {
		return fmt.Errorf("invalid -at %v, want a time >= 0", FlagAt)
	}

	at := time.Duration(FlagAt * float64(time.Second))
	u := FrameAt(preset, rng, res, at)

	model := field.NewModel(preset.Field, preset.Noise)

	data, err := RenderPNG(context.Background(), model, u)
	if err != nil {
		return fmt.Errorf("rendering snapshot: %w", err)
	}
	if err := os.WriteFile(FlagSnapshot, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	InfoLogger.Printf("wrote %s (%s, %v, origin %.1f,%.1f)",
		FlagSnapshot, preset.Field.Name, at, u.Origin.X, u.Origin.Y)

	return nil
}

func RunTrace(cfg *config.Config, rng *rand.Rand) error {
	if FlagFrames < 0 {
		return fmt.Errorf("invalid -frames %d, want a count >= 0", FlagFrames)
	}

	res, err := ParseSize(FlagSize)
	if err != nil {
		return err
	}
	preset, err := cfg.Preset(FlagPreset)
	if err != nil {
		return err
	}

	d := driver.New(preset.Driver)
	d.Start(rng, 0, res)
	records := driver.Trace(d, res, FlagFrames, headlessFrame)
	d.Stop()

	var w io.Writer = os.Stdout
	if FlagTrace != "-" {
		file, err := os.Create(FlagTrace)
		if err != nil {
			return fmt.Errorf("creating trace file: %w", err)
		}
		defer file.Close()
		w = file
	}

	return driver.WriteTraceCSV(w, records)
}

func RunTerm(cfg *config.Config, rng *rand.Rand) error {
	preset, err := cfg.Preset(FlagPreset)
	if err != nil {
		return err
	}

	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	model := field.NewModel(preset.Field, preset.Noise)
	loop := term.NewLoop(screen, model, driver.New(preset.Driver), rng)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
