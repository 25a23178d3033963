package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"flowgradient/field"
)

// RenderPNG renders one frame of model on the CPU and encodes it as PNG.
func RenderPNG(ctx context.Context, model *field.Model, u field.Uniforms) ([]byte, error) {
	timer := NewProfTimer("rendering snapshot")
	defer timer.Report()

	w, h := int(u.Resolution.X), int(u.Resolution.Y)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("can't render a %dx%d snapshot", w, h)
	}

	img, err := field.RenderImage(ctx, w, h, model, u)
	if err != nil {
		return nil, err
	}

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, img); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// ScreenshotName picks a pic-<time>.png name in dirPath that isn't taken yet.
func ScreenshotName(dirPath string, now time.Time) (string, error) {
	timeStr := now.Format("0102150405")

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return "", err
	}

	taken := make(map[string]bool, len(entries))
	for _, entry := range entries {
		taken[entry.Name()] = true
	}

	filename := fmt.Sprintf("pic-%s.png", timeStr)
	for nameCounter := 2; taken[filename]; nameCounter++ {
		filename = fmt.Sprintf("pic-%s-(%d).png", timeStr, nameCounter)
	}

	return filename, nil
}

// TakeScreenshot writes one CPU rendered frame into dirPath and returns the
// file name.
func TakeScreenshot(ctx context.Context, dirPath string, model *field.Model, u field.Uniforms) (string, error) {
	toWrite, err := RenderPNG(ctx, model, u)
	if err != nil {
		return "", err
	}

	filename, err := ScreenshotName(dirPath, time.Now())
	if err != nil {
		return "", err
	}

	InfoLogger.Printf("bytes len : %d", len(toWrite))

	if err := os.WriteFile(filepath.Join(dirPath, filename), toWrite, 0644); err != nil {
		return "", err
	}

	return filename, nil
}
