package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ReloadShaderKey eb.Key = eb.KeyF5

	ShowDebugConsoleKey = eb.KeyF1
	ShowOriginKey       = eb.KeyF2

	NextPresetKey eb.Key = eb.KeyTab
	RestartKey    eb.Key = eb.KeyR

	CopyStateKey  eb.Key = eb.KeyC
	ScreenshotKey eb.Key = eb.KeyP

	QuitKey eb.Key = eb.KeyEscape
)
