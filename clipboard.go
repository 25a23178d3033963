//go:build !js && (windows || cgo)

package main

import (
	"golang.design/x/clipboard"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	cm := &TheClipboardManager

	InfoLogger.Print("initializing clipboard")

	if err := clipboard.Init(); err != nil {
		ErrorLogger.Printf("clipboard is disabled: %v", err)
		return
	}
	cm.Initialized = true
}

func ClipboardWriteText(str string) bool {
	cm := &TheClipboardManager
	if cm.Initialized {
		clipboard.Write(clipboard.FmtText, []byte(str))
		return true
	}
	return false
}
