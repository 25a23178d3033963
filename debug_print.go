package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs           []DebugMsg
	PersistentDebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = putDebugMsg(dm.DebugMsgs, key, value)
}

func DebugPrintfPersist(key, fmtStr string, values ...any) {
	DebugPutsPersist(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPutsPersist(key, value string) {
	dm := &TheDebugPrintManager
	dm.PersistentDebugMsgs = putDebugMsg(dm.PersistentDebugMsgs, key, value)
}

func putDebugMsg(msgs []DebugMsg, key, value string) []DebugMsg {
	for i, msg := range msgs {
		if msg.Key == key {
			msgs[i].Value = value
			return msgs
		}
	}
	return append(msgs, DebugMsg{Key: key, Value: value})
}

// DebugText is every message, persistent ones first, one per line.
func DebugText() string {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	msgCounter := 0
	total := len(dm.PersistentDebugMsgs) + len(dm.DebugMsgs)

	for _, msgs := range [][]DebugMsg{dm.PersistentDebugMsgs, dm.DebugMsgs} {
		for _, msg := range msgs {
			// builder doesn't actually errors out
			// no need to check error
			dm.builder.WriteString(msg.Key)
			dm.builder.WriteString(": ")
			dm.builder.WriteString(msg.Value)

			msgCounter++
			if msgCounter != total {
				dm.builder.WriteString("\n")
			}
		}
	}

	return dm.builder.String()
}

func DrawDebugMsgs(dst *eb.Image) {
	text := DebugText()
	if text == "" {
		return
	}

	// ebitenutil's debug font is 6x16
	const (
		charW      = 6
		lineH      = 16
		hozMargin  = 5
		vertMargin = 5
	)

	lines := strings.Split(text, "\n")
	longest := 0
	for _, line := range lines {
		longest = max(longest, len(line))
	}

	boxW := float32(longest*charW + hozMargin*2)
	boxH := float32(len(lines)*lineH + vertMargin*2)

	ebv.DrawFilledRect(dst, 0, 0, boxW, boxH, color.NRGBA{0, 0, 0, 180}, false)
	ebu.DebugPrintAt(dst, text, hozMargin, vertMargin)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
