//go:build flowpprof

package main

func init() {
	PprofEnabled = true

	DebugPutsPersist("pprof", "true")
}
