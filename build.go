//go:build ignore

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"unicode/utf8"

	"flowgradient/misc"
)

const SettingsPath = "build-settings.txt"

const (
	WebBuildDir = "./web_build"
	WasmName    = "flowgradient.wasm"
)

var SettingsList []string
var DefaultSettings = make(map[string]bool)
var ReleaseSettings = make(map[string]bool)
var SettingsComments = make(map[string]string)

func init() {
	setDefault := func(name string, value, release bool, comment string) {
		SettingsList = append(SettingsList, name)
		DefaultSettings[name] = value
		ReleaseSettings[name] = release
		SettingsComments[name] = comment
	}

	setDefault("pprof", false, false, "Serve pprof on localhost:6060.")
	setDefault("opt", true, true, "Optimize and inline.")
	setDefault("wasm-opt", false, true, "Optimize wasm (requires wasm-opt from https://github.com/WebAssembly/binaryen).")
	setDefault("strip", false, true, "Strip symbols and DWARF from the binary.")
	setDefault("no-vcs", false, true, "Stop Go compiler from stamp binary with version control information.")
}

func PrintUsage() {
	scriptName := misc.GetScriptName()

	fmt.Printf("\n")
	fmt.Printf("Usage of %s:\n", scriptName)
	fmt.Printf("\n")
	fmt.Printf("go run %s\n", scriptName)
	fmt.Printf("go run %s [target]\n", scriptName)
	fmt.Printf("go run %s release [target]\n", scriptName)
	fmt.Printf("\n")
	fmt.Printf("valid targets:\n")
	fmt.Printf("  desktop\n")
	fmt.Printf("  web\n")
	fmt.Printf("  all\n")
	fmt.Printf("\n")
	fmt.Printf("build settings are read from %s\n", SettingsPath)
	fmt.Printf("\n")
	fmt.Printf("but if you do\n")
	fmt.Printf("go run %s release [target]\n", scriptName)
	fmt.Printf("it uses release settings\n")
	fmt.Printf("\n")
}

func main() {
	args := os.Args[1:]

	// print help
	{
		helps := []string{
			"help",
			"-help",
			"--help",
			"h",
			"-h",
			"--h",
		}
		if len(args) > 0 && slices.Contains(helps, args[0]) {
			PrintUsage()
			os.Exit(1)
		}
	}

	var buildTarget = "desktop"
	var useReleaseSetting = false

	// parse flags
	if len(args) == 1 {
		buildTarget = args[0]
	} else if len(args) == 2 {
		if args[0] != "release" {
			misc.ErrLogger.Printf("%s is not a vaid argument", strings.Join(args, " "))
			PrintUsage()
			os.Exit(1)
		}
		useReleaseSetting = true
		buildTarget = args[1]
	} else if len(args) > 2 {
		misc.ErrLogger.Printf("too many arguments")
		PrintUsage()
		os.Exit(1)
	}

	if !(buildTarget == "desktop" || buildTarget == "web" || buildTarget == "all") {
		misc.ErrLogger.Printf("%s is not a vaid target", buildTarget)
		PrintUsage()
		os.Exit(1)
	}

	var settings map[string]bool

	if useReleaseSetting {
		misc.InfoLogger.Printf("using release settings")
		settings = CopySettings(ReleaseSettings)
	} else {
		// if settings file doesn't exist, create one
		if exist, err := misc.CheckFileExists(SettingsPath); err != nil {
			misc.ErrLogger.Printf("could not check if %s file exists: %v", SettingsPath, err)
			os.Exit(1)
		} else if !exist {
			misc.InfoLogger.Printf("couldn't find %s, making a default one", SettingsPath)

			if err := SaveSettings(SettingsPath, DefaultSettings); err != nil {
				misc.ErrLogger.Printf("could not write default settings to %s: %v", SettingsPath, err)
				os.Exit(1)
			}
		}

		misc.InfoLogger.Printf("loading settings from %s", SettingsPath)
		var err error
		settings, err = LoadSettings(SettingsPath)
		if err != nil {
			misc.ErrLogger.Printf("failed to load settings : %v", err)
			os.Exit(1)
		}
	}

	// print settings
	{
		nameSize := 0
		for _, name := range SettingsList {
			nameSize = max(nameSize, len(name))
		}
		fmt.Printf("\n")
		for _, name := range SettingsList {
			fmt.Printf("  %-*s : %v\n", nameSize, name, settings[name])
		}
		fmt.Printf("\n")
	}

	misc.InfoLogger.Printf("building %s", buildTarget)

	build := func(web bool) {
		if err := BuildApp(settings, web); err != nil {
			target := "desktop"
			if web {
				target = "web"
			}
			misc.ErrLogger.Printf("failed to build for %s: %v", target, err)
			os.Exit(ExitCode(err))
		}
	}

	switch buildTarget {
	case "desktop":
		build(false)
	case "web":
		build(true)
	case "all":
		build(false)
		build(true)
	}
}

func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

func SetMissingSettingsToDefault(settings map[string]bool) {
	for _, name := range SettingsList {
		if _, ok := settings[name]; !ok {
			settings[name] = DefaultSettings[name]
		}
	}
}

func CopySettings(settings map[string]bool) map[string]bool {
	settingsCopy := make(map[string]bool)
	for k, v := range settings {
		settingsCopy[k] = v
	}

	SetMissingSettingsToDefault(settingsCopy)

	return settingsCopy
}

func SaveSettings(path string, settings map[string]bool) error {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "// settings file for building\n")
	fmt.Fprintf(sb, "// lines starting with // are comments\n")
	fmt.Fprintf(sb, "\n")
	for _, settingName := range SettingsList {
		fmt.Fprintf(sb, "// %s\n", SettingsComments[settingName])
		fmt.Fprintf(sb, "%s %v\n", settingName, settings[settingName])
		fmt.Fprintf(sb, "\n")
	}
	return os.WriteFile(path, []byte(sb.String()), 0664)
}

func LoadSettings(path string) (map[string]bool, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(file) {
		return nil, fmt.Errorf("not a valid utf8 file")
	}

	text := strings.ReplaceAll(string(file), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	settings := CopySettings(DefaultSettings)

	for i, line := range lines {
		logWarning := func(format string, a ...any) {
			fileAndLine := fmt.Sprintf("%s:%d: ", path, i+1)
			misc.WarnLogger.Printf(fileAndLine+format, a...)
		}

		trimmed := strings.TrimSpace(line)

		if len(trimmed) <= 0 || strings.HasPrefix(trimmed, "//") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			logWarning("\"%s\" doesn't have two fields, ignored", line)
			continue
		}

		if _, ok := DefaultSettings[fields[0]]; !ok {
			logWarning("\"%s\" is not a valid option, ignored", fields[0])
			continue
		}

		switch fields[1] {
		case "true":
			settings[fields[0]] = true
		case "false":
			settings[fields[0]] = false
		default:
			logWarning("\"%s\" is not true or false, ignored", fields[1])
		}
	}

	return settings, nil
}

func RunCmd(cmd *exec.Cmd) error {
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	misc.InfoLogger.Printf("%s", cmd.String())

	fmt.Printf("\n")
	err := cmd.Run()
	fmt.Printf("\n")

	return err
}

func BuildApp(settings map[string]bool, buildWeb bool) error {
	tags := ""
	if settings["pprof"] {
		tags += "flowpprof,"
	}

	gcFlags := "-e -l -N"
	if settings["opt"] {
		gcFlags = "-e"
	}

	dst := "flowgradient"
	if runtime.GOOS == "windows" {
		dst += ".exe"
	}
	if buildWeb {
		dst = filepath.Join(WebBuildDir, WasmName)
	}

	cmd := exec.Command(
		"go",
		"build",
		"-o", dst,
		"-tags="+tags,
		"-gcflags=all="+gcFlags,
	)

	if settings["strip"] {
		cmd.Args = append(cmd.Args, "-ldflags=-s -w")
	}
	if settings["no-vcs"] {
		cmd.Args = append(cmd.Args, "-buildvcs=false")
	}

	if buildWeb {
		cmd.Env = append(cmd.Env, os.Environ()...)
		cmd.Env = append(cmd.Env, "GOOS=js")
		cmd.Env = append(cmd.Env, "GOARCH=wasm")
	}

	if err := RunCmd(cmd); err != nil {
		return err
	}

	if !buildWeb {
		return nil
	}

	if err := CopyWasmExec(); err != nil {
		return fmt.Errorf("copying wasm_exec.js: %w", err)
	}
	if err := WriteIndexHTML(); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}

	if settings["wasm-opt"] {
		misc.InfoLogger.Printf("optimizing using wasm-opt")
		if !misc.CheckExeExists("wasm-opt") {
			return fmt.Errorf("couldn't find wasm-opt")
		}

		optDst := filepath.Join(WebBuildDir, "flowgradient-opt.wasm")

		cmd := exec.Command(
			"wasm-opt",
			dst,
			"-O2",
			"--enable-bulk-memory-opt",
			"-o",
			optDst,
		)
		if err := RunCmd(cmd); err != nil {
			return err
		}

		if err := os.Rename(dst, dst+".bak"); err != nil {
			return err
		}
		if err := os.Rename(optDst, dst); err != nil {
			return err
		}
	}

	return nil
}

// CopyWasmExec copies the js glue of the Go toolchain that built the wasm.
func CopyWasmExec() error {
	out, err := exec.Command("go", "env", "GOROOT").Output()
	if err != nil {
		return err
	}
	goroot := strings.TrimSpace(string(out))

	dst := filepath.Join(WebBuildDir, "wasm_exec.js")

	// moved from misc/wasm to lib/wasm in go 1.24
	for _, dir := range []string{"lib/wasm", "misc/wasm"} {
		src := filepath.Join(goroot, dir, "wasm_exec.js")
		if exists, err := misc.CheckFileExists(src); err != nil {
			return err
		} else if !exists {
			continue
		}

		need, err := misc.NeedToBuild([]string{dst}, []string{src})
		if err != nil {
			return err
		}
		if need {
			misc.InfoLogger.Printf("copying %s to %s", src, dst)
			return misc.CopyFile(src, dst, 0664)
		}
		return nil
	}

	return fmt.Errorf("no wasm_exec.js in %s", goroot)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>flowgradient</title>
<style>html, body { margin: 0; height: 100%; background: #000; overflow: hidden; }</style>
</head>
<body>
<script src="wasm_exec.js"></script>
<script>
const go = new Go();
WebAssembly.instantiateStreaming(fetch("` + WasmName + `"), go.importObject).then(result => {
	go.run(result.instance);
});
</script>
</body>
</html>
`

// WriteIndexHTML writes a page that runs the wasm, unless one is already there.
func WriteIndexHTML() error {
	dst := filepath.Join(WebBuildDir, "index.html")
	if exists, err := misc.CheckFileExists(dst); err != nil || exists {
		return err
	}
	misc.InfoLogger.Printf("writing %s", dst)
	return os.WriteFile(dst, []byte(indexHTML), 0664)
}
