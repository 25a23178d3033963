package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	_ "github.com/silbinarywolf/preferdiscretegpu"
	"gopkg.in/yaml.v3"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"

	"flowgradient/config"
	"flowgradient/driver"
	"flowgradient/field"
	"flowgradient/surface"
)

var (
	ScreenWidth  float64 = 800
	ScreenHeight float64 = 600
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var (
	FlagConfig    string
	FlagPreset    string
	FlagSeed      uint64
	FlagHotReload bool
	FlagPProf     bool
	FlagDebug     bool

	FlagTerm     bool
	FlagSnapshot string
	FlagTrace    string
	FlagAt       float64
	FlagSize     string
	FlagFrames   int
)

var PprofEnabled bool

func init() {
	flag.StringVar(&FlagConfig, "config", "", "preset file laid over the built in presets")
	flag.StringVar(&FlagPreset, "preset", "", "preset to start with")
	flag.Uint64Var(&FlagSeed, "seed", 0, "random seed for the origin drift, 0 picks one")
	flag.BoolVar(&FlagHotReload, "hot", false, "read shaders from ./assets so F5 can reload them")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.BoolVar(&FlagDebug, "debug", false, "start with the debug console open")

	flag.BoolVar(&FlagTerm, "term", false, "preview in the terminal instead of a window")
	flag.StringVar(&FlagSnapshot, "snapshot", "", "render one frame to this PNG file and exit")
	flag.StringVar(&FlagTrace, "trace", "", "write the origin trajectory as CSV to this file (- for stdout) and exit")
	flag.Float64Var(&FlagAt, "at", 0, "seconds into the animation for -snapshot")
	flag.StringVar(&FlagSize, "size", "800x600", "resolution for -snapshot and -trace")
	flag.IntVar(&FlagFrames, "frames", 600, "number of frames for -trace")
}

func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type App struct {
	Config      *config.Config
	PresetNames []string
	PresetIndex int
	Preset      config.Preset

	Surface surface.Surface
	Driver  *driver.Driver
	Model   *field.Model

	Background *Background
	// InitErr is why the background couldn't be set up. The app keeps
	// running without it.
	InitErr error

	Rng *rand.Rand

	Frame field.Uniforms

	ShowDebugConsole bool
	ShowOrigin       bool

	mounted bool
	closed  bool
}

func NewApp(cfg *config.Config, presetName string, rng *rand.Rand) (*App, error) {
	a := new(App)
	a.Config = cfg
	a.Rng = rng
	a.PresetNames = cfg.Names()

	if presetName == "" {
		presetName = cfg.Default
	}

	a.PresetIndex = -1
	for i, name := range a.PresetNames {
		if name == presetName {
			a.PresetIndex = i
		}
	}
	if a.PresetIndex < 0 {
		return nil, fmt.Errorf("unknown preset %q", presetName)
	}

	if err := a.setPreset(a.PresetIndex); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *App) setPreset(index int) error {
	name := a.PresetNames[index]

	preset, err := a.Config.Preset(name)
	if err != nil {
		return err
	}

	a.PresetIndex = index
	a.Preset = preset
	a.Model = field.NewModel(preset.Field, preset.Noise)
	a.Driver = driver.New(preset.Driver)

	DebugPutsPersist("preset", name)

	return nil
}

// newBackground is swapped out by tests that have no GPU.
var newBackground = NewBackground

// mount compiles the shader and starts the driver. A compile failure is
// logged once and the driver is never started.
func (a *App) mount() {
	a.mounted = true
	a.compileBackground()
	if a.InitErr != nil {
		return
	}
	a.startDriver()
}

func (a *App) startDriver() {
	a.Driver.Start(a.Rng, GlobalTimerNow(), a.Surface.Resolution())

	sx, sy := a.Driver.Seeds()
	DebugPrintfPersist("seeds", "%.2f, %.2f", sx, sy)
}

func (a *App) running() bool {
	return a.Driver.State() == driver.StateRunning
}

// reloadBackground recompiles the shader, keeping the animation going if
// it was already running.
func (a *App) reloadBackground() {
	a.compileBackground()
	if a.InitErr != nil {
		a.Driver.Stop()
		return
	}
	if !a.running() {
		a.startDriver()
	}
}

func (a *App) compileBackground() {
	if a.Background != nil {
		a.Background.Dispose()
		a.Background = nil
	}

	a.Background, a.InitErr = newBackground(a.Preset.Field)
	if a.InitErr != nil {
		ErrorLogger.Printf("background disabled: %v", a.InitErr)
	}
}

// Close stops the animation and frees the shader. It is safe to call more
// than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true

	a.Driver.Stop()
	if a.Background != nil {
		a.Background.Dispose()
	}
}

func (a *App) switchPreset(index int) {
	prev := a.Driver

	if err := a.setPreset(index); err != nil {
		ErrorLogger.Printf("can't switch preset: %v", err)
		return
	}
	prev.Stop()

	a.mount()
}

func (a *App) Update() error {
	ClearDebugMsgs()

	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	if ebi.IsKeyJustPressed(QuitKey) {
		return eb.Termination
	}

	if a.Surface.Empty() {
		return nil
	}

	if !a.mounted {
		a.mount()
	}

	// ==========================
	// hotkeys
	// ==========================
	if ebi.IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}
	if ebi.IsKeyJustPressed(ShowOriginKey) {
		a.ShowOrigin = !a.ShowOrigin
	}

	if ebi.IsKeyJustPressed(ReloadShaderKey) {
		if err := LoadShaderSources(); err != nil {
			ErrorLogger.Printf("failed to reload shaders: %v", err)
		} else {
			a.reloadBackground()
		}
	}

	if ebi.IsKeyJustPressed(NextPresetKey) {
		a.switchPreset((a.PresetIndex + 1) % len(a.PresetNames))
	}

	if ebi.IsKeyJustPressed(RestartKey) && a.running() {
		a.startDriver()
	}

	// ==========================
	// step the animation
	// ==========================
	a.Frame = a.Driver.Step(GlobalTimerNow(), a.Surface.Resolution())

	if a.running() {
		if ebi.IsKeyJustPressed(CopyStateKey) {
			a.copyState()
		}
		if ebi.IsKeyJustPressed(ScreenshotKey) {
			a.screenshot()
		}
	}

	DebugPrintf("size", "%dx%d (x%.2f)", a.Surface.Width, a.Surface.Height, a.Surface.Scale)
	DebugPrintf("time", "%.2f", a.Frame.Time)
	DebugPrintf("origin", "%.1f, %.1f", a.Frame.Origin.X, a.Frame.Origin.Y)
	DebugPrint("driver", a.Driver.State())
	if a.InitErr != nil {
		DebugPrint("error", a.InitErr)
	}

	return nil
}

// State is what C copies to the clipboard.
type State struct {
	Preset string     `yaml:"preset"`
	Seed   [2]float64 `yaml:"noise_offsets,flow"`
	Time   float64    `yaml:"time"`
	Origin [2]float64 `yaml:"origin,flow"`
	Size   [2]int     `yaml:"size,flow"`
}

func (a *App) State() State {
	sx, sy := a.Driver.Seeds()
	return State{
		Preset: a.Preset.Field.Name,
		Seed:   [2]float64{sx, sy},
		Time:   a.Frame.Time,
		Origin: [2]float64{a.Frame.Origin.X, a.Frame.Origin.Y},
		Size:   [2]int{a.Surface.Width, a.Surface.Height},
	}
}

func (a *App) copyState() {
	data, err := yaml.Marshal(a.State())
	if err != nil {
		ErrorLogger.Printf("failed to encode state: %v", err)
		return
	}
	if ClipboardWriteText(string(data)) {
		InfoLogger.Print("copied state to clipboard")
	}
}

func (a *App) screenshot() {
	model, u := a.Model, a.Frame
	go func() {
		name, err := TakeScreenshot(context.Background(), ".", model, u)
		if err != nil {
			ErrorLogger.Printf("failed to take screenshot: %v", err)
			return
		}
		InfoLogger.Printf("saved %s", name)
	}()
}

func (a *App) Draw(dst *eb.Image) {
	if a.Background != nil {
		a.Background.Draw(dst, a.Frame)
	}

	if a.ShowOrigin && a.running() {
		DrawOriginMarker(dst, a.Driver, a.Frame)
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

// LayoutF sizes the backing image in device pixels, capped at
// surface.MaxDeviceScale per logical pixel.
func (a *App) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	ScreenWidth = outsideWidth
	ScreenHeight = outsideHeight

	a.Surface.Resize(outsideWidth, outsideHeight, eb.Monitor().DeviceScaleFactor())

	return float64(a.Surface.Width), float64(a.Surface.Height)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(w), int(h)
}

func main() {
	flag.Parse()

	if FlagPProf || PprofEnabled {
		go func() {
			InfoLogger.Print("initializing pprof")
			InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	cfg, err := config.Load(FlagConfig)
	if err != nil {
		ErrorLogger.Fatal(err)
	}

	rng := NewRand(FlagSeed)

	switch {
	case FlagTrace != "":
		err = RunTrace(cfg, rng)
	case FlagSnapshot != "":
		err = RunSnapshot(cfg, rng)
	case FlagTerm:
		err = RunTerm(cfg, rng)
	default:
		err = RunWindow(cfg, rng)
	}

	if err != nil {
		ErrorLogger.Fatal(err)
	}
}

func RunWindow(cfg *config.Config, rng *rand.Rand) error {
	if err := LoadShaderSources(); err != nil {
		return err
	}

	InitClipboardManager()

	app, err := NewApp(cfg, FlagPreset, rng)
	if err != nil {
		return err
	}
	defer app.Close()

	app.ShowDebugConsole = FlagDebug

	eb.SetTPS(eb.SyncWithFPS)
	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("flowgradient")

	if err := eb.RunGame(app); err != nil && !errors.Is(err, eb.Termination) {
		return err
	}
	return nil
}
