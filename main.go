package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-colorable"
	log "github.com/sirupsen/logrus"

	"worldmap/pkg/engine/input"
	"worldmap/pkg/game/config"
	"worldmap/pkg/game/coords"
	"worldmap/pkg/game/devtools"
	"worldmap/pkg/game/mapview"
	"worldmap/pkg/game/places"
	"worldmap/pkg/game/renderer"
	ebitenrenderer "worldmap/pkg/game/renderer/ebiten"
	"worldmap/pkg/game/renderer/tui"
	"worldmap/pkg/game/state"
)

func initLogging(cfg *config.Config) {
	log.SetOutput(colorable.NewColorableStderr())
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	switch {
	case cfg.Debug:
		log.SetLevel(log.DebugLevel)
	case cfg.Renderer == config.RendererTUI:
		// Info lines would scroll the map off the terminal
		log.SetLevel(log.WarnLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func initLocale(locale string) {
	gotext.Configure("locales", locale, "default")

	if gotext.Get("WORLD_MAP") == "WORLD_MAP" {
		log.Warnf("no translations for locale %q, showing message keys", locale)
	}
}

// newRenderer picks the backend named in the config
func newRenderer(name string) renderer.Renderer {
	if name == config.RendererTUI {
		return tui.New()
	}
	return ebitenrenderer.New()
}

// Developer atlas layout
const (
	devAtlasRows    = 8
	devAtlasCols    = 8
	devAtlasSpacing = 40
)

// handleDevAction saves a frame dump (F8) or an HTML snapshot (F12)
func handleDevAction(screen *mapview.Screen, a input.Action, f mapview.Frame) {
	var (
		name, what string
		err        error
	)
	switch a {
	case input.ActionDebugDump:
		what = "frame dump"
		name, err = devtools.DumpFrameToFile(screen, f)
	case input.ActionScreenshot:
		what = "snapshot"
		name, err = devtools.SaveScreenshotHTML(screen, f)
	default:
		return
	}

	if err != nil {
		log.WithError(err).Warnf("could not save %s", what)
		renderer.ShowMessage(fmt.Sprintf(gotext.Get("SAVE_FAILED"), what))
		return
	}
	log.WithField("file", name).Info("saved developer output")
	renderer.ShowMessage(fmt.Sprintf(gotext.Get("SAVED_FILE"), name))
}

// loadPlaces picks the developer grid, a place file or the built-in atlas
func loadPlaces(cfg *config.Config) ([]places.Place, error) {
	switch {
	case cfg.DevAtlas:
		log.Info("using developer atlas")
		return devtools.DevPlaces(devAtlasRows, devAtlasCols, devAtlasSpacing, cfg.CenterX, cfg.CenterZ), nil
	case cfg.PlacesFile != "":
		list, err := places.LoadPlaces(cfg.PlacesFile)
		if err != nil {
			return nil, err
		}
		log.WithField("file", cfg.PlacesFile).Infof("loaded %d places", len(list))
		return list, nil
	default:
		return places.Builtin, nil
	}
}

func run(cfg *config.Config) error {
	session := state.NewSession(cfg.CenterX, cfg.CenterZ)

	source, err := loadPlaces(cfg)
	if err != nil {
		return err
	}

	// Movement reads the same held keys the map records
	keys := input.NewKeyState()
	screen := mapview.NewScreen(mapview.Options{
		Limits:    cfg.Limits(),
		PoiScale:  cfg.PoiScale,
		Clipboard: coords.SystemClipboard{},
	}, nil, session, keys)

	// The player marker reads the position captured for the frame
	atlas := places.NewAtlas(source, screen.Tracked(), places.Options{
		FadeDistance: cfg.PoiFadeDistance,
		PlayerName:   gotext.Get("PLAYER"),
	})
	screen.SetSource(atlas)
	log.Debugf("atlas holds %d POIs", atlas.Len())

	screen.OnTick(func(k *input.KeyState) { session.Tick(k) })
	screen.OnStatus(session.AddMessage)
	screen.OnStatus(renderer.ShowMessage)
	screen.OnDevAction(func(a input.Action, f mapview.Frame) {
		handleDevAction(screen, a, f)
	})

	renderer.SetRenderer(newRenderer(cfg.Renderer))
	if err := renderer.Init(); err != nil {
		return fmt.Errorf("init %s renderer: %w", cfg.Renderer, err)
	}

	renderer.ShowMessage(gotext.Get("WELCOME"))
	return renderer.Run(screen)
}

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	config.Set(cfg)

	initLogging(cfg)
	initLocale(cfg.Locale)

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
