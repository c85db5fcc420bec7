//go:build js && wasm

// Command eaglermobile is the touch shim, compiled to WebAssembly and started
// by the loader userscript at document-start.
package main

import (
	"go.uber.org/zap"

	"github.com/frudas24/eaglermobile/internal/capability"
	"github.com/frudas24/eaglermobile/internal/clock"
	"github.com/frudas24/eaglermobile/internal/config"
	"github.com/frudas24/eaglermobile/internal/dom"
	"github.com/frudas24/eaglermobile/internal/input"
	"github.com/frudas24/eaglermobile/internal/layout"
	"github.com/frudas24/eaglermobile/internal/logging"
	"github.com/frudas24/eaglermobile/internal/session"
	"github.com/frudas24/eaglermobile/internal/surface"
	"github.com/frudas24/eaglermobile/internal/trace"
)

const desktopWarning = "WARNING: This script was created for mobile, and may break functionality in non-mobile browsers!"

func main() {
	page := dom.NewPage()

	cfg, cfgErr := config.ParseShim(dom.ReadConfig())
	if cfgErr != nil {
		cfg = config.DefaultShim()
	}
	logger, err := logging.New(cfg.LogLevel, false)
	if err != nil {
		logger, _ = logging.New("warn", false)
	}
	logger = logger.Named("eaglermobile")
	if cfgErr != nil {
		logger.Warn("invalid page config, using defaults", zap.Error(cfgErr))
	}

	touch := page.TouchSupported()
	if !touch && cfg.AlertOnDesktop {
		page.Alert(desktopWarning)
	}
	mode := cfg.Mode.Resolve(touch)
	logger.Info("starting", zap.String("mode", string(mode)), zap.Bool("touch", touch))

	sess := session.New()
	bridgeID := layout.Default().Bridge.ID
	patches := dom.Patches{
		Policy: capability.DefaultActionPolicy{BridgeID: bridgeID, Scope: cfg.PreventDefaultScope},
		Logger: logger,
	}
	var simLock *capability.SimulatedPointerLock
	if mode == capability.ModeSimulated {
		simLock = capability.NewSimulatedPointerLock(sess, page, nil)
		patches.PointerLock = simLock
		patches.Fullscreen = capability.NewSimulatedFullscreen(sess, page)
		patches.Inputs = capability.NewSimulatedInput(page.Inputs())
	} else {
		patches.PointerLock = capability.NewNativePointerLock(page.PointerLockNatives())
		patches.Fullscreen = capability.NewNativeFullscreen(page.FullscreenNatives())
		patches.Inputs = capability.NewNativeInput(page.Inputs())
	}
	page.Install(patches)

	vis, err := injectStyles(page)
	if err != nil {
		logger.Error("style injection failed", zap.Error(err))
		dom.SignalReady()
		return
	}
	dom.SignalReady()

	layouts := make(chan layout.Layout, 1)
	go func() { layouts <- loadLayout(cfg.LayoutURL, bridgeID, logger) }()

	canvasEl := page.WaitFor("canvas")
	l := <-layouts

	window := dom.WindowDispatcher()
	canvas := dom.CanvasDispatcher(canvasEl)
	var tracer *trace.Tracer
	if cfg.TraceURL != "" {
		sink, err := dom.NewWebSocketSink(cfg.TraceURL)
		if err != nil {
			logger.Warn("trace disabled", zap.Error(err))
		} else {
			tracer = trace.NewTracer(sink)
			_ = tracer.Hello(page.UserAgent())
			window = trace.Tee(window, tracer, logger)
			canvas = trace.Tee(canvas, tracer, logger)
			logger.Info("tracing", zap.String("url", cfg.TraceURL), zap.String("session", tracer.Session()))
		}
	}

	surf, err := surface.Build(page, l, surface.Deps{
		Emitter:    input.NewEmitter(window, canvas),
		Session:    sess,
		Clock:      clock.Real{},
		Visibility: vis,
		Canvas:     dom.NewElement(canvasEl),
		Logger:     logger.Named("surface"),
	})
	if err != nil {
		logger.Error("control surface build failed", zap.Error(err))
		return
	}

	onLockChange := func(locked bool) {
		vis.Apply(locked)
		if !locked {
			if err := surf.Release(); err != nil {
				logger.Debug("release failed", zap.Error(err))
			}
		}
		if tracer != nil {
			_ = tracer.State(sess.Snapshot())
		}
	}
	if simLock != nil {
		simLock.SetOnChange(onLockChange)
	} else {
		page.OnDocument(capability.EventPointerLockChange, func() {
			el := patches.PointerLock.PointerLockElement()
			sess.SetPointerLock(el)
			onLockChange(el != nil)
		})
	}

	select {}
}

// injectStyles adds the two visibility blocks and the control stylesheet.
func injectStyles(page *dom.Page) (*surface.Visibility, error) {
	inGame, err := page.InjectStyle(surface.InGameStyleID, surface.InGameStyleCSS)
	if err != nil {
		return nil, err
	}
	inMenu, err := page.InjectStyle(surface.InMenuStyleID, surface.InMenuStyleCSS)
	if err != nil {
		return nil, err
	}
	if _, err := page.InjectStyle("", surface.ControlStyleCSS); err != nil {
		return nil, err
	}
	return surface.NewVisibility(inGame, inMenu), nil
}

// loadLayout fetches the layout from url, falling back to the embedded
// default. The bridge id is pinned to the one the preventDefault patch was
// installed with.
func loadLayout(url, bridgeID string, logger *zap.Logger) layout.Layout {
	if url == "" {
		return layout.Default()
	}
	data, err := dom.Fetch(url)
	if err != nil {
		logger.Warn("layout fetch failed, using default", zap.String("url", url), zap.Error(err))
		return layout.Default()
	}
	l, err := layout.Parse(data)
	if err != nil {
		logger.Warn("layout rejected, using default", zap.String("url", url), zap.Error(err))
		return layout.Default()
	}
	if l.Bridge.ID != bridgeID {
		logger.Warn("layout bridge id ignored", zap.String("id", l.Bridge.ID), zap.String("using", bridgeID))
		l.Bridge.ID = bridgeID
	}
	return l
}
