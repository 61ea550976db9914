// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"mfd-charts/internal/app"
	"mfd-charts/internal/chart"
	"mfd-charts/internal/chartview"
	chartimage "mfd-charts/internal/image"
	"mfd-charts/internal/render"
	"mfd-charts/internal/version"
	"mfd-charts/pkg/colorutil"
	"mfd-charts/ui/canvas"
	"mfd-charts/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	frameInterval = 16 * time.Millisecond
	watchInterval = 2 * time.Second
)

// MainWindow is the primary application window. It hosts one chart view and
// serializes every call into it behind mu.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	mu      sync.Mutex
	view    *chartview.View
	surface *render.Surface
	loader  *chartimage.Loader

	canvas    *canvas.ChartCanvas
	info      *infoHeader
	statusBar *widget.Label

	watcher *app.SessionWatcher
	startup *pendingSession
	stopCh  chan struct{}
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(version.String())

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
		loader: chartimage.NewLoader(4),
		stopCh: make(chan struct{}),
	}

	mw.watcher = app.NewSessionWatcher(watchInterval, mw.reloadSession)
	mw.startup = &pendingSession{open: mw.openSession}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	w := float32(p.FloatWithFallback(prefs.KeyWindowWidth, 600))
	h := float32(p.FloatWithFallback(prefs.KeyWindowHeight, 800))
	mw.Resize(fyne.NewSize(w, h))
	mw.SetCloseIntercept(mw.onClose)

	go mw.frameLoop()
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	cfg := mw.prefs.ViewConfig()

	mw.surface = render.NewSurface(600, 760)
	mw.info = newInfoHeader()
	mw.view = chartview.New(cfg, mw.surface, mw.loader, mw.state.Sim, mw.info)
	mw.view.SetIcon(render.AircraftIcon(mw.prefs.MarkerColor(colorutil.Magenta)))

	mw.canvas = canvas.NewChartCanvas(mw.surface, cfg.PanStep)
	mw.canvas.OnEvent(mw.onChartEvent)
	mw.canvas.OnResize(mw.onCanvasResize)
	mw.canvas.OnTap(mw.onCanvasTap)

	mw.statusBar = widget.NewLabel("No chart")

	content := container.NewBorder(
		container.NewPadded(mw.info.container()), // top
		container.NewPadded(mw.statusBar),        // bottom
		nil,                                      // left
		nil,                                      // right
		mw.canvas,                                // center
	)
	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Session...", mw.onOpenSession),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Open Chart Image...", mw.onOpenChartImage),
		fyne.NewMenuItem("Open Chart Metadata...", mw.onOpenChartMeta),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Zoom", func() { mw.onChartEvent(chartview.EventZoomInc) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Pan Up", func() { mw.onChartEvent(chartview.EventPanUp) }),
		fyne.NewMenuItem("Pan Down", func() { mw.onChartEvent(chartview.EventPanDown) }),
		fyne.NewMenuItem("Pan Left", func() { mw.onChartEvent(chartview.EventPanLeft) }),
		fyne.NewMenuItem("Pan Right", func() { mw.onChartEvent(chartview.EventPanRight) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show/Hide Chart", mw.onToggleVisible),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventChartChanged, func(data interface{}) {
		imagePath, c := mw.state.CurrentChart()
		mw.mu.Lock()
		mw.view.LoadChart(imagePath, c)
		mw.mu.Unlock()
		if imagePath != "" {
			mw.updateStatus("Loading " + filepath.Base(imagePath))
		}
	})

	mw.state.On(app.EventSessionLoaded, func(data interface{}) {
		path, sess := mw.state.CurrentSession()
		mw.SetTitle(version.String() + " - " + filepath.Base(path))
		mw.prefs.SetString(prefs.KeyLastSession, path)
		mw.watcher.Watch(path, sess)
	})

	mw.state.On(app.EventChartImageReady, func(data interface{}) {
		mw.updateStatus("Chart loaded")
	})

	mw.state.On(app.EventChartImageFailed, func(data interface{}) {
		if err, ok := data.(error); ok {
			mw.updateStatus("Chart failed: " + err.Error())
		}
	})

	mw.state.On(app.EventCursorMoved, func(data interface{}) {
		if text, ok := data.(string); ok {
			mw.updateStatus(text)
		}
	})
}

// Start shows the chart view once the window is up.
func (mw *MainWindow) Start() {
	mw.mu.Lock()
	mw.view.Show()
	mw.mu.Unlock()
}

// frameLoop drives the view's render throttle, the track replay and load
// completions.
func (mw *MainWindow) frameLoop() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-mw.stopCh:
			return
		case res := <-mw.loader.Results():
			mw.onLoadResult(res)
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			mw.state.Tick(dt)

			mw.mu.Lock()
			rendered := mw.view.Update(dt)
			if rendered {
				mw.surface.Commit()
			}
			mw.mu.Unlock()

			if rendered {
				mw.canvas.Refresh()
			}
		}
	}
}

func (mw *MainWindow) onLoadResult(res chartimage.Result) {
	mw.mu.Lock()
	applied := mw.view.OnLoadComplete(res.Handle, res.Image)
	mw.mu.Unlock()

	if !applied {
		log.Printf("Chart load: dropping stale result %d for %s (latest %d)", res.Handle, res.Source, mw.loader.Latest())
		return
	}
	if res.Err != nil {
		mw.state.Emit(app.EventChartImageFailed, res.Err)
		return
	}
	mw.state.Emit(app.EventChartImageReady, res.Source)
}

func (mw *MainWindow) onChartEvent(name string) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.view.HandleEvent(name)
}

func (mw *MainWindow) onCanvasResize(width, height int) {
	mw.mu.Lock()
	mw.surface.SetContainerSize(width, height)
	if mw.view.IsVisible() {
		mw.view.Show()
	}
	mw.mu.Unlock()

	// the session's chart is fitted on load, so wait for the real size
	mw.startup.Ready()
}

func (mw *MainWindow) onCanvasTap(x, y float64) {
	mw.mu.Lock()
	p, lat, lon, geo := mw.view.ChartPointAt(x, y)
	mw.mu.Unlock()

	text := fmt.Sprintf("Chart x=%.0f y=%.0f", p.X, p.Y)
	if geo {
		text += fmt.Sprintf("  %.5f, %.5f", lat, lon)
	}
	mw.state.Emit(app.EventCursorMoved, text)
}

func (mw *MainWindow) onToggleVisible() {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	if mw.view.IsVisible() {
		mw.view.Hide()
	} else {
		mw.view.Show()
	}
}

// OpenSession loads a session once the canvas has been laid out.
func (mw *MainWindow) OpenSession(path string) {
	mw.startup.Request(path)
}

func (mw *MainWindow) openSession(path string) {
	if err := mw.state.LoadSession(path); err != nil {
		log.Printf("Failed to load session %s: %v", path, err)
		mw.updateStatus("Session failed: " + err.Error())
	}
}

func (mw *MainWindow) reloadSession(path string) {
	if err := mw.state.LoadSession(path); err != nil {
		log.Printf("Watch: reload failed: %v", err)
		mw.updateStatus("Reload failed: " + err.Error())
	}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefs.KeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefs.KeyLastDir, filepath.Dir(filePath))
}

// openFile shows a file open dialog filtered to extensions.
func (mw *MainWindow) openFile(exts []string, onPath func(path string)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		onPath(path)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter(exts))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// Menu action handlers

func (mw *MainWindow) onOpenSession() {
	mw.openFile([]string{".json"}, func(path string) {
		if err := mw.state.LoadSession(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	})
}

func (mw *MainWindow) onOpenChartImage() {
	mw.openFile(chartimage.SupportedFormats(), func(path string) {
		_, c := mw.state.CurrentChart()
		mw.state.SetChart(path, c)
	})
}

func (mw *MainWindow) onOpenChartMeta() {
	mw.openFile([]string{".json"}, func(path string) {
		c, err := chart.Load(path)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		imagePath, _ := mw.state.CurrentChart()
		mw.state.SetChart(imagePath, c)
	})
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About "+version.Name,
		fmt.Sprintf("%s\n\n"+
			"Procedure chart display with ownship overlay.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.String(), version.BuildTime, version.GitCommit),
		mw.Window)
}

// SavePreferences stores the window size and writes preferences to disk.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Prefs: save failed: %v", err)
	}
}

func (mw *MainWindow) onClose() {
	close(mw.stopCh)
	mw.watcher.Stop()
	mw.SavePreferences()
	mw.Close()
}
