// Package main provides the entry point for the MFD chart viewer.
package main

import (
	"log"
	"os"

	"mfd-charts/internal/app"
	"mfd-charts/internal/version"
	"mfd-charts/ui/mainwindow"
	"mfd-charts/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s", version.String())

	fyneApp := fyneapp.NewWithID("io.mfd-charts.viewer")
	fyneApp.Settings().SetTheme(&app.CockpitTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()
	log.Printf("Prefs: %s", appPrefs.Path())

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// Session from the command line, else the last one opened
	sessionPath := appPrefs.String(prefs.KeyLastSession)
	if len(os.Args) > 1 {
		sessionPath = os.Args[1]
	}
	if sessionPath != "" {
		win.OpenSession(sessionPath)
	}

	win.Start()
	win.ShowAndRun()
}
