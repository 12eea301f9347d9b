// FloorCalc: flooring material estimator
//
// A cross-platform desktop application that estimates flooring area with
// waste, boxes to buy, material cost and auxiliary materials per room.
//
// Build:
//   go build -o floorcalc ./cmd/floorcalc
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o floorcalc.exe ./cmd/floorcalc
//   GOOS=darwin  GOARCH=amd64 go build -o floorcalc-darwin ./cmd/floorcalc
//
// Set FLOORCALC_DEBUG=1 for human-readable debug logging.

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"go.uber.org/zap"

	"github.com/piwi3910/FloorCalc/internal/project"
	"github.com/piwi3910/FloorCalc/internal/ui"
)

func newLogger() (*zap.Logger, error) {
	if os.Getenv("FLOORCALC_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	application := app.NewWithID("com.piwi3910.floorcalc")
	window := application.NewWindow("FloorCalc — Flooring Material Estimator")

	store := project.NewStore("", logger)
	logger.Info("starting FloorCalc", zap.String("config_dir", store.Dir()))

	appUI := ui.NewApp(application, window, logger, store)
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
