package main

import (
	"image"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/AlSakharoB/lab2-search/src/charts"
	"github.com/AlSakharoB/lab2-search/src/timings"
)

// showViewer opens a window with both charts in tabs. It blocks until the
// window is closed. Requires a display; headless runs never get here.
func showViewer(tbl *timings.Table, opts charts.Options) error {
	compare, err := charts.RenderSearchCompare(tbl, opts)
	if err != nil {
		return err
	}
	collisions, err := charts.RenderCollisions(tbl, opts)
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow("Search benchmark charts")

	asCanvas := func(img image.Image) *canvas.Image {
		ci := canvas.NewImageFromImage(img)
		ci.FillMode = canvas.ImageFillContain
		// Half the raster size keeps the window manageable on laptop screens.
		ci.SetMinSize(fyne.NewSize(float32(img.Bounds().Dx())/2, float32(img.Bounds().Dy())/2))
		return ci
	}

	tabs := container.NewAppTabs(
		container.NewTabItem("Search times", asCanvas(compare)),
		container.NewTabItem("Collisions", asCanvas(collisions)),
	)
	w.SetContent(tabs)
	w.ShowAndRun()
	return nil
}
