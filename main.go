package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/codegen/internal/config"
	"github.com/ytget/codegen/internal/encode"
	"github.com/ytget/codegen/internal/session"
	"github.com/ytget/codegen/internal/storage"
	"github.com/ytget/codegen/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.codegen"
	AppName = "QR & Barcode Generator"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewGeneratorTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)

	// Initialize services; the output directory is created on first save
	settings := config.NewSettings(myApp)
	store := storage.NewStore(settings.GetOutputDirectory())
	encoder := encode.NewService(encode.DefaultOptions())
	sess := session.New(encoder, store, settings.GetDefaultKind())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, sess, store)

	// Show and run
	myWindow.ShowAndRun()
}
