package main

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"renderdeck/pkg/client"
	"renderdeck/pkg/logging"
	"renderdeck/pkg/present"
	"renderdeck/pkg/settings"
	"renderdeck/pkg/studio"
)

func main() {
	logging.SetupLogging()

	cfg, err := settings.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	svc := client.New(cfg.ServerURL)
	sink := present.NewSink()
	st := studio.New(svc, sink)

	// The catalog loads in the background; the window comes up immediately
	// and the selector fills in once the fetch lands. A failure leaves the
	// selection empty and is recorded on the diagnostic channel.
	go func() {
		if err := st.LoadCatalog(); err != nil {
			log.Printf("Catalog fetch failed: %v", err)
		}
	}()

	go func() {
		win := app.NewWindow(
			app.Title(cfg.WindowTitle),
			app.Size(unit.Dp(1100), unit.Dp(700)),
		)
		controller := NewAppController(win, st, sink)
		if err := controller.loop(); err != nil {
			log.Fatalf("Error in application loop: %v", err)
		}
		st.Wait()
		os.Exit(0)
	}()
	app.Main()
}
