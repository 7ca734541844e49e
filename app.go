package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"renderdeck/pkg/fields"
	"renderdeck/pkg/present"
	"renderdeck/pkg/studio"
)

// AppController wires the window to the studio. It reads the editors,
// forwards raw field text on submission, and shows whatever the sink and
// state machine currently hold. No orchestration logic lives here.
type AppController struct {
	win    *app.Window
	th     *material.Theme
	studio *studio.Studio
	sink   *present.Sink

	lightX, lightY, lightZ widget.Editor
	fromX, fromY, fromZ    widget.Editor
	toX, toY, toZ          widget.Editor
	upX, upY, upZ          widget.Editor

	scenarioClick widget.Clickable
	renderClick   widget.Clickable

	status statusLine

	lastImage *image.NRGBA
	imageOp   paint.ImageOp
}

// statusLine is the one piece of controller state touched from two
// goroutines: the frame loop sets it on user events, the submission
// goroutine sets it when a cycle completes.
type statusLine struct {
	mu    sync.Mutex
	text  string
	color color.NRGBA
}

func (s *statusLine) set(text string, c color.NRGBA) {
	s.mu.Lock()
	s.text = text
	s.color = c
	s.mu.Unlock()
}

func (s *statusLine) get() (string, color.NRGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, s.color
}

func NewAppController(win *app.Window, st *studio.Studio, sink *present.Sink) *AppController {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	ac := &AppController{
		win:    win,
		th:     th,
		studio: st,
		sink:   sink,
	}

	for _, ed := range []*widget.Editor{
		&ac.lightX, &ac.lightY, &ac.lightZ,
		&ac.fromX, &ac.fromY, &ac.fromZ,
		&ac.toX, &ac.toY, &ac.toZ,
		&ac.upX, &ac.upY, &ac.upZ,
	} {
		ed.SingleLine = true
	}

	// Reference pose: the hexagon camera from the render service's demo
	// scenes, with the light above and behind the eye.
	ac.fromX.SetText("0")
	ac.fromY.SetText("1.5")
	ac.fromZ.SetText("-5")
	ac.toX.SetText("0")
	ac.toY.SetText("1")
	ac.toZ.SetText("0")
	ac.upX.SetText("0")
	ac.upY.SetText("1")
	ac.upZ.SetText("0")
	ac.lightX.SetText("2")
	ac.lightY.SetText("5")
	ac.lightZ.SetText("2")

	ac.updateStatus("Ready.", false)
	st.SetNotify(func() {
		ac.refreshFromStudio()
		win.Invalidate()
	})
	return ac
}

// refreshFromStudio pulls the async outcome of a cycle into the status line.
// Runs from the submission goroutine; the studio state, the sink and the
// status line are all mutex-guarded, the theme is read-only after init.
func (ac *AppController) refreshFromStudio() {
	switch ac.studio.State() {
	case studio.Awaiting:
		ac.status.set("Rendering...", ac.th.Palette.Fg)
	case studio.Displaying:
		ac.updateStatus("Render complete.", false)
	case studio.ReportingError:
		ac.updateStatus(ac.sink.ErrMessage(), true)
	}
}

func (ac *AppController) updateStatus(msg string, isError bool) {
	log.Println("UI STATUS:", msg)
	if isError {
		ac.status.set(msg, color.NRGBA{R: 0xD0, G: 0x20, B: 0x20, A: 0xFF})
	} else {
		ac.status.set(msg, color.NRGBA{R: 0x20, G: 0x80, B: 0x20, A: 0xFF})
	}
}

// loop is the main event loop for the application window.
func (ac *AppController) loop() error {
	var ops op.Ops
	for {
		switch e := ac.win.NextEvent().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			ac.processEvents(gtx)
			ac.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (ac *AppController) processEvents(gtx layout.Context) {
	if ac.scenarioClick.Clicked(gtx) {
		ac.studio.CycleScenario()
		if name, ok := ac.studio.SelectedScenario(); ok {
			ac.updateStatus(fmt.Sprintf("Scenario: %s", name), false)
		}
	}
	if ac.renderClick.Clicked(gtx) {
		ac.handleRender()
	}
}

func (ac *AppController) handleRender() {
	form := fields.Form{
		LightX: ac.lightX.Text(), LightY: ac.lightY.Text(), LightZ: ac.lightZ.Text(),
		FromX: ac.fromX.Text(), FromY: ac.fromY.Text(), FromZ: ac.fromZ.Text(),
		ToX: ac.toX.Text(), ToY: ac.toY.Text(), ToZ: ac.toZ.Text(),
		UpX: ac.upX.Text(), UpY: ac.upY.Text(), UpZ: ac.upZ.Text(),
	}
	if err := ac.studio.Submit(form); err != nil {
		ac.updateStatus(err.Error(), true)
		return
	}
	ac.updateStatus("Submitting render...", false)
}

func (ac *AppController) Layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Flexed(0.38, ac.layoutFormColumn),
		layout.Flexed(0.62, ac.layoutDisplayColumn),
	)
}

func (ac *AppController) layoutFormColumn(gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.Label(ac.th, ac.th.TextSize*1.1, "Camera").Layout),
			layout.Rigid(ac.vectorRow("From", &ac.fromX, &ac.fromY, &ac.fromZ)),
			layout.Rigid(ac.vectorRow("To", &ac.toX, &ac.toY, &ac.toZ)),
			layout.Rigid(ac.vectorRow("Up", &ac.upX, &ac.upY, &ac.upZ)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(material.Label(ac.th, ac.th.TextSize*1.1, "Light").Layout),
			layout.Rigid(ac.vectorRow("Position", &ac.lightX, &ac.lightY, &ac.lightZ)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(ac.vectorRowLabel("Scenario:", ac.layoutScenarioSelector)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
			layout.Rigid(material.Button(ac.th, &ac.renderClick, "Render").Layout),
		)
	})
}

func (ac *AppController) layoutScenarioSelector(gtx layout.Context) layout.Dimensions {
	label := "Loading catalog..."
	catalog := ac.studio.Catalog()
	if name, ok := ac.studio.SelectedScenario(); ok {
		label = name
	} else if len(catalog) == 0 {
		label = "No scenarios available"
	}
	return material.Button(ac.th, &ac.scenarioClick, label).Layout(gtx)
}

func (ac *AppController) vectorRowLabel(label string, w layout.Widget) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Inset{Right: unit.Dp(8)}.Layout(gtx,
					material.Label(ac.th, ac.th.TextSize, label).Layout)
			}),
			layout.Flexed(1, w),
		)
	}
}

func (ac *AppController) vectorRow(label string, x, y, z *widget.Editor) layout.Widget {
	return ac.vectorRowLabel(label+":", func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{}.Layout(gtx,
			layout.Flexed(1, material.Editor(ac.th, x, "x").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Flexed(1, material.Editor(ac.th, y, "y").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Flexed(1, material.Editor(ac.th, z, "z").Layout),
		)
	})
}

func (ac *AppController) layoutDisplayColumn(gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Flexed(1, ac.layoutImagePanel),
			layout.Rigid(ac.layoutStatusLabel),
		)
	})
}

func (ac *AppController) layoutImagePanel(gtx layout.Context) layout.Dimensions {
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		img := ac.sink.Image()
		if img == nil {
			return material.Label(ac.th, ac.th.TextSize, "Rendered image appears here").Layout(gtx)
		}
		if img != ac.lastImage {
			ac.lastImage = img
			ac.imageOp = paint.NewImageOp(img)
		}
		return widget.Image{Src: ac.imageOp, Fit: widget.Contain}.Layout(gtx)
	})
}

func (ac *AppController) layoutStatusLabel(gtx layout.Context) layout.Dimensions {
	text, col := ac.status.get()
	label := material.Label(ac.th, ac.th.TextSize*0.9, text)
	label.Color = col
	label.MaxLines = 2
	return layout.UniformInset(unit.Dp(4)).Layout(gtx, label.Layout)
}
