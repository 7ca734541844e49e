package present

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	_ "image/png" // render service encodes PNG
	"sync"

	"renderdeck/pkg/types"
)

// Sink consumes render results and holds whatever the display surface
// should currently show. Each new success replaces the previous image;
// a failure replaces only the error line and leaves the last good image
// on screen. Safe to consume from a submission goroutine while the UI
// reads from its frame loop.
type Sink struct {
	mu      sync.Mutex
	img     *image.NRGBA
	dataURI string
	errMsg  string
}

func NewSink() *Sink {
	return &Sink{}
}

// Consume applies one RenderResult. Invoked exactly once per submission
// cycle; repeat invocations across cycles always replace prior content.
func (s *Sink) Consume(res types.RenderResult) {
	if res.Failed() {
		s.fail(res.Err)
		return
	}

	raw, err := base64.StdEncoding.DecodeString(res.Base64Image)
	if err != nil {
		s.fail(fmt.Sprintf("failed to decode image encoding: %v", err))
		return
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		s.fail(fmt.Sprintf("failed to decode image: %v", err))
		return
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		bounds := img.Bounds()
		nrgba = image.NewNRGBA(bounds)
		draw.Draw(nrgba, bounds, img, bounds.Min, draw.Src)
	}

	s.mu.Lock()
	s.img = nrgba
	s.dataURI = "data:image/png;base64," + res.Base64Image
	s.errMsg = ""
	s.mu.Unlock()
}

func (s *Sink) fail(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}

// Image returns the currently displayed image, or nil before the first
// successful render.
func (s *Sink) Image() *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img
}

// DataURI returns the current image as an inline-decodable source string.
func (s *Sink) DataURI() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataURI
}

// ErrMessage returns the error from the last result, or "" after a success.
func (s *Sink) ErrMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
