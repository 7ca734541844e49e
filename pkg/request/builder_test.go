package request

import (
	"encoding/json"
	"testing"

	"renderdeck/pkg/fields"
	"renderdeck/pkg/types"
)

func cornellValues() fields.Values {
	return fields.Values{
		Light: types.Vector3{X: 2, Y: 5, Z: 2},
		From:  types.Vector3{X: 0, Y: 1.5, Z: -5},
		To:    types.Vector3{X: 0, Y: 1, Z: 0},
		Up:    types.Vector3{X: 0, Y: 1, Z: 0},
	}
}

func TestBuildWireFormat(t *testing.T) {
	req, err := Build(cornellValues())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	got, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"light_position":{"x":2,"y":5,"z":2},` +
		`"camera_position":{"from":{"x":0,"y":1.5,"z":-5},` +
		`"to":{"x":0,"y":1,"z":0},"up":{"x":0,"y":1,"z":0}}}`
	if string(got) != want {
		t.Fatalf("wire payload mismatch:\n got  %s\n want %s", got, want)
	}
}

func TestBuildAxisMapping(t *testing.T) {
	// Distinct value per slot so any transposition shows up.
	v := fields.Values{
		Light: types.Vector3{X: 1, Y: 2, Z: 3},
		From:  types.Vector3{X: 4, Y: 5, Z: 6},
		To:    types.Vector3{X: 7, Y: 8, Z: 9},
		Up:    types.Vector3{X: 10, Y: 11, Z: 12},
	}
	req, err := Build(v)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if req.LightPosition != v.Light {
		t.Errorf("light transposed: %+v", req.LightPosition)
	}
	if req.CameraPosition.From != v.From {
		t.Errorf("from transposed: %+v", req.CameraPosition.From)
	}
	if req.CameraPosition.To != v.To {
		t.Errorf("to transposed: %+v", req.CameraPosition.To)
	}
	if req.CameraPosition.Up != v.Up {
		t.Errorf("up transposed: %+v", req.CameraPosition.Up)
	}
}

func TestBuildRejectsDegenerateView(t *testing.T) {
	v := cornellValues()
	v.To = v.From
	if _, err := Build(v); err == nil {
		t.Fatal("Build accepted from == to")
	}
}
