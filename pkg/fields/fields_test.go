package fields

import (
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{"integer", "5", 5, false},
		{"decimal", "1.5", 1.5, false},
		{"negative", "-5", -5, false},
		{"zero", "0", 0, false},
		{"scientific", "2e3", 2000, false},
		{"surrounding space", " 3.25 ", 3.25, false},
		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"word", "fast", 0, true},
		{"trailing junk", "1.5x", 0, true},
		{"nan", "NaN", 0, true},
		{"positive inf", "Inf", 0, true},
		{"negative inf", "-Inf", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Read(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Read(%q) = %v, want error", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read(%q) returned error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("Read(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestReadVector(t *testing.T) {
	vec, bad := ReadVector("light", "1", "-2.5", "0")
	if len(bad) != 0 {
		t.Fatalf("unexpected bad components: %v", bad)
	}
	if vec.X != 1 || vec.Y != -2.5 || vec.Z != 0 {
		t.Fatalf("components landed in wrong slots: %+v", vec)
	}
}

func TestReadVectorReportsEachAxis(t *testing.T) {
	_, bad := ReadVector("camera.up", "ok?", "1", "")
	if len(bad) != 2 {
		t.Fatalf("want 2 bad components, got %v", bad)
	}
	if !strings.Contains(bad[0], "camera.up.x") {
		t.Errorf("first report should name camera.up.x: %q", bad[0])
	}
	if !strings.Contains(bad[1], "camera.up.z") {
		t.Errorf("second report should name camera.up.z: %q", bad[1])
	}
}

func validForm() Form {
	return Form{
		LightX: "2", LightY: "5", LightZ: "2",
		FromX: "0", FromY: "1.5", FromZ: "-5",
		ToX: "0", ToY: "1", ToZ: "0",
		UpX: "0", UpY: "1", UpZ: "0",
	}
}

func TestReadFormValid(t *testing.T) {
	vals, err := ReadForm(validForm())
	if err != nil {
		t.Fatalf("ReadForm returned error: %v", err)
	}
	if vals.From.Y != 1.5 || vals.From.Z != -5 {
		t.Errorf("camera.from misparsed: %+v", vals.From)
	}
	if vals.Light.X != 2 || vals.Light.Y != 5 || vals.Light.Z != 2 {
		t.Errorf("light misparsed: %+v", vals.Light)
	}
}

func TestReadFormAggregatesAllBadFields(t *testing.T) {
	f := validForm()
	f.LightY = "bright"
	f.ToZ = ""
	f.UpX = "NaN"
	_, err := ReadForm(f)
	if err == nil {
		t.Fatal("ReadForm accepted a form with three bad fields")
	}
	for _, want := range []string{"light.y", "camera.to.z", "camera.up.x"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("aggregated error missing %s: %v", want, err)
		}
	}
}
