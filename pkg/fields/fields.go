package fields

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"renderdeck/pkg/types"
)

// Form holds the raw text of every numeric field on the render form,
// exactly as the user typed it.
type Form struct {
	LightX, LightY, LightZ string
	FromX, FromY, FromZ    string
	ToX, ToY, ToZ          string
	UpX, UpY, UpZ          string
}

// Values is the validated numeric form, ready for the request builder.
type Values struct {
	Light types.Vector3
	From  types.Vector3
	To    types.Vector3
	Up    types.Vector3
}

// Read parses a raw field value as a finite float64. Any finite value is
// accepted as-is, including negatives and zero; no clamping or range checks.
func Read(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not finite: %q", raw)
	}
	return v, nil
}

// ReadVector parses the three components of one vector. Each bad component
// is reported as "label.axis: reason" so the caller can aggregate.
func ReadVector(label string, x, y, z string) (types.Vector3, []string) {
	var vec types.Vector3
	var bad []string
	for _, c := range []struct {
		axis string
		raw  string
		dst  *float64
	}{
		{"x", x, &vec.X},
		{"y", y, &vec.Y},
		{"z", z, &vec.Z},
	} {
		v, err := Read(c.raw)
		if err != nil {
			bad = append(bad, fmt.Sprintf("%s.%s: %v", label, c.axis, err))
			continue
		}
		*c.dst = v
	}
	return vec, bad
}

// ReadForm validates all twelve fields. If any field fails to parse the
// whole form is rejected with a single aggregated error naming every bad
// field, and nothing reaches the network.
func ReadForm(f Form) (Values, error) {
	var vals Values
	var bad []string

	var b []string
	vals.Light, b = ReadVector("light", f.LightX, f.LightY, f.LightZ)
	bad = append(bad, b...)
	vals.From, b = ReadVector("camera.from", f.FromX, f.FromY, f.FromZ)
	bad = append(bad, b...)
	vals.To, b = ReadVector("camera.to", f.ToX, f.ToY, f.ToZ)
	bad = append(bad, b...)
	vals.Up, b = ReadVector("camera.up", f.UpX, f.UpY, f.UpZ)
	bad = append(bad, b...)

	if len(bad) > 0 {
		return Values{}, fmt.Errorf("invalid fields: %s", strings.Join(bad, "; "))
	}
	return vals, nil
}
