package request

import (
	"fmt"

	"renderdeck/pkg/fields"
	"renderdeck/pkg/types"
)

// Build assembles the render payload from validated field values. Pure
// assembly: the fields package has already rejected anything non-finite,
// so the only check left is the degenerate view direction.
func Build(v fields.Values) (types.RenderRequest, error) {
	if v.From == v.To {
		return types.RenderRequest{}, fmt.Errorf("degenerate camera: from equals to (%.6g, %.6g, %.6g)",
			v.From.X, v.From.Y, v.From.Z)
	}
	return types.RenderRequest{
		LightPosition: v.Light,
		CameraPosition: types.CameraPose{
			From: v.From,
			To:   v.To,
			Up:   v.Up,
		},
	}, nil
}
