package types

// Vector3 is a point or direction in world space.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// CameraPose describes the view: eye position, look-at target and up hint.
type CameraPose struct {
	From Vector3 `json:"from"`
	To   Vector3 `json:"to"`
	Up   Vector3 `json:"up"`
}

// RenderRequest is the wire payload sent to POST /render/{scenario}.
// Built fresh per submission and discarded after the response arrives.
type RenderRequest struct {
	LightPosition  Vector3    `json:"light_position"`
	CameraPosition CameraPose `json:"camera_position"`
}

// CatalogResponse is the body of GET /scenarios.
type CatalogResponse struct {
	Values []string `json:"values"`
}

// RenderResponse is the body returned by the render endpoint.
type RenderResponse struct {
	Base64Image string `json:"base64_image"`
}

// RenderResult is the outcome of one render submission: either an encoded
// image or a human-readable failure message, never both.
type RenderResult struct {
	Base64Image string
	Err         string
}

// Failed reports whether the submission produced an error instead of an image.
func (r RenderResult) Failed() bool {
	return r.Err != ""
}
