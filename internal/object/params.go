package object

// Params carries the optional shape-specific parameters of smooth shapes.
// A nil field falls back to the shape's default.
type Params struct {
	Radius      *float32 `json:"radius,omitempty"`
	LatSteps    *int     `json:"lat_steps,omitempty"`
	LonSteps    *int     `json:"lon_steps,omitempty"`
	RadiusX     *float32 `json:"radius_x,omitempty"`
	RadiusY     *float32 `json:"radius_y,omitempty"`
	RadiusZ     *float32 `json:"radius_z,omitempty"`
	Height      *float32 `json:"height,omitempty"`
	OuterRadius *float32 `json:"outer_radius,omitempty"`
	InnerRadius *float32 `json:"inner_radius,omitempty"`
	RadialSteps *int     `json:"radial_steps,omitempty"`
	TubeSteps   *int     `json:"tube_steps,omitempty"`
	Curvature   *float32 `json:"curvature,omitempty"`
}

const (
	defaultRadius         = 1.0
	defaultSteps          = 50
	defaultEllipsoidSteps = 40
	defaultRadiusX        = 1.0
	defaultRadiusY        = 0.7
	defaultRadiusZ        = 1.5
	defaultHeight         = 2.0
	defaultOuterRadius    = 1.5
	defaultInnerRadius    = 0.5
	defaultRadialSteps    = 40
	defaultTubeSteps      = 20
	defaultCurvature      = 1.0
)

func floatOr(v *float32, def float32) float32 {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
