package config

// ViewerSettingsConfig lists the choices the viewer cycles through.
type ViewerSettingsConfig struct {
	TimeScaleSteps []float64
	DefaultScale   int // index into TimeScaleSteps
	WindowScales   []int
}

// ViewerSettings is the global viewer settings configuration
var ViewerSettings ViewerSettingsConfig

func init() {
	ViewerSettings = ViewerSettingsConfig{
		TimeScaleSteps: []float64{1, 0.5, 0.25, 0.1},
		DefaultScale:   0,
		WindowScales:   []int{1, 2, 3},
	}
}

// TimeScaleAt clamps index into the step table.
func (c ViewerSettingsConfig) TimeScaleAt(index int) float64 {
	if len(c.TimeScaleSteps) == 0 {
		return 1
	}
	if index < 0 || index >= len(c.TimeScaleSteps) {
		index = 0
	}
	return c.TimeScaleSteps[index]
}
