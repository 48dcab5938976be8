package engine

type LightKind int

const (
	LightAmbient LightKind = iota
	LightDirectional
)

type Light struct {
	Kind      LightKind
	Direction Vector3 // directional only, normalized by the backend
	Color     Color
	Intensity float32
}

func NewAmbientLight(color Color, intensity float32) *Light {
	return &Light{Kind: LightAmbient, Color: color, Intensity: intensity}
}

func NewDirectionalLight(direction Vector3, color Color, intensity float32) *Light {
	return &Light{
		Kind:      LightDirectional,
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
	}
}
