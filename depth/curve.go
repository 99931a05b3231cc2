package depth

// Map linearly remaps n from the range [start1, stop1] onto [start2, stop2].
// It does not clamp, so values outside the input range extrapolate.
func Map(n, start1, stop1, start2, stop2 float32) float32 {
	return ((n-start1)/(stop1-start1))*(stop2-start2) + start2
}

// Curve is a Map with its ends held: inputs below InMin give OutMin and inputs above InMax give OutMax.
// InMin must be less than InMax.
type Curve struct {
	InMin, InMax   float32
	OutMin, OutMax float32
}

func NewCurve(inMin, inMax, outMin, outMax float32) Curve {
	return Curve{InMin: inMin, InMax: inMax, OutMin: outMin, OutMax: outMax}
}

// ConstCurve returns a curve that always evaluates to v
func ConstCurve(v float32) Curve {
	return Curve{InMin: 0, InMax: 1, OutMin: v, OutMax: v}
}

func (c Curve) Eval(x float32) float32 {

	if x <= c.InMin {
		return c.OutMin
	}

	if x >= c.InMax {
		return c.OutMax
	}

	return Map(x, c.InMin, c.InMax, c.OutMin, c.OutMax)
}

// Outputs are the per frame atmosphere values driven by how far the player walked
type Outputs struct {
	FogDensity  float32
	LightRed    uint8
	MusicVolume float32
}

type Curves struct {
	Fog      Curve
	LightRed Curve
	Music    Curve
}

func (c *Curves) Eval(pos float32) Outputs {

	red := c.LightRed.Eval(pos)
	if red < 0 {
		red = 0
	} else if red > 255 {
		red = 255
	}

	return Outputs{
		FogDensity: c.Fog.Eval(pos),
		// Truncated like an 8-bit colour channel assignment
		LightRed:    uint8(red),
		MusicVolume: c.Music.Eval(pos),
	}
}
