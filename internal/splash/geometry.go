package splash

import "math"

// Geometry is the mutable drawing model shared by all phases.
type Geometry struct {
	CenterX, CenterY float64
	HalfDiagonal     float64

	Angle      float64 // ring rotation, radians
	Radius     float64 // ring radius
	HoleRadius float64 // revealed circle radius
}

// Resize recomputes the center and half-diagonal for a surface of w x h.
func (g *Geometry) Resize(w, h int) {
	fw, fh := float64(w), float64(h)
	g.CenterX = fw / 2
	g.CenterY = fh / 2
	g.HalfDiagonal = math.Sqrt(fw*fw+fh*fh) / 2
}

// CirclePosition returns the center of circle i of n on the ring.
func (g Geometry) CirclePosition(i, n int) (x, y float64) {
	a := float64(i)*2*math.Pi/float64(n) + g.Angle
	return math.Cos(a)*g.Radius + g.CenterX, math.Sin(a)*g.Radius + g.CenterY
}

func (g *Geometry) apply(t target, v float64) {
	switch t {
	case targetAngle:
		g.Angle = v
	case targetRadius:
		g.Radius = v
	case targetHole:
		g.HoleRadius = v
	}
}
