package opengraph

import "fmt"

// Plane identifies the measurement plane of a measured node.
type Plane int

const (
	// PlaneXY is the XY equatorial plane.
	PlaneXY Plane = iota
	// PlaneYZ is the YZ plane.
	PlaneYZ
	// PlaneXZ is the XZ plane.
	PlaneXZ
)

// String returns the conventional two-letter name of the plane.
func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "XY"
	case PlaneYZ:
		return "YZ"
	case PlaneXZ:
		return "XZ"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}

// ParsePlane converts a plane name ("XY", "YZ", "XZ") back to a Plane.
// It is the inverse of [Plane.String] and is used by the serialization layer.
func ParsePlane(s string) (Plane, error) {
	switch s {
	case "XY":
		return PlaneXY, nil
	case "YZ":
		return PlaneYZ, nil
	case "XZ":
		return PlaneXZ, nil
	default:
		return 0, fmt.Errorf("unknown measurement plane %q", s)
	}
}

// Measurement is the measurement specification attached to a non-output node:
// an angle (in units of pi) and a measurement plane.
type Measurement struct {
	Angle float64
	Plane Plane
}
