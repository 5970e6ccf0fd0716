package quadtree

// Quadrant names one of the four child slots of a node.
type Quadrant uint8

// The four quadrants, in canonical slot order.
const (
	NW Quadrant = iota
	NE
	SW
	SE
)

// Quadrants lists all quadrants in slot order NW, NE, SW, SE.
var Quadrants = [4]Quadrant{NW, NE, SW, SE}

func (q Quadrant) String() string {
	switch q {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	}
	return "?"
}

// Valid reports whether q denotes one of the four child slots.
func (q Quadrant) Valid() bool {
	return q <= SE
}
