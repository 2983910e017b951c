package roads

// Class widths in world units.
const (
	widthHighway  = 24.0
	widthArterial = 16.0
	widthLocal    = 10.0
)

// ClassifyRoad assigns class and width from realized path length.
// Thresholds are exclusive: a road of exactly threshold length falls
// into the lower class.
func ClassifyRoad(r *Road, highwayLength, arterialLength float64) {
	length := r.Length()
	switch {
	case length > highwayLength:
		r.Class = ClassHighway
		r.Width = widthHighway
	case length > arterialLength:
		r.Class = ClassArterial
		r.Width = widthArterial
	default:
		r.Class = ClassLocal
		r.Width = widthLocal
	}
}
