package domain

// Item is a catalog entry with a canonical reference image.
// The catalog is loaded once per process lifetime and treated as
// immutable; refresh requires a restart or an explicit reload.
type Item struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	PointValue     int    `json:"point_value"`
	ReferenceImage string `json:"reference_image"`
}
