package models

// Location is a GeoJSON point plus the human-readable place fields the mobile
// clients send along with it.
type Location struct {
	Type        string    `json:"type" bson:"type" default:"Point"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
	Name        string    `json:"name" bson:"name"`
	Address     string    `json:"address" bson:"address"`
}

func NewPoint(lat, lng float64) Location {
	return Location{Type: "Point", Coordinates: []float64{lng, lat}}
}

func (l Location) Latitude() float64 {
	if len(l.Coordinates) >= 2 {
		return l.Coordinates[1]
	}
	return 0
}

func (l Location) Longitude() float64 {
	if len(l.Coordinates) >= 1 {
		return l.Coordinates[0]
	}
	return 0
}

func (l Location) HasCoordinates() bool {
	return len(l.Coordinates) == 2 && (l.Coordinates[0] != 0 || l.Coordinates[1] != 0)
}
