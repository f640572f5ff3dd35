package models

// Location is a physical site where cameras are installed: a building, a
// room, an outdoor area. Operators may be confined to a single location via
// [User.AssignedLocationID].
type Location struct {
	ID           int64  `json:"id"`
	LocationName string `json:"location_name"`
	LocationType string `json:"location_type,omitempty"` // Building, Room, Outdoor, ...
	ItemLocation string `json:"item_location,omitempty"` // e.g. "Entrance Gate 2"
	OldLocation  string `json:"old_location,omitempty"`
}

// TableName returns the name of the database table
// associated with the Location model.
func (l Location) TableName() string {
	return "locations"
}
