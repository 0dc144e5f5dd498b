package model

// Day is one shooting day of the final schedule. Numbers are contiguous
// starting at 1 and TotalHours is the sum of the estimates of its scenes.
type Day struct {
	Number     int     `json:"day_number"`
	Scenes     []Scene `json:"scenes"`
	TotalHours float64 `json:"total_time"`
}

// SceneBatch is the wire shape returned by the scene extractor for one
// document fragment.
type SceneBatch struct {
	Scenes []Scene `json:"scenes"`
}
