package model

// Playlist is owned by exactly one user; Videos keeps insertion order.
type Playlist struct {
	ID      string   `json:"_id"    bson:"_id"`
	Name    string   `json:"name"   bson:"name"`
	UserID  string   `json:"user"   bson:"user"`
	Videos  []string `json:"videos" bson:"videos"`
	Version int64    `json:"-"      bson:"version"`
}

type PlaylistView struct {
	ID     string      `json:"_id"`
	Name   string      `json:"name"`
	UserID string      `json:"user"`
	Videos []VideoView `json:"videos"`
}
