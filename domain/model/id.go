package model

import "go.mongodb.org/mongo-driver/v2/bson"

// NewID returns a fresh identifier for users, creators, categories and
// playlists. Videos carry ids chosen by admins instead.
func NewID() string {
	return bson.NewObjectID().Hex()
}

// IsValidID reports whether id has the shape produced by NewID.
func IsValidID(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}
