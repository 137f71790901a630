package model

import (
	"github.com/golang-jwt/jwt"
)

type User struct {
	ID          string   `json:"_id"         bson:"_id"`
	FirstName   string   `json:"first_name"  bson:"first_name"`
	LastName    string   `json:"last_name"   bson:"last_name"`
	UserName    string   `json:"username"    bson:"username"`
	Password    string   `json:"-"           bson:"password"`
	IsAdmin     bool     `json:"is_admin"    bson:"is_admin"`
	LikedVideos []string `json:"likedVideos" bson:"likedVideos"`
	WatchLater  []string `json:"watchLater"  bson:"watchLater"`
	History     []string `json:"history"     bson:"history"`
	Playlists   []string `json:"playlists"   bson:"playlists"`
	Version     int64    `json:"-"           bson:"version"`
}

// UserClaims is the payload of the bearer token issued at signup and login.
type UserClaims struct {
	UserID   string `json:"userId"`
	UserName string `json:"username"`
	jwt.StandardClaims
}
