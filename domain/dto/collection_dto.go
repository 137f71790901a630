package dto

type ReqVideoRef struct {
	VideoID string `json:"video_id" binding:"required"`
}

type ReqCreatePlaylist struct {
	Name string `json:"name" binding:"required,min=1"`
}
