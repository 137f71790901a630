package dto

type ReqCreateVideo struct {
	ID          string `json:"id"          binding:"required,min=3"`
	Title       string `json:"title"       binding:"required,min=3"`
	Description string `json:"description" binding:"required,min=3"`
	Duration    string `json:"duration"    binding:"required,min=3"`
	CreatorID   string `json:"creator_id"  binding:"required,objectid"`
	CategoryID  string `json:"category_id" binding:"required,objectid"`
}

// ReqUpdateVideo only touches the fields that are present. Creator and
// category are replaced only when both ids are supplied.
type ReqUpdateVideo struct {
	Title       *string `json:"title"       binding:"omitempty,min=3"`
	Description *string `json:"description" binding:"omitempty,min=3"`
	Duration    *string `json:"duration"    binding:"omitempty,min=3"`
	CreatorID   string  `json:"creator_id"  binding:"omitempty,objectid"`
	CategoryID  string  `json:"category_id" binding:"omitempty,objectid"`
}

type ReqCreator struct {
	Name   string `json:"name"    binding:"required,min=3"`
	ImgURL string `json:"img_url" binding:"required,url"`
}

type ReqCategory struct {
	Name string `json:"name" binding:"required,min=3"`
}
