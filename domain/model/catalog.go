package model

// Video is the canonical catalog record. ID is assigned by the admin who
// creates it and never changes afterwards.
type Video struct {
	ID          string `json:"_id"         bson:"_id"`
	Title       string `json:"title"       bson:"title"`
	Description string `json:"description" bson:"description"`
	Duration    string `json:"duration"    bson:"duration"`
	CreatorID   string `json:"creator"     bson:"creator"`
	CategoryID  string `json:"category"    bson:"category"`
}

type Creator struct {
	ID     string `json:"_id"     bson:"_id"`
	Name   string `json:"name"    bson:"name"`
	ImgURL string `json:"img_url" bson:"img_url"`
}

type Category struct {
	ID   string `json:"_id"  bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// ResolvedVideo is a Video with its creator and category already fetched.
type ResolvedVideo struct {
	Video    Video
	Creator  Creator
	Category Category
}

// VideoView is the client-facing shape of a video.
type VideoView struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Creator       string `json:"creator"`
	CreatorImgURL string `json:"creatorImgUrl"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	Category      string `json:"category"`
}
