package model

// CollectionKind names one of the per-user video reference lists.
type CollectionKind string

const (
	CollectionLiked      CollectionKind = "liked"
	CollectionWatchLater CollectionKind = "watch_later"
	CollectionHistory    CollectionKind = "history"
)

// Refs returns the reference list of the given kind stored on the user.
func (u *User) Refs(kind CollectionKind) []string {
	switch kind {
	case CollectionLiked:
		return u.LikedVideos
	case CollectionWatchLater:
		return u.WatchLater
	case CollectionHistory:
		return u.History
	}
	return nil
}

// SetRefs replaces the reference list of the given kind.
func (u *User) SetRefs(kind CollectionKind, refs []string) {
	switch kind {
	case CollectionLiked:
		u.LikedVideos = refs
	case CollectionWatchLater:
		u.WatchLater = refs
	case CollectionHistory:
		u.History = refs
	}
}
