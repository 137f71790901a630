package repository

// Repositories is the full set of stores the use cases are built from.
type Repositories struct {
	Users      IUser
	Videos     IVideo
	Creators   ICreator
	Categories ICategory
	Playlists  IPlaylist
}
