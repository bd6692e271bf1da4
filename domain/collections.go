package domain

const (
	CollectionUser = "rhythmiq_users"
)

const (
	CollectionSong = "rhythmiq_songs"
)
const (
	CollectionGenre = "rhythmiq_genres"
)

const (
	CollectionLike = "rhythmiq_likes"
)
const (
	CollectionDownloadedSong = "rhythmiq_downloaded_songs"
)

const (
	CollectionPlaylist = "rhythmiq_playlists"
)

const (
	CollectionPlayGuard = "rhythmiq_play_guards"
)
