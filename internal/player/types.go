package player

// Track is a playable track as the menus render it.
type Track struct {
	Name       string
	Artists    []string
	Album      string
	DurationMS int
	URI        string
}

// Playlist is one of the user's playlists.
type Playlist struct {
	Name       string
	TrackCount int
	URI        string
}

// PlaybackState is a read-only snapshot of the player. It is fetched fresh
// for every command and never cached.
type PlaybackState struct {
	IsPlaying  bool
	ProgressMS int
	Volume     int
	Shuffle    bool
	Repeat     string // "off", "track", "context"
	HasDevice  bool
	Track      *Track // nil when nothing is loaded
}
