package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/zmb3/spotify/v2"
)

// listLimit caps search results and the playlist page at ten entries, the
// most the selection prompt offers.
const listLimit = 10

// Sentinel outcomes the menu handlers distinguish between.
var (
	ErrNoPlayback        = errors.New("no playback state available")
	ErrNoActiveDevice    = errors.New("no active device")
	ErrMalformedResponse = errors.New("malformed API response")
)

// Client adapts the Spotify Web API to the menu's operation set. Responses
// are converted to typed records at this boundary; records missing required
// fields are rejected with ErrMalformedResponse.
type Client struct {
	api *spotify.Client
}

// New creates a Client around an authenticated Spotify client.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// CurrentPlayback returns a snapshot of the player. ErrNoPlayback is
// returned when the service reports no playback state at all.
func (c *Client) CurrentPlayback(ctx context.Context) (*PlaybackState, error) {
	state, err := c.api.PlayerState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get playback state: %w", err)
	}
	if state == nil {
		return nil, ErrNoPlayback
	}
	return newPlaybackState(state)
}

// Play resumes playback on the active device.
func (c *Client) Play(ctx context.Context) error {
	if err := c.api.Play(ctx); err != nil {
		return fmt.Errorf("failed to play: %w", err)
	}
	return nil
}

// Pause pauses playback.
func (c *Client) Pause(ctx context.Context) error {
	if err := c.api.Pause(ctx); err != nil {
		return fmt.Errorf("failed to pause: %w", err)
	}
	return nil
}

// Next skips to the next track.
func (c *Client) Next(ctx context.Context) error {
	if err := c.api.Next(ctx); err != nil {
		return fmt.Errorf("failed to skip to next track: %w", err)
	}
	return nil
}

// Previous skips to the previous track.
func (c *Client) Previous(ctx context.Context) error {
	if err := c.api.Previous(ctx); err != nil {
		return fmt.Errorf("failed to skip to previous track: %w", err)
	}
	return nil
}

// SearchTracks searches tracks by free text, returning at most ten results.
func (c *Client) SearchTracks(ctx context.Context, query string) ([]Track, error) {
	result, err := c.api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	if result.Tracks == nil {
		return nil, nil
	}

	items := result.Tracks.Tracks
	if len(items) > listLimit {
		items = items[:listLimit]
	}

	tracks := make([]Track, 0, len(items))
	for i := range items {
		track, err := newTrack(&items[i])
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, *track)
	}
	return tracks, nil
}

// Playlists returns the first page of the user's playlists, at most ten.
func (c *Client) Playlists(ctx context.Context) ([]Playlist, error) {
	page, err := c.api.CurrentUsersPlaylists(ctx, spotify.Limit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}

	playlists := make([]Playlist, 0, len(page.Playlists))
	for i := range page.Playlists {
		playlist, err := newPlaylist(&page.Playlists[i])
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, *playlist)
	}
	return playlists, nil
}

// PlayTrack starts playback of a single track URI, replacing the current
// queue context.
func (c *Client) PlayTrack(ctx context.Context, uri string) error {
	opts := &spotify.PlayOptions{URIs: []spotify.URI{spotify.URI(uri)}}
	if err := c.api.PlayOpt(ctx, opts); err != nil {
		return fmt.Errorf("failed to play track: %w", err)
	}
	return nil
}

// PlayContext starts playback of a context URI (playlist or album).
func (c *Client) PlayContext(ctx context.Context, uri string) error {
	contextURI := spotify.URI(uri)
	opts := &spotify.PlayOptions{PlaybackContext: &contextURI}
	if err := c.api.PlayOpt(ctx, opts); err != nil {
		return fmt.Errorf("failed to play context: %w", err)
	}
	return nil
}

// SetVolume sets the active device's volume (0-100).
func (c *Client) SetVolume(ctx context.Context, percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("volume must be between 0 and 100")
	}
	if err := c.api.Volume(ctx, percent); err != nil {
		return fmt.Errorf("failed to set volume: %w", err)
	}
	return nil
}

func newPlaybackState(s *spotify.PlayerState) (*PlaybackState, error) {
	state := &PlaybackState{
		IsPlaying:  s.Playing,
		ProgressMS: int(s.Progress),
		Volume:     int(s.Device.Volume),
		Shuffle:    s.ShuffleState,
		Repeat:     s.RepeatState,
		HasDevice:  s.Device.ID != "",
	}

	if s.Item != nil {
		track, err := newTrack(s.Item)
		if err != nil {
			return nil, err
		}
		state.Track = track
	}
	return state, nil
}

func newTrack(t *spotify.FullTrack) (*Track, error) {
	if t.Name == "" || t.URI == "" {
		return nil, fmt.Errorf("%w: track missing name or URI", ErrMalformedResponse)
	}

	artists := make([]string, 0, len(t.Artists))
	for _, artist := range t.Artists {
		artists = append(artists, artist.Name)
	}

	return &Track{
		Name:       t.Name,
		Artists:    artists,
		Album:      t.Album.Name,
		DurationMS: int(t.Duration),
		URI:        string(t.URI),
	}, nil
}

func newPlaylist(p *spotify.SimplePlaylist) (*Playlist, error) {
	if p.Name == "" || p.URI == "" {
		return nil, fmt.Errorf("%w: playlist missing name or URI", ErrMalformedResponse)
	}

	return &Playlist{
		Name:       p.Name,
		TrackCount: int(p.Tracks.Total),
		URI:        string(p.URI),
	}, nil
}
