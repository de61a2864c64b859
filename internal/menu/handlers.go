package menu

import (
	"context"
	"errors"
	"fmt"

	"spotify_player/internal/display"
	"spotify_player/internal/player"
)

// togglePlayback pauses when playing and resumes otherwise. A missing
// playback state counts as "not playing".
func (m *Menu) togglePlayback(ctx context.Context) {
	defer m.sleep(m.shortPause)

	state, err := m.api.CurrentPlayback(ctx)
	if err != nil && !errors.Is(err, player.ErrNoPlayback) {
		m.printError(err)
		return
	}

	if state != nil && state.IsPlaying {
		if err := m.api.Pause(ctx); err != nil {
			m.printError(err)
			return
		}
		fmt.Fprintln(m.out, display.Warn.Render("Playback paused"))
		return
	}

	if err := m.api.Play(ctx); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, display.OK.Render("Playback started"))
}

// nextTrack skips forward without reading state first.
func (m *Menu) nextTrack(ctx context.Context) {
	defer m.sleep(m.shortPause)

	if err := m.api.Next(ctx); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, display.OK.Render("Skipped to next track"))
}

// previousTrack skips backward without reading state first.
func (m *Menu) previousTrack(ctx context.Context) {
	defer m.sleep(m.shortPause)

	if err := m.api.Previous(ctx); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, display.OK.Render("Returned to previous track"))
}

// searchTrack prompts for a query, lists up to ten matches, and plays the
// selected track's URI exclusively. An empty query aborts silently, as does
// any selection outside [1,N].
func (m *Menu) searchTrack(ctx context.Context) {
	fmt.Fprint(m.out, display.Prompt.Render("Enter track name or artist: "))
	query, err := m.readLine()
	if err != nil || query == "" {
		return
	}

	fmt.Fprintln(m.out, display.Help.Render("Searching..."))
	tracks, err := m.api.SearchTracks(ctx, query)
	if err != nil {
		m.printError(err)
		m.sleep(m.longPause)
		return
	}

	if len(tracks) == 0 {
		fmt.Fprintln(m.out, display.Warn.Render("No tracks found."))
		m.sleep(m.longPause)
		return
	}

	fmt.Fprintln(m.out, display.TrackTable(fmt.Sprintf("Results for %q", query), tracks))
	fmt.Fprint(m.out, display.Prompt.Render("Choose a track to play (1-10) or 0 to go back: "))

	input, err := m.readLine()
	if err != nil {
		return
	}
	choice, ok := parseSelection(input, len(tracks))
	if !ok {
		return
	}

	track := tracks[choice-1]
	if err := m.api.PlayTrack(ctx, track.URI); err != nil {
		m.printError(err)
		m.sleep(m.longPause)
		return
	}
	fmt.Fprintln(m.out, display.OK.Render("Now playing: "+track.Name))
	m.sleep(m.longPause)
}

// listPlaylists shows the first page of the user's playlists and plays the
// selected one by context URI.
func (m *Menu) listPlaylists(ctx context.Context) {
	fmt.Fprintln(m.out, display.Help.Render("Loading playlists..."))
	playlists, err := m.api.Playlists(ctx)
	if err != nil {
		m.printError(err)
		m.sleep(m.longPause)
		return
	}

	if len(playlists) == 0 {
		fmt.Fprintln(m.out, display.Warn.Render("No playlists found."))
		m.sleep(m.longPause)
		return
	}

	fmt.Fprintln(m.out, display.PlaylistTable("Your Playlists", playlists))
	fmt.Fprint(m.out, display.Prompt.Render("Choose a playlist to play (1-10) or 0 to go back: "))

	input, err := m.readLine()
	if err != nil {
		return
	}
	choice, ok := parseSelection(input, len(playlists))
	if !ok {
		return
	}

	playlist := playlists[choice-1]
	if err := m.api.PlayContext(ctx, playlist.URI); err != nil {
		m.printError(err)
		m.sleep(m.longPause)
		return
	}
	fmt.Fprintln(m.out, display.OK.Render("Now playing playlist: "+playlist.Name))
	m.sleep(m.longPause)
}

// currentTrack renders the full now-playing view. Unlike the other
// handlers it blocks on Enter instead of a timed pause.
func (m *Menu) currentTrack(ctx context.Context) {
	state, err := m.api.CurrentPlayback(ctx)
	if err != nil {
		if errors.Is(err, player.ErrNoPlayback) {
			fmt.Fprintln(m.out, display.Warn.Render("No track currently playing."))
		} else {
			m.printError(err)
		}
		m.sleep(m.longPause)
		return
	}
	if state.Track == nil {
		fmt.Fprintln(m.out, display.Warn.Render("No track currently playing."))
		m.sleep(m.longPause)
		return
	}

	track := state.Track
	fmt.Fprintln(m.out, display.Title.Render("Now Playing:"))
	fmt.Fprintf(m.out, "%s %s\n", display.Label.Render("Track:"), track.Name)
	fmt.Fprintf(m.out, "%s %s\n", display.Label.Render("Artist:"), display.JoinArtists(track.Artists))
	fmt.Fprintf(m.out, "%s %s\n", display.Label.Render("Album:"), track.Album)
	fmt.Fprintf(m.out, "%s %s/%s (%s%%)\n",
		display.Label.Render("Progress:"),
		display.FormatDuration(state.ProgressMS),
		display.FormatDuration(track.DurationMS),
		display.FormatPercent(state.ProgressMS, track.DurationMS),
	)

	shuffle := "Off"
	if state.Shuffle {
		shuffle = "On"
	}
	fmt.Fprintf(m.out, "%s %s\n", display.Label.Render("Shuffle:"), shuffle)
	fmt.Fprintf(m.out, "%s %s\n", display.Label.Render("Repeat:"), repeatLabel(state.Repeat))

	fmt.Fprint(m.out, display.Prompt.Render("\nPress Enter to return to menu..."))
	_, _ = m.readLine()
}

// adjustVolume shows the current volume and sets a new one. Input outside
// [0,100] is rejected without an API call.
func (m *Menu) adjustVolume(ctx context.Context) {
	state, err := m.api.CurrentPlayback(ctx)
	if err != nil {
		if errors.Is(err, player.ErrNoPlayback) || errors.Is(err, player.ErrNoActiveDevice) {
			fmt.Fprintln(m.out, display.Warn.Render("No active device found."))
		} else {
			m.printError(err)
		}
		m.sleep(m.longPause)
		return
	}
	if !state.HasDevice {
		fmt.Fprintln(m.out, display.Warn.Render("No active device found."))
		m.sleep(m.longPause)
		return
	}

	fmt.Fprintf(m.out, "%s %d%%\n", display.Label.Render("Current volume:"), state.Volume)
	fmt.Fprint(m.out, display.Prompt.Render("Enter new volume (0-100): "))

	input, err := m.readLine()
	if err != nil {
		return
	}
	volume, ok := parseVolume(input)
	if !ok {
		fmt.Fprintln(m.out, display.Warn.Render("Invalid value. Volume must be between 0 and 100."))
		m.sleep(m.shortPause)
		return
	}

	if err := m.api.SetVolume(ctx, volume); err != nil {
		m.printError(err)
		m.sleep(m.longPause)
		return
	}
	fmt.Fprintln(m.out, display.OK.Render(fmt.Sprintf("Volume adjusted to %d%%", volume)))
	m.sleep(m.shortPause)
}

func repeatLabel(mode string) string {
	switch mode {
	case "track":
		return "Track"
	case "context":
		return "Playlist/Album"
	default:
		return "Off"
	}
}
