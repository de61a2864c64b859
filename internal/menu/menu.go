// Package menu implements the interactive command loop: a fixed textual
// menu, one handler per option, uniform error reporting.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"spotify_player/internal/display"
	"spotify_player/internal/player"
)

// PlayerAPI is the slice of the Spotify adapter the menu drives.
type PlayerAPI interface {
	CurrentPlayback(ctx context.Context) (*player.PlaybackState, error)
	Play(ctx context.Context) error
	Pause(ctx context.Context) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	SearchTracks(ctx context.Context, query string) ([]player.Track, error)
	Playlists(ctx context.Context) ([]player.Playlist, error)
	PlayTrack(ctx context.Context, uri string) error
	PlayContext(ctx context.Context, uri string) error
	SetVolume(ctx context.Context, percent int) error
}

// Menu is the interactive dispatcher. It owns no state between commands
// beyond the reader position; every handler fetches what it needs fresh.
type Menu struct {
	api PlayerAPI
	in  *bufio.Reader
	out io.Writer

	// Pauses keep output readable between iterations. Tests set them to 0.
	shortPause  time.Duration
	longPause   time.Duration
	clearScreen bool
}

// New creates a Menu reading commands from in and writing to out.
func New(api PlayerAPI, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		api:         api,
		in:          bufio.NewReader(in),
		out:         out,
		shortPause:  time.Second,
		longPause:   2 * time.Second,
		clearScreen: true,
	}
}

// Run loops until the user chooses exit or input is exhausted. Handler
// failures are reported inline and never end the loop.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		option, err := m.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch option {
		case "0":
			fmt.Fprintln(m.out, display.OK.Render("Exiting Spotify CLI Player. Goodbye!"))
			return nil
		case "1":
			m.togglePlayback(ctx)
		case "2":
			m.nextTrack(ctx)
		case "3":
			m.previousTrack(ctx)
		case "4":
			m.searchTrack(ctx)
		case "5":
			m.listPlaylists(ctx)
		case "6":
			m.currentTrack(ctx)
		case "7":
			m.adjustVolume(ctx)
		default:
			fmt.Fprintln(m.out, display.Err.Render("Invalid option. Please try again."))
			m.sleep(m.shortPause)
		}
	}
}

func (m *Menu) printMenu() {
	if m.clearScreen {
		fmt.Fprint(m.out, "\033[2J\033[H")
	}
	fmt.Fprintln(m.out, display.Title.Render("===== Spotify CLI Player ====="))
	fmt.Fprintln(m.out, "1. Play/Pause")
	fmt.Fprintln(m.out, "2. Next Track")
	fmt.Fprintln(m.out, "3. Previous Track")
	fmt.Fprintln(m.out, "4. Search Track")
	fmt.Fprintln(m.out, "5. My Playlists")
	fmt.Fprintln(m.out, "6. Current Track Info")
	fmt.Fprintln(m.out, "7. Adjust Volume")
	fmt.Fprintln(m.out, "0. Exit")
	fmt.Fprint(m.out, display.Prompt.Render("Choose an option: "))
}

// readLine reads one trimmed line. A final unterminated line before EOF is
// still returned.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (m *Menu) printError(err error) {
	fmt.Fprintln(m.out, display.Err.Render("Error: "+err.Error()))
}

func (m *Menu) sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// parseSelection interprets input as a 1-based index into a list of n
// items. Anything outside [1,n], including "0" and non-numeric input,
// abandons the selection.
func parseSelection(input string, n int) (int, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || choice < 1 || choice > n {
		return 0, false
	}
	return choice, true
}

// parseVolume accepts only integer strings in [0,100].
func parseVolume(input string) (int, bool) {
	volume, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || volume < 0 || volume > 100 {
		return 0, false
	}
	return volume, true
}
