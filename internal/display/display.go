// Package display renders API records into human-readable strings and
// tables. All functions are pure; nothing here talks to the network.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"spotify_player/internal/player"
)

// Package-level stylesheet, one style per message kind.
var (
	Title  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	Label  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	OK     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	Warn   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	Err    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	Help   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

const maxCellWidth = 40

// FormatDuration renders a millisecond length as M:SS, seconds zero-padded.
func FormatDuration(ms int) string {
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatPercent renders progress through a track with one decimal place.
func FormatPercent(progressMS, durationMS int) string {
	if durationMS == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(progressMS)/float64(durationMS)*100)
}

// JoinArtists joins artist names the way track listings show them.
func JoinArtists(names []string) string {
	return strings.Join(names, ", ")
}

// Truncate shortens s to maxLen bytes, appending "..." when it cuts.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// TrackTable renders search results as an indexed table.
func TrackTable(title string, tracks []player.Track) string {
	tbl := newTable("#", "Name", "Artist", "Album")
	for i, t := range tracks {
		tbl.Row(
			strconv.Itoa(i+1),
			Truncate(t.Name, maxCellWidth),
			Truncate(JoinArtists(t.Artists), maxCellWidth),
			Truncate(t.Album, maxCellWidth),
		)
	}
	return Title.Render(title) + "\n" + tbl.Render()
}

// PlaylistTable renders the user's playlists as an indexed table.
func PlaylistTable(title string, playlists []player.Playlist) string {
	tbl := newTable("#", "Name", "Tracks")
	for i, p := range playlists {
		tbl.Row(
			strconv.Itoa(i+1),
			Truncate(p.Name, maxCellWidth),
			strconv.Itoa(p.TrackCount),
		)
	}
	return Title.Render(title) + "\n" + tbl.Render()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Help).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}
