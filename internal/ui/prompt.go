package ui

import (
	"fmt"
	"math/rand"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// emojiChoices is drawn from at random for each Provider, except for root,
// which always gets the rocket glyph.
var emojiChoices = []string{"😀", "😃", "😅", "🥲", "🤯", "😝", "😚", "🤥", "💩", "🤡", "🥱", "😔", "🥳", "🤪", "🥰", "😇"}

// Provider implements commands.PromptProvider: a Powerline-style segmented
// prompt (user@host, working directory, time) plus a per-session emoji
// glyph.
type Provider struct {
	emoji string
}

// NewProvider picks this session's emoji once, so repeated prompts stay
// stable within a run rather than re-rolling on every line.
func NewProvider() *Provider {
	return &Provider{emoji: pickEmoji()}
}

func pickEmoji() string {
	u, err := user.Current()
	if err == nil && u.Username == "root" {
		return "🚀"
	}
	return emojiChoices[rand.Intn(len(emojiChoices))]
}

func (p *Provider) GetEmoji() string {
	return p.emoji
}

// GetPrompt renders "user@host path [time]\n<emoji> " using lipgloss
// Powerline segments.
func (p *Provider) GetPrompt() string {
	u, err := user.Current()
	username := "user"
	if err == nil {
		username = u.Username
	}
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown_hostname"
	}

	dir, err := os.Getwd()
	if err != nil {
		dir = "unknown_directory"
	}
	if home := os.Getenv("HOME"); home != "" {
		if dir == home {
			dir = "~"
		} else if strings.HasPrefix(dir, home+"/") {
			dir = "~" + dir[len(home):]
		}
	}

	now := time.Now().Format("02/01/2006 15:04")

	userStyle := lipgloss.NewStyle().Background(currentTheme.Mauve).Foreground(currentTheme.Base).Padding(0, 1).Bold(true)
	pathStyle := lipgloss.NewStyle().Background(currentTheme.Surface).Foreground(currentTheme.Text).Padding(0, 1)

	seg1 := userStyle.Render(fmt.Sprintf("%s@%s", username, hostname))
	sep1 := lipgloss.NewStyle().Foreground(currentTheme.Mauve).Background(currentTheme.Surface).Render("")
	seg2 := pathStyle.Render(fmt.Sprintf("%s [%s]", dir, now))
	sep2 := lipgloss.NewStyle().Foreground(currentTheme.Surface).Render("")

	return fmt.Sprintf("%s%s%s%s\n%s ", seg1, sep1, seg2, sep2, p.emoji)
}
