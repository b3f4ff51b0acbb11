package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"wad-info/report"
	"wad-info/wad"
)

// Browser lists the WAD files of a directory and shows what is known about
// the selected one.
type Browser struct {
	dir     string
	results []wad.Result
	cursor  int
}

func CreateBrowser(dir string) (Browser, error) {
	paths, err := wad.Glob(dir)
	if err != nil {
		return Browser{}, err
	}
	return Browser{
		dir:     dir,
		results: wad.InspectFiles(paths, true),
	}, nil
}

func (b Browser) Selected() (wad.Result, bool) {
	if len(b.results) == 0 {
		return wad.Result{}, false
	}
	return b.results[b.cursor], true
}

func (b Browser) View() string {
	output := "WAD INFO\n\n"
	output += "Current directory: " + b.dir + "\n\n"

	if len(b.results) == 0 {
		output += "No WAD files found\n\n"
		output += "q: quit\n"
		return output
	}

	failed := len(wad.Failed(b.results))
	output += fmt.Sprintf("%d files, %d unreadable\n\n", len(b.results), failed)

	lines := lo.Map(
		b.results,
		func(result wad.Result, index int) string {
			marker := "  "
			if index == b.cursor {
				marker = "> "
			}
			status := ""
			if result.Err != nil {
				status = " (error)"
			}
			return marker + filepath.Base(result.Path) + status
		},
	)
	output += strings.Join(lines, "\n") + "\n\n"

	selected, _ := b.Selected()
	output += describe(selected)
	output += "\nup/k, down/j: move  q: quit\n"
	return output
}

func describe(result wad.Result) string {
	sb := strings.Builder{}
	if result.Err != nil {
		report.Error(&sb, result.Path, result.Err)
		return sb.String()
	}
	inspection := *result.Inspection
	_ = report.Header(&sb, inspection)
	_ = report.Segments(&sb, inspection)
	if title := inspection.Title; title != nil {
		sb.WriteString("\nTitle ID:\t\t" + title.IDHex() + "\n")
		sb.WriteString("Title version:\t\t" + title.VersionString() + "\n")
		sb.WriteString("Title key (enc):\t" + title.KeyHex() + "\n")
	}
	return sb.String()
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return b, tea.Quit
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.results)-1 {
			b.cursor++
		}
	case "home", "g":
		b.cursor = 0
	case "end", "G":
		b.cursor = lo.Max([]int{len(b.results) - 1, 0})
	}
	return b, nil
}

func (b Browser) Init() tea.Cmd {
	return nil
}
