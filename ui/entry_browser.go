package ui

import (
	"fmt"
	"strings"

	"adouble-savior/adouble/adentry"
	"adouble-savior/adouble/adstruct"
	"adouble-savior/ds"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	BytesPerLine = 16
	MaxDumpLines = 16
)

type EntryBrowser struct {
	path   string
	s      *adstruct.Struct
	ids    []adentry.ID
	cursor int
}

func CreateEntryBrowser(path string, s *adstruct.Struct) EntryBrowser {
	return EntryBrowser{
		path:   path,
		s:      s,
		ids:    s.IDs(),
		cursor: 0,
	}
}

// HexDump formats bs as offset-prefixed lines of BytesPerLine bytes each.
// Offsets start at base.
func HexDump(bs []byte, base uint32) []string {
	return lo.Map(
		ds.MakeChunks(bs, BytesPerLine),
		func(chunk []byte, i int) string {
			hexes := lo.Map(chunk, func(b byte, _ int) string {
				return fmt.Sprintf("%02x", b)
			})
			return fmt.Sprintf("%08x  %s", base+uint32(i*BytesPerLine), strings.Join(hexes, " "))
		},
	)
}

func (b EntryBrowser) Selected() (adentry.ID, bool) {
	if len(b.ids) == 0 {
		return 0, false
	}
	return b.ids[b.cursor], true
}

func (b EntryBrowser) View() string {
	output := "ADOUBLE SAVIOR\n\n"
	output += "Header: " + b.path + "\n\n"

	if len(b.ids) == 0 {
		return output + "No entries.\n\nq: quit\n"
	}
	for i, id := range b.ids {
		extent, _ := b.s.Extent(id)
		marker := "  "
		if i == b.cursor {
			marker = "> "
		}
		output += fmt.Sprintf(
			"%s%-18s offset 0x%08x  length 0x%08x  (%s)\n",
			marker, id, extent.Offset, extent.Length, extent.Bound,
		)
	}

	output += "\n"
	id, _ := b.Selected()
	data, ok := b.s.Lookup(id)
	if !ok {
		output += "No data held in the header for this entry.\n"
	} else {
		extent, _ := b.s.Extent(id)
		lines := HexDump(data, extent.Offset)
		if len(lines) > MaxDumpLines {
			lines = append(lines[:MaxDumpLines], "...")
		}
		output += strings.Join(lines, "\n") + "\n"
	}

	return output + "\nup/down: select  q: quit\n"
}

func (b EntryBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		if b.cursor < len(b.ids)-1 {
			b.cursor++
		}
	}
	return b, nil
}

func (b EntryBrowser) Init() tea.Cmd {
	return nil
}
