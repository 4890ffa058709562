package ui

import (
	"adouble-savior/adouble/adstruct"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(path string, s *adstruct.Struct) error {
	entryBrowser := CreateEntryBrowser(path, s)
	if err := tea.NewProgram(entryBrowser).Start(); err != nil {
		err := errors.Wrap(err, "ui.Start error")
		return err
	}
	return nil
}
