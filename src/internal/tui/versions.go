package tui

import (
	"fmt"

	"github.com/jinyuli/uvm/src/internal/runtime"
	"github.com/samber/lo"
)

// VersionTable renders a version listing. The version in use is
// highlighted; installed versions carry a check mark.
func VersionTable(title string, versions []runtime.ListedVersion) *Table {
	initStyles()

	hasLTS := lo.SomeBy(versions, func(v runtime.ListedVersion) bool { return v.LTS })

	headers := []string{"", "Version", "Status"}
	if hasLTS {
		headers = append(headers, "Notes")
	}
	table := NewTable(headers...)
	table.SetTitle(title)

	for _, v := range versions {
		marker, status := "", ""
		switch {
		case v.InUse:
			marker, status = Arrow, "in use"
		case v.Installed:
			marker, status = CheckMark, "installed"
		}

		cells := []string{marker, v.Version, status}
		if v.LTS {
			cells = append(cells, StyleLTS.Render("LTS"))
		}

		if v.InUse {
			table.AddActiveRow(cells...)
		} else {
			table.AddRow(cells...)
		}
	}

	installed := lo.CountBy(versions, func(v runtime.ListedVersion) bool { return v.Installed })
	table.SetFooter(fmt.Sprintf("%d versions, %d installed", len(versions), installed))
	return table
}

// CurrentRow is one language in the `uvm current` table
type CurrentRow struct {
	Language string
	Version  string
	Path     string
}

// CurrentTable renders the version in use of each language
func CurrentTable(rows []CurrentRow) *Table {
	initStyles()

	table := NewTable("Language", "Version", "Path")
	table.SetTitle("Current Versions")
	for _, r := range rows {
		if r.Version == "" {
			table.AddRow(r.Language, StyleMuted.Render("none"), "")
			continue
		}
		table.AddActiveRow(r.Language, r.Version, r.Path)
	}
	return table
}
