// Package jobsheet is a terminal spreadsheet for tracking job requests.
package jobsheet

import (
	"context"

	nt "jobsheet/entity"
	"jobsheet/grid"
)

const defaultExport = "spreadsheet_data.csv"

// ColumnConfig overrides a column's width or hides it at startup.
type ColumnConfig struct {
	Width  int  `yaml:"width,omitempty"`
	Hidden bool `yaml:"hidden,omitempty"`
}

// Config is read from yaml.
type Config struct {
	LogFile    string                  `yaml:"logfile"`
	Seed       bool                    `yaml:"seed"`
	ExportName string                  `yaml:"export_name"`
	Columns    map[nt.Key]ColumnConfig `yaml:"columns,omitempty"`
}

// DefaultConfig returns the config used when none is given.
func DefaultConfig() *Config {
	return &Config{
		LogFile:    "jobsheet.log",
		Seed:       true,
		ExportName: defaultExport,
	}
}

// NewModel creates the bubbletea model for a session.
func (cfg *Config) NewModel(ctx context.Context, lgr nt.Logger) Model {

	var rows []nt.Row
	if cfg.Seed {
		rows = SampleRows()
	}

	g := grid.New(rows)
	for _, col := range nt.Columns {
		if cfg.Columns[col.Key].Hidden {
			g = g.ToggleColumn(col.Key)
		}
	}

	exportName := cfg.ExportName
	if exportName == "" {
		exportName = defaultExport
	}

	return newModel(ctx, lgr, g, cfg.widths(), exportName)
}

// unexported

func (cfg *Config) widths() map[nt.Key]int {

	widths := map[nt.Key]int{}
	for key, col := range cfg.Columns {
		if col.Width > 0 {
			widths[key] = col.Width
		}
	}
	return widths
}
