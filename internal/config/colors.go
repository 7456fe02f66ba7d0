package config

// ColorScheme holds the colors the CLI renders the board with
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent       string `yaml:"accent"`        // Column headers
	ColumnBorder string `yaml:"column_border"` // Column frame
	Title        string `yaml:"title"`
	Subtle       string `yaml:"subtle"` // Ids and positions
	Normal       string `yaml:"normal"`
	Success      string `yaml:"success"`
	Error        string `yaml:"error"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:       "default",
		Accent:       "#874BFD",
		ColumnBorder: "#5F87D7",
		Title:        "#D75FD7",
		Subtle:       "#585858",
		Normal:       "#D0D0D0",
		Success:      "#5FD75F",
		Error:        "#FF0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:       "monochrome",
		Accent:       "#FFFFFF",
		ColumnBorder: "#808080",
		Title:        "#FFFFFF",
		Subtle:       "#808080",
		Normal:       "#D0D0D0",
		Success:      "#FFFFFF",
		Error:        "#FFFFFF",
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := DefaultColorScheme()
	if c.Preset == "monochrome" {
		preset = MonochromeColorScheme()
	}
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.Success, preset.Success)
	fill(&c.Error, preset.Error)
}
