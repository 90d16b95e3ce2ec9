package editor

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/render"
)

// ErrBadConfig indicates a configuration value that cannot be used.
var ErrBadConfig = errors.New("editor: invalid configuration")

// Config is the interactive editor's YAML configuration. Every field is
// optional; zero values take the defaults.
type Config struct {
	Window struct {
		Title string `yaml:"title"`
	} `yaml:"window"`
	Grid struct {
		Columns  int  `yaml:"columns"`
		Rows     int  `yaml:"rows"`
		CellSize int  `yaml:"cell_size"`
		Padding  int  `yaml:"padding"`
		Diagonal bool `yaml:"diagonal"`
	} `yaml:"grid"`
	Storage struct {
		AppName    string `yaml:"app_name"`
		LayoutName string `yaml:"layout_name"`
	} `yaml:"storage"`
}

// LoadConfig reads the configuration at path. An empty path yields the
// defaults: a 30x20 grid with 30px cells and 10px padding.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("editor: read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("editor: parse config: %w", err)
		}
	}

	// defaults
	geo := render.DefaultGeometry()
	if config.Window.Title == "" {
		config.Window.Title = "gridpath editor"
	}
	if config.Grid.Columns == 0 {
		config.Grid.Columns = 30
	}
	if config.Grid.Rows == 0 {
		config.Grid.Rows = 20
	}
	if config.Grid.CellSize == 0 {
		config.Grid.CellSize = geo.CellSize
	}
	if config.Grid.Padding == 0 {
		config.Grid.Padding = geo.Padding
	}
	if config.Storage.AppName == "" {
		config.Storage.AppName = "gridpath"
	}
	if config.Storage.LayoutName == "" {
		config.Storage.LayoutName = "editor"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects non-positive grid sizes and undrawable cell geometry.
func (c *Config) Validate() error {
	if c.Grid.Columns < 1 || c.Grid.Rows < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrBadConfig, c.Grid.Columns, c.Grid.Rows)
	}
	if err := c.Geometry().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	return nil
}

// Geometry returns the pixel layout described by the config.
func (c *Config) Geometry() render.Geometry {
	return render.Geometry{CellSize: c.Grid.CellSize, Padding: c.Grid.Padding}
}
