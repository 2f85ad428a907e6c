// Package config provides configuration management for crumbnav.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/crumbnav/crumbnav/internal/tui/theme"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Theme      string           `yaml:"theme"`
	LogLevel   string           `yaml:"log_level"`
	LogFile    string           `yaml:"log_file,omitempty"`
	Appearance AppearanceConfig `yaml:"appearance"`
	Layout     LayoutConfig     `yaml:"layout"`
	Screens    *ScreenNode      `yaml:"screens,omitempty"`
}

// AppearanceConfig overrides the theme-derived crumb bar colours.
// Empty values keep the theme default.
type AppearanceConfig struct {
	Background string `yaml:"background,omitempty"`
	Title      string `yaml:"title,omitempty"`
	Separator  string `yaml:"separator,omitempty"`
}

// LayoutConfig holds crumb bar geometry in layout units.
type LayoutConfig struct {
	Spacing       float64 `yaml:"spacing"`
	LeftInset     float64 `yaml:"left_inset"`
	CellHeight    float64 `yaml:"cell_height"`
	HeaderHeight  float64 `yaml:"header_height"`
	PaddingFactor float64 `yaml:"padding_factor"`
	StackSpacing  float64 `yaml:"stack_spacing"`
}

// ScreenNode is one screen of the demo navigation tree.
type ScreenNode struct {
	Title       string        `yaml:"title"`
	CrumbTitle  string        `yaml:"crumb_title,omitempty"`
	Description string        `yaml:"description,omitempty"`
	Children    []*ScreenNode `yaml:"children,omitempty"`
}

// Depth returns the number of levels below and including n.
func (n *ScreenNode) Depth() int {
	if n == nil {
		return 0
	}
	deepest := 0
	for _, child := range n.Children {
		if d := child.Depth(); d > deepest {
			deepest = d
		}
	}
	return deepest + 1
}

// Defaults.
const (
	DefaultTheme         = "default"
	DefaultLogLevel      = "info"
	DefaultSpacing       = 8.0
	DefaultLeftInset     = 8.0
	DefaultCellHeight    = 40.0
	DefaultHeaderHeight  = 60.0
	DefaultPaddingFactor = 1.2
	DefaultStackSpacing  = 8.0
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewConfig creates a new configuration with default values.
func NewConfig() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

// Load reads a YAML config file and fills in defaults for missing values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Layout.Spacing == 0 {
		c.Layout.Spacing = DefaultSpacing
	}
	if c.Layout.LeftInset == 0 {
		c.Layout.LeftInset = DefaultLeftInset
	}
	if c.Layout.CellHeight == 0 {
		c.Layout.CellHeight = DefaultCellHeight
	}
	if c.Layout.HeaderHeight == 0 {
		c.Layout.HeaderHeight = DefaultHeaderHeight
	}
	if c.Layout.PaddingFactor == 0 {
		c.Layout.PaddingFactor = DefaultPaddingFactor
	}
	if c.Layout.StackSpacing == 0 {
		c.Layout.StackSpacing = DefaultStackSpacing
	}
	if c.Screens == nil {
		c.Screens = DefaultScreens()
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := theme.ByName(c.Theme); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	if c.Layout.CellHeight <= 0 {
		return fmt.Errorf("cell height must be positive, got %v", c.Layout.CellHeight)
	}
	if c.Layout.HeaderHeight <= 0 {
		return fmt.Errorf("header height must be positive, got %v", c.Layout.HeaderHeight)
	}
	if c.Layout.Spacing < 0 {
		return fmt.Errorf("spacing cannot be negative, got %v", c.Layout.Spacing)
	}
	if c.Layout.LeftInset < 0 {
		return fmt.Errorf("left inset cannot be negative, got %v", c.Layout.LeftInset)
	}
	if c.Layout.StackSpacing < 0 {
		return fmt.Errorf("stack spacing cannot be negative, got %v", c.Layout.StackSpacing)
	}
	if c.Layout.PaddingFactor < 1 {
		return fmt.Errorf("padding factor must be at least 1, got %v", c.Layout.PaddingFactor)
	}

	if c.Screens == nil {
		return errors.New("screens: a root screen is required")
	}
	if err := validateScreen(c.Screens, "screens"); err != nil {
		return err
	}

	return nil
}

func validateScreen(n *ScreenNode, path string) error {
	if n == nil {
		return fmt.Errorf("%s: empty screen entry", path)
	}
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%s: title is required", path)
	}
	for i, child := range n.Children {
		if err := validateScreen(child, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

// ParseLogLevel maps a level name to a slog level.
func ParseLogLevel(level string) (slog.Level, error) {
	l, ok := logLevels[strings.ToLower(level)]
	if !ok {
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", level)
	}
	return l, nil
}

// DefaultScreens returns the built-in demo tree.
func DefaultScreens() *ScreenNode {
	return &ScreenNode{
		Title:       "Home",
		Description: "Start here",
		Children: []*ScreenNode{
			{
				Title:       "Settings",
				Description: "Device and account preferences",
				Children: []*ScreenNode{
					{
						Title:       "Network",
						Description: "Wi-Fi and proxies",
						Children: []*ScreenNode{
							{Title: "Wi-Fi", Description: "Known networks"},
							{Title: "Proxy", Description: "HTTP proxy settings"},
						},
					},
					{
						Title:       "Display",
						Description: "Brightness and theme",
						Children: []*ScreenNode{
							{Title: "Brightness"},
							{Title: "Night Shift", CrumbTitle: "Night"},
						},
					},
					{Title: "About", Description: "Version information"},
				},
			},
			{
				Title:       "Library",
				Description: "Collections and recent items",
				Children: []*ScreenNode{
					{
						Title:       "Collections",
						CrumbTitle:  "Colls",
						Description: "Grouped items",
						Children: []*ScreenNode{
							{Title: "Favorites"},
							{Title: "Archived"},
						},
					},
					{Title: "Recent", Description: "Recently opened"},
				},
			},
			{Title: "Help", Description: "Keyboard shortcuts"},
		},
	}
}
