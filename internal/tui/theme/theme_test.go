package theme

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	if theme == nil {
		t.Fatal("DefaultTheme returned nil")
	}

	// Verify all color fields are set
	tests := []struct {
		name  string
		color lipgloss.Color
	}{
		{"Base", theme.Base},
		{"Surface", theme.Surface},
		{"Overlay", theme.Overlay},
		{"Muted", theme.Muted},
		{"Subtle", theme.Subtle},
		{"Text", theme.Text},
		{"Primary", theme.Primary},
		{"Secondary", theme.Secondary},
		{"Success", theme.Success},
		{"Warning", theme.Warning},
		{"Error", theme.Error},
		{"Border", theme.Border},
		{"Selection", theme.Selection},
		{"Highlight", theme.Highlight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.color == "" {
				t.Errorf("Theme.%s is empty", tt.name)
			}
		})
	}
}

func TestNeonThemeDiffers(t *testing.T) {
	def := DefaultTheme()
	neon := NeonTheme()

	if neon.Primary == def.Primary {
		t.Error("NeonTheme should have a different primary color")
	}
	if neon.Name != "neon" {
		t.Errorf("NeonTheme().Name = %q, want %q", neon.Name, "neon")
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"default", "default", false},
		{"neon", "neon", false},
		{"solarized", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ByName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err == nil && got.Name != tt.want {
				t.Errorf("ByName(%q).Name = %q, want %q", tt.name, got.Name, tt.want)
			}
		})
	}
}

func TestNames(t *testing.T) {
	if got := Names(); !reflect.DeepEqual(got, []string{"default", "neon"}) {
		t.Errorf("Names() = %v", got)
	}
}

func TestDefaultAppearance(t *testing.T) {
	th := DefaultTheme()
	a := DefaultAppearance(th)

	if a.Background != th.Surface {
		t.Errorf("Background = %q, want %q", a.Background, th.Surface)
	}
	if a.Title != th.Text {
		t.Errorf("Title = %q, want %q", a.Title, th.Text)
	}
	if a.SeparatorIcon != DefaultSeparatorIcon {
		t.Errorf("SeparatorIcon = %q, want %q", a.SeparatorIcon, DefaultSeparatorIcon)
	}

	if nilTheme := DefaultAppearance(nil); nilTheme != a {
		t.Errorf("DefaultAppearance(nil) = %+v, want %+v", nilTheme, a)
	}
}

func TestAppearanceBarStyle(t *testing.T) {
	a := Appearance{Background: "#000000", Title: "#ffffff"}
	style := a.BarStyle()

	if got := style.GetBackground(); got != lipgloss.Color("#000000") {
		t.Errorf("BarStyle background = %v", got)
	}
	if got := style.GetForeground(); got != lipgloss.Color("#ffffff") {
		t.Errorf("BarStyle foreground = %v", got)
	}

	empty := Appearance{}.BarStyle()
	if _, ok := empty.GetBackground().(lipgloss.NoColor); !ok {
		t.Errorf("empty BarStyle background = %v, want NoColor", empty.GetBackground())
	}
}

func TestNewStyles(t *testing.T) {
	s := NewStyles(nil)
	if s == nil {
		t.Fatal("NewStyles(nil) returned nil")
	}
	if s.GetTheme() == nil {
		t.Error("NewStyles(nil) should fall back to the default theme")
	}

	th := NeonTheme()
	if NewStyles(th).GetTheme() != th {
		t.Error("GetTheme() should return the theme passed to NewStyles")
	}
}
