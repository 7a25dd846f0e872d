package styles

import (
	"testing"
)

func TestResolveColor(t *testing.T) {
	palette := map[string]string{
		"default": "#ffffff",
		"power":   "#ff0000",
	}

	tests := []struct {
		name      string
		requested string
		enabled   bool
		want      string
	}{
		{"disabled named", "power", false, "#ffffff"},
		{"disabled literal", "#123456", false, "#ffffff"},
		{"absent", "", true, "#ffffff"},
		{"literal", "#aabbcc", true, "#aabbcc"},
		{"literal uppercase", "#AABBCC", true, "#AABBCC"},
		{"literal with alpha", "#aabbcc80", true, "#aabbcc80"},
		{"literal with suffix", "#aabbcc;junk", true, "#aabbcc;junk"},
		{"short literal", "#abc", true, "#ffffff"},
		{"bad hex", "#gggggg", true, "#ffffff"},
		{"named", "power", true, "#ff0000"},
		{"unknown name", "plasma", true, "#ffffff"},
		{"case sensitive name", "POWER", true, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColor(tt.requested, palette, tt.enabled); got != tt.want {
				t.Errorf("ResolveColor(%q, %v) = %q, want %q", tt.requested, tt.enabled, got, tt.want)
			}
		})
	}
}

func TestTextWidth(t *testing.T) {
	tests := []struct {
		s    string
		size float64
		want float64
	}{
		{"", 22, 0},
		{"A", 22, 13},
		{"RESET", 22, 65},
		{"VCC", 44, 78},
		{"電源", 22, 52},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.s, tt.size); got != tt.want {
			t.Errorf("TextWidth(%q, %v) = %v, want %v", tt.s, tt.size, got, tt.want)
		}
	}
}

func TestLastCharWidth(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"", 0},
		{"RESET", 13},
		{"CS電", 26},
	}
	for _, tt := range tests {
		if got := LastCharWidth(tt.s, 22); got != tt.want {
			t.Errorf("LastCharWidth(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestEscapeXML(t *testing.T) {
	if got := EscapeXML(`A<B & "C"`); got != "A&lt;B &amp; &#34;C&#34;" {
		t.Errorf("EscapeXML() = %q", got)
	}
}
