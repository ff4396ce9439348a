package wallpaper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   Mode
		wantOK bool
	}{
		{in: "color", want: ModeColor, wantOK: true},
		{in: "stretch", want: ModeStretch, wantOK: true},
		{in: "fit", want: ModeFit, wantOK: true},
		{in: "center", want: ModeCenter, wantOK: true},
		{in: "tile", want: ModeTile, wantOK: true},
		{in: "crop"},
		{in: "Center"},
		{in: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseMode(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeOr(t *testing.T) {
	assert.Equal(t, ModeTile, ModeOr("tile", DefaultMode))
	assert.Equal(t, DefaultMode, ModeOr("screen", DefaultMode))
	assert.Equal(t, ModeFit, ModeOr("", ModeFit))
}

func TestValidDisplay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{":0", true},
		{":1", true},
		{":12", true},
		{":", false},
		{"0", false},
		{":0.0", false},
		{":a", false},
		{"", false},
		{"localhost:0", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidDisplay(tt.in))
		})
	}
}

func TestDisplayOr(t *testing.T) {
	assert.Equal(t, ":2", DisplayOr(":2", DefaultDisplay))
	assert.Equal(t, DefaultDisplay, DisplayOr("two", DefaultDisplay))
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, "color|stretch|fit|center|tile", ModeNames("|"))
}
