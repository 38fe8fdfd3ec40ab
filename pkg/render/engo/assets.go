// pkg/render/engo/assets.go
package engo

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"
)

// fontURL is the name the bundled font is registered under
const fontURL = "goregular.ttf"

// AssetManager holds the colours and font of the viewer
type AssetManager struct {
	palette     []color.Color
	static      color.Color
	background  color.Color
	hudFontSize float64
}

// NewAssetManager creates a new asset manager
func NewAssetManager() *AssetManager {
	return &AssetManager{
		palette: []color.Color{
			color.RGBA{230, 80, 70, 255},
			color.RGBA{70, 170, 230, 255},
			color.RGBA{240, 200, 60, 255},
			color.RGBA{110, 210, 120, 255},
			color.RGBA{200, 120, 230, 255},
			color.RGBA{250, 150, 60, 255},
		},
		static:      color.RGBA{160, 160, 160, 255},
		background:  color.RGBA{20, 20, 28, 255},
		hudFontSize: 14,
	}
}

// LoadAssets registers the bundled font with engo. It must run after engo
// has started, from a scene's Preload.
func (am *AssetManager) LoadAssets() error {
	if err := engo.Files.LoadReaderData(fontURL, bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	return nil
}

// HUDFont builds the font used for overlay text
func (am *AssetManager) HUDFont() (*common.Font, error) {
	font := &common.Font{
		URL:  fontURL,
		FG:   color.White,
		Size: am.hudFontSize,
	}
	if err := font.CreatePreloaded(); err != nil {
		return nil, fmt.Errorf("failed to create font: %w", err)
	}
	return font, nil
}

// BodyColor returns the fill colour of the i-th body
func (am *AssetManager) BodyColor(i int) color.Color {
	if i < 0 {
		i = -i
	}
	return am.palette[i%len(am.palette)]
}

// StaticColor returns the fill colour of static bodies
func (am *AssetManager) StaticColor() color.Color {
	return am.static
}

// Background returns the window clear colour
func (am *AssetManager) Background() color.Color {
	return am.background
}
