package art

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/arcanaland/cardwar/internal/card"
)

// Face geometry in source pixels, before resizing
const (
	faceWidth  = 120
	faceHeight = 168
	border     = 4
	pipSize    = 14
)

var (
	white    = color.RGBA{255, 255, 255, 255}
	edge     = color.RGBA{60, 60, 60, 255}
	backdrop = color.RGBA{0, 0, 0, 255}
)

// pip positions as fractions of the inner face, per rank count
var pipLayouts = map[int][][2]float64{
	1:  {{0.5, 0.5}},
	2:  {{0.5, 0.2}, {0.5, 0.8}},
	3:  {{0.5, 0.2}, {0.5, 0.5}, {0.5, 0.8}},
	4:  {{0.3, 0.2}, {0.7, 0.2}, {0.3, 0.8}, {0.7, 0.8}},
	5:  {{0.3, 0.2}, {0.7, 0.2}, {0.5, 0.5}, {0.3, 0.8}, {0.7, 0.8}},
	6:  {{0.3, 0.2}, {0.7, 0.2}, {0.3, 0.5}, {0.7, 0.5}, {0.3, 0.8}, {0.7, 0.8}},
	7:  {{0.3, 0.2}, {0.7, 0.2}, {0.5, 0.35}, {0.3, 0.5}, {0.7, 0.5}, {0.3, 0.8}, {0.7, 0.8}},
	8:  {{0.3, 0.2}, {0.7, 0.2}, {0.5, 0.35}, {0.3, 0.5}, {0.7, 0.5}, {0.5, 0.65}, {0.3, 0.8}, {0.7, 0.8}},
	9:  {{0.3, 0.15}, {0.7, 0.15}, {0.3, 0.38}, {0.7, 0.38}, {0.5, 0.5}, {0.3, 0.62}, {0.7, 0.62}, {0.3, 0.85}, {0.7, 0.85}},
	10: {{0.3, 0.15}, {0.7, 0.15}, {0.5, 0.27}, {0.3, 0.38}, {0.7, 0.38}, {0.3, 0.62}, {0.7, 0.62}, {0.5, 0.73}, {0.3, 0.85}, {0.7, 0.85}},
}

// Face draws the card face. Number cards get one pip per rank value and
// court cards get a framed panel in the suit color.
func Face(c card.Card, suitColor colorful.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, faceWidth, faceHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{edge}, image.Point{}, draw.Src)

	inner := image.Rect(border, border, faceWidth-border, faceHeight-border)
	draw.Draw(img, inner, &image.Uniform{white}, image.Point{}, draw.Src)

	ink := colorfulToColor(suitColor)

	if c.Rank >= card.Jack {
		panel := inner.Inset(18)
		draw.Draw(img, panel, &image.Uniform{ink}, image.Point{}, draw.Src)
		// one white band per court step: Jack 1, Queen 2, King 3
		bands := int(c.Rank-card.Jack) + 1
		step := panel.Dy() / (bands + 1)
		for i := 1; i <= bands; i++ {
			y := panel.Min.Y + i*step
			band := image.Rect(panel.Min.X+6, y-3, panel.Max.X-6, y+3)
			draw.Draw(img, band, &image.Uniform{white}, image.Point{}, draw.Src)
		}
		return img
	}

	size := pipSize
	if c.Rank == card.Ace {
		size = pipSize * 3
	}

	for _, pos := range pipLayouts[int(c.Rank)+1] {
		cx := inner.Min.X + int(pos[0]*float64(inner.Dx()))
		cy := inner.Min.Y + int(pos[1]*float64(inner.Dy()))
		pip := image.Rect(cx-size/2, cy-size/2, cx+size/2, cy+size/2)
		draw.Draw(img, pip, &image.Uniform{ink}, image.Point{}, draw.Src)
	}

	return img
}

// Render returns the card face as ANSI art of width x height character
// cells. Each cell covers a 2x2 block of pixels.
func Render(c card.Card, suitColor colorful.Color, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid art size: %dx%d", width, height)
	}
	return imageToAnsi(Face(c, suitColor), width, height), nil
}

// imageToAnsi converts an image to ANSI art
func imageToAnsi(img image.Image, width, height int) string {
	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder

	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			col1, _ := colorful.MakeColor(getColorAt(resized, x, y))
			col2, _ := colorful.MakeColor(getColorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(getColorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(getColorAt(resized, x+1, y+1))

			// Top pixels as foreground, bottom pixels as background
			fg := colorfulToColor(averageColor(col1, col2))
			bg := colorfulToColor(averageColor(col3, col4))

			buffer.WriteString(ansiColorString('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return backdrop
}

// averageColor calculates the average of multiple colors
func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func colorfulToColor(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ansiColorString formats a character with 24-bit ANSI color codes
func ansiColorString(char rune, fg, bg color.RGBA) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, char)
}
