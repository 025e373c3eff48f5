// Package ctmap draws a distance map as a grey scale picture. Each
// pixel block is one pair of residues. Close pairs are dark and
// anything at or beyond the cutoff is white. The title goes in a strip
// along the top.
package ctmap

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/andrew-torda/matrix"
	"github.com/golang/freetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Opts controls the picture. Zero values are replaced by defaults.
type Opts struct {
	Cutoff   float32 // distances from here on are white, Angstrom
	Scale    int     // pixels per residue
	FontSize float64 // points, for the title
}

const (
	dfltCutoff   = 20
	dfltScale    = 4
	dfltFontSize = 12
	dpi          = 72
	margin       = 4 // pixels around the title
)

func (o *Opts) fill() {
	if o.Cutoff <= 0 {
		o.Cutoff = dfltCutoff
	}
	if o.Scale <= 0 {
		o.Scale = dfltScale
	}
	if o.FontSize <= 0 {
		o.FontSize = dfltFontSize
	}
}

// shade turns a distance into a grey level.
func shade(d, cutoff float32) color.Gray {
	if d >= cutoff {
		return color.Gray{Y: 255}
	}
	if d < 0 {
		d = 0
	}
	return color.Gray{Y: uint8(255 * d / cutoff)}
}

// titleHeight is the strip for the title, in pixels.
func titleHeight(title string, fontSize float64) int {
	if title == "" {
		return 0
	}
	return int(fontSize*dpi/72) + 2*margin
}

// Image makes the picture without writing it.
func Image(mat *matrix.FMatrix2d, title string, opts Opts) (*image.Gray, error) {
	if mat == nil {
		return nil, errors.New("no matrix")
	}
	nr, nc := mat.Size()
	if nr == 0 || nr != nc {
		return nil, errors.New("distance matrix must be square and not empty")
	}
	opts.fill()
	top := titleHeight(title, opts.FontSize)
	side := nr * opts.Scale
	img := image.NewGray(image.Rect(0, 0, side, side+top))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			r := image.Rect(j*opts.Scale, top+i*opts.Scale, (j+1)*opts.Scale, top+(i+1)*opts.Scale)
			draw.Draw(img, r, image.NewUniform(shade(mat.Mat[i][j], opts.Cutoff)), image.Point{}, draw.Src)
		}
	}
	if top == 0 {
		return img, nil
	}

	fnt, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	c := freetype.NewContext()
	c.SetDPI(dpi)
	c.SetFont(fnt)
	c.SetFontSize(opts.FontSize)
	c.SetClip(image.Rect(0, 0, side, top))
	c.SetDst(img)
	c.SetSrc(image.Black)
	pt := freetype.Pt(margin, margin+int(c.PointToFixed(opts.FontSize)>>6))
	if _, err := c.DrawString(title, pt); err != nil {
		return nil, err
	}
	return img, nil
}

// Render writes the distance map to w as a png.
func Render(w io.Writer, mat *matrix.FMatrix2d, title string, opts Opts) error {
	img, err := Image(mat, title, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
