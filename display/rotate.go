// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package display

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Rotate returns img turned clockwise by degrees (0, 90, 180 or 270).
// Any other value returns img unchanged.
func Rotate(img image.Image, degrees int) image.Image {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	var (
		m    f64.Aff3
		size image.Point
	)
	switch degrees {
	case 90:
		m = f64.Aff3{0, -1, h, 1, 0, 0}
		size = image.Pt(b.Dy(), b.Dx())
	case 180:
		m = f64.Aff3{-1, 0, w, 0, -1, h}
		size = image.Pt(b.Dx(), b.Dy())
	case 270:
		m = f64.Aff3{0, 1, 0, -1, 0, w}
		size = image.Pt(b.Dy(), b.Dx())
	default:
		return img
	}

	// Translate the source to the origin first.
	m[2] -= m[0]*float64(b.Min.X) + m[1]*float64(b.Min.Y)
	m[5] -= m[3]*float64(b.Min.X) + m[4]*float64(b.Min.Y)

	dst := image.NewRGBA(image.Rectangle{Max: size})
	xdraw.NearestNeighbor.Transform(dst, m, img, b, xdraw.Src, nil)
	return dst
}
