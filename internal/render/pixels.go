package render

import "image/color"

// Palette is the cycle of colors used for committed towers, indexed by
// (rank-1) mod len(Palette). Uncovered cells render as near-black.
var Palette = []color.RGBA{
	{R: 0xe6, G: 0x59, B: 0x4d, A: 0xff},
	{R: 0xf2, G: 0xa9, B: 0x3b, A: 0xff},
	{R: 0xe8, G: 0xd4, B: 0x4d, A: 0xff},
	{R: 0x6f, G: 0xbf, B: 0x5a, A: 0xff},
	{R: 0x4d, G: 0xa6, B: 0xc9, A: 0xff},
	{R: 0x5a, G: 0x6f, B: 0xd9, A: 0xff},
	{R: 0xa0, G: 0x5c, B: 0xc4, A: 0xff},
	{R: 0xd9, G: 0x66, B: 0xa3, A: 0xff},
}

var uncovered = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}

// fillCoverageRGBA converts occupancy cells (0 = uncovered, else tower rank)
// into RGBA pixels in buf. Cells owned by highlightRank are drawn white so
// the most recent placement stands out; pass 0 to disable highlighting.
func fillCoverageRGBA(buf []byte, cells []int, highlightRank int) {
	for i, rank := range cells {
		col := uncovered
		switch {
		case rank == 0:
		case rank == highlightRank:
			col = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		default:
			col = Palette[(rank-1)%len(Palette)]
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
