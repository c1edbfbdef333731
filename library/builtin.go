// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package library

// programs that are always available. the data is written out as 16bit
// instructions to make the listings easier to follow
var builtin = []struct {
	name string
	data []byte
}{
	{
		// draws the sixteen glyphs of the font in two rows of eight and
		// then loops forever
		name: "hexfont",
		data: words(
			0x6000, // 200  LD   V0, 00
			0x6101, // 202  LD   V1, 01
			0x6201, // 204  LD   V2, 01
			0xf029, // 206  LD   F, V0
			0xd125, // 208  DRW  V1, V2, 5
			0x7001, // 20a  ADD  V0, 01
			0x7108, // 20c  ADD  V1, 08
			0x4008, // 20e  SNE  V0, 08
			0x2218, // 210  CALL 218
			0x4010, // 212  SNE  V0, 10
			0x1214, // 214  JP   214
			0x1206, // 216  JP   206
			0x6101, // 218  LD   V1, 01
			0x6208, // 21a  LD   V2, 08
			0x00ee, // 21c  RET
		),
	},
	{
		// waits for a key and draws the glyph for it in the middle of the
		// screen until the key is released
		name: "keypad",
		data: words(
			0x00e0, // 200  CLS
			0xf00a, // 202  LD   V0, K
			0xf029, // 204  LD   F, V0
			0x611c, // 206  LD   V1, 1c
			0x620d, // 208  LD   V2, 0d
			0xd125, // 20a  DRW  V1, V2, 5
			0xe09e, // 20c  SKP  V0
			0x1212, // 20e  JP   212
			0x120c, // 210  JP   20c
			0xd125, // 212  DRW  V1, V2, 5
			0x1202, // 214  JP   202
		),
	},
}

func words(w ...uint16) []byte {
	b := make([]byte, 0, len(w)*2)
	for _, v := range w {
		b = append(b, byte(v>>8), byte(v))
	}
	return b
}
