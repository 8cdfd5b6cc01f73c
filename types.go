package rowza

// Vec2 is a screen position or size in pixels.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned box; X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Vertex matches the attribute layout of backend/opengl: two position
// floats, two texture floats, then four color bytes.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32
}

// DrawCmd draws ElemCount indices from IndexOffset with one texture and one
// clip rect (x1, y1, x2, y2). Indices are relative to VertexOffset.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32
	TextureID    uint32 // 0 = untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// Packed colors, see RGBA.
const (
	ColorWhite uint32 = 0xFFFFFFFF
	ColorBlack uint32 = 0xFF000000
	ColorGray  uint32 = 0xFF808080
)

// RGBA packs a color as 0xAABBGGRR, the byte order GL reads from Vertex.Color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
