package chart

// Palette cycles through an ordered list of colors.
type Palette struct {
	colors []string
	cursor int
}

// NewPalette copies `colors`, which must not be empty.
func NewPalette(colors []string) *Palette {
	return &Palette{colors: append([]string(nil), colors...)}
}

// Next returns the color at the cursor and advances it,
// going back to the first color after the last one.
func (p *Palette) Next() string {
	c := p.colors[p.cursor]
	p.cursor++
	if p.cursor == len(p.colors) {
		p.cursor = 0
	}
	return c
}

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.colors) }
