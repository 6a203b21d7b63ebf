package model

// Palette is the ordered set of color variables extracted from one file.
// Names keep the position of their first declaration; values follow the last.
type Palette struct {
	vars  []ColorVariable
	index map[string]int
}

// NewPalette creates a new empty palette
func NewPalette() *Palette {
	return &Palette{
		vars:  make([]ColorVariable, 0),
		index: make(map[string]int),
	}
}

// Set adds a variable, or overwrites the hex and line of an existing one
func (p *Palette) Set(v ColorVariable) {
	if i, ok := p.index[v.Name]; ok {
		p.vars[i] = v
		return
	}
	p.index[v.Name] = len(p.vars)
	p.vars = append(p.vars, v)
}

// Get finds a variable by name
func (p *Palette) Get(name string) (ColorVariable, bool) {
	i, ok := p.index[name]
	if !ok {
		return ColorVariable{}, false
	}
	return p.vars[i], true
}

// Len returns the number of distinct variable names
func (p *Palette) Len() int {
	return len(p.vars)
}

// Names returns variable names in insertion order
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.vars))
	for _, v := range p.vars {
		names = append(names, v.Name)
	}
	return names
}

// Variables returns a copy of the variables in insertion order
func (p *Palette) Variables() []ColorVariable {
	out := make([]ColorVariable, len(p.vars))
	copy(out, p.vars)
	return out
}

// Map returns the plain name -> hex mapping
func (p *Palette) Map() map[string]string {
	m := make(map[string]string, len(p.vars))
	for _, v := range p.vars {
		m[v.Name] = v.Hex
	}
	return m
}
