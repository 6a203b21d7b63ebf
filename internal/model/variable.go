package model

// ColorVariable is a single `$name: #hex;` declaration from a stylesheet
type ColorVariable struct {
	Name string `json:"name" yaml:"name"`
	Hex  string `json:"hex" yaml:"hex"`
	Line int    `json:"line,omitempty" yaml:"line,omitempty"` // 1-based source line
}

// SimilarPair is two variables whose colors are closer than the threshold.
// A always precedes B in palette order.
type SimilarPair struct {
	A        ColorVariable `json:"a" yaml:"a"`
	B        ColorVariable `json:"b" yaml:"b"`
	Distance float64       `json:"distance" yaml:"distance"`
}
