package sampler

import "github.com/sgostarter/libalgebra/equations"

// Point is one sampled function value.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Storage interface {
	Load(key string) (ps []Point, err error)
	Save(key string, ps []Point) error
}

// Request asks for Count samples of Eq over [From, To], stored under Key.
type Request struct {
	Key   string
	Eq    equations.Equation
	From  float64
	To    float64
	Count int
}
