package core

// Size describes the dimensions of a simulation lattice. D is the number of
// depth layers; flat simulations report D == 1.
type Size struct {
	W int
	H int
	D int
}

// Cells returns the total number of lattice sites.
func (s Size) Cells() int {
	d := s.D
	if d <= 0 {
		d = 1
	}
	return s.W * s.H * d
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
