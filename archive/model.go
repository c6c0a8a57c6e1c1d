package archive

// ComplexRoot is the serializable form of a complex root.
type ComplexRoot struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// Record is one archived solve outcome.
type Record struct {
	ID           uint64        `json:"id"`
	Label        string        `json:"label"`
	Equation     string        `json:"equation"`
	Kind         string        `json:"kind"`
	Roots        []float64     `json:"roots,omitempty"`
	ComplexRoots []ComplexRoot `json:"complexRoots,omitempty"`
	SolvedAt     int64         `json:"solvedAt"`
}
