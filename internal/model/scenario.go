package model

// Scenario is a fixture describing a named activity sequence.
type Scenario struct {
	ID         string
	Title      string
	Scene      int
	Activities []string
}
