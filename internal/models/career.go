package models

// Subject belongs to a career; Year references one of the career's year labels.
type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Year string `json:"year"`
}

// Career is a study program with an ordered list of year labels.
type Career struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Years    []string  `json:"years"`
	Subjects []Subject `json:"subjects"`
}

// HasYear reports whether the label is one of the career's years.
func (c Career) HasYear(label string) bool {
	for _, y := range c.Years {
		if y == label {
			return true
		}
	}
	return false
}

// Classroom is a physical room available for scheduling.
type Classroom struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Capacity int    `db:"capacity" json:"capacity"`
	Location string `db:"location" json:"location"`
}
