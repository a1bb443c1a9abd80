package models

// Subject is one markbook line. Grade and AverageGrade are nil when the
// upstream has not set them yet.
type Subject struct {
	Name         string   `json:"name"`
	Hours        float64  `json:"hours"`
	Credits      int      `json:"credits"`
	ControlForm  string   `json:"controlForm"`
	Grade        *int     `json:"grade,omitempty"`
	Retakes      int      `json:"retakes"`
	AverageGrade *float64 `json:"averageGrade,omitempty"`
	RetakeChance float64  `json:"retakeChance"`
	IsOnline     bool     `json:"isOnline"`
}

// Semester keeps subjects in curriculum order.
type Semester struct {
	Number   int       `json:"number"`
	GPA      float64   `json:"gpa"`
	Subjects []Subject `json:"subjects"`
}

// Markbook is the student's transcript, ordered by semester.
type Markbook struct {
	StudentNumber string     `json:"studentNumber"`
	OverallGPA    float64    `json:"overallGPA"`
	Semesters     []Semester `json:"semesters"`
}

// Semester returns the semester with the given number.
func (m Markbook) Semester(number int) (Semester, bool) {
	for _, s := range m.Semesters {
		if s.Number == number {
			return s, true
		}
	}
	return Semester{}, false
}
