package decoder

import (
	"sort"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/dmitrijs2005/iisclient/internal/client/models"
)

// ParseMarkbook projects the /markbook body. The student number is required.
// Semesters come either from a "semesters" array or from a "markPages"
// object keyed by semester number; the result is ordered by semester number.
func ParseMarkbook(body string) (models.Markbook, bool) {
	obj := ParseObject(body)
	if len(obj) == 0 {
		return models.Markbook{}, false
	}

	number := firstOf(obj, "studentNumber", "number")
	if number == "" {
		return models.Markbook{}, false
	}

	mb := models.Markbook{StudentNumber: number, Semesters: []models.Semester{}}
	if gpa, ok := ParseOptionalDouble(firstOf(obj, "overallGPA", "averageMark", "gpa")); ok {
		mb.OverallGPA = gpa
	}

	if list := nested(obj["semesters"]); list.IsArray() {
		for i, sem := range list.Array() {
			mb.Semesters = append(mb.Semesters, decodeSemester(sem, i+1))
		}
	} else if pages := nested(obj["markPages"]); pages.IsObject() {
		pages.ForEach(func(key, value gjson.Result) bool {
			n, err := strconv.Atoi(key.String())
			if err != nil {
				return true
			}
			mb.Semesters = append(mb.Semesters, decodeSemester(value, n))
			return true
		})
	}
	sort.SliceStable(mb.Semesters, func(i, j int) bool {
		return mb.Semesters[i].Number < mb.Semesters[j].Number
	})
	return mb, true
}

func decodeSemester(res gjson.Result, fallback int) models.Semester {
	sem := models.Semester{Number: fallback, Subjects: []models.Subject{}}
	if n, ok := pickInt(res, "number", "semester"); ok {
		sem.Number = n
	}
	if gpa, ok := pickFloat(res, "gpa", "averageMark"); ok {
		sem.GPA = gpa
	}
	pick(res, "subjects", "marks").ForEach(func(_, s gjson.Result) bool {
		if s.IsObject() {
			sem.Subjects = append(sem.Subjects, decodeSubject(s))
		}
		return true
	})
	return sem
}

func decodeSubject(res gjson.Result) models.Subject {
	sub := models.Subject{
		Name:        pickString(res, "name", "subject"),
		ControlForm: pickString(res, "controlForm", "formOfControl"),
		IsOnline:    pick(res, "isOnline", "online").Bool(),
	}
	if h, ok := pickFloat(res, "hours"); ok {
		sub.Hours = h
	}
	if c, ok := pickInt(res, "credits", "zet"); ok {
		sub.Credits = c
	}
	if r, ok := pickInt(res, "retakes", "retakesCount"); ok {
		sub.Retakes = r
	}
	if g, ok := pickInt(res, "grade", "mark"); ok {
		sub.Grade = &g
	}
	if a, ok := pickFloat(res, "averageGrade", "averageMark"); ok {
		sub.AverageGrade = &a
	}
	if p, ok := pickFloat(res, "retakeChance"); ok {
		sub.RetakeChance = min(max(p, 0), 1)
	}
	return sub
}
