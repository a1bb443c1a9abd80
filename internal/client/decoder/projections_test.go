package decoder

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/iisclient/internal/client/models"
)

func TestParsePersonalInfo(t *testing.T) {
	body := `{
		"id": 501,
		"studentNumber": "12345",
		"lastName": "Петров",
		"firstName": "Петр",
		"middleName": "Петрович",
		"birthDate": "2004-05-06",
		"course": 3,
		"faculty": "ФКСиС",
		"speciality": "ПОИТ",
		"group": "121701",
		"email": "p@example.com",
		"phone": null
	}`

	got, ok := ParsePersonalInfo(body)
	require.True(t, ok)

	want := models.PersonalInfo{
		UserIdentity: models.UserIdentity{
			UserID:        501,
			StudentNumber: "12345",
			LastName:      "Петров",
			FirstName:     "Петр",
			MiddleName:    "Петрович",
		},
		BirthDate:  "2004-05-06",
		Course:     3,
		Faculty:    "ФКСиС",
		Speciality: "ПОИТ",
		Group:      "121701",
		Email:      "p@example.com",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParsePersonalInfo mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePersonalInfo_FioFallback(t *testing.T) {
	got, ok := ParsePersonalInfo(`{"fio":"Сидоров Сидор","course":"1"}`)
	require.True(t, ok)
	assert.Equal(t, "Сидоров", got.LastName)
	assert.Equal(t, "Сидор", got.FirstName)
	assert.Equal(t, 1, got.Course)
}

func TestParsePersonalInfo_RequiresCourse(t *testing.T) {
	for _, body := range []string{
		`{"lastName":"X"}`,
		`{"course":null}`,
		`{"course":"abc"}`,
		`{"course":0}`,
		`oops`,
	} {
		_, ok := ParsePersonalInfo(body)
		assert.False(t, ok, "body %s", body)
	}
}

func TestParseMarkbook_SemestersArray(t *testing.T) {
	body := `{
		"studentNumber": "12345",
		"averageMark": 8.4,
		"semesters": [
			{"number": 2, "gpa": 8.1, "subjects": [
				{"name": "Физика", "hours": 120, "credits": 4, "controlForm": "Экзамен", "grade": 8, "retakes": 0, "averageGrade": 7.5, "retakeChance": 0.2, "isOnline": false}
			]},
			{"number": 1, "gpa": 8.7, "subjects": [
				{"subject": "Математика", "zet": "5", "formOfControl": "Зачет", "mark": null, "retakesCount": 1, "retakeChance": 3, "online": true}
			]}
		]
	}`

	got, ok := ParseMarkbook(body)
	require.True(t, ok)
	assert.Equal(t, "12345", got.StudentNumber)
	assert.InDelta(t, 8.4, got.OverallGPA, 1e-9)
	require.Len(t, got.Semesters, 2)

	first := got.Semesters[0]
	assert.Equal(t, 1, first.Number)
	require.Len(t, first.Subjects, 1)
	maths := first.Subjects[0]
	assert.Equal(t, "Математика", maths.Name)
	assert.Equal(t, 5, maths.Credits)
	assert.Equal(t, "Зачет", maths.ControlForm)
	assert.Nil(t, maths.Grade)
	assert.Nil(t, maths.AverageGrade)
	assert.Equal(t, 1, maths.Retakes)
	assert.InDelta(t, 1.0, maths.RetakeChance, 1e-9)
	assert.True(t, maths.IsOnline)

	second, ok := got.Semester(2)
	require.True(t, ok)
	require.Len(t, second.Subjects, 1)
	physics := second.Subjects[0]
	require.NotNil(t, physics.Grade)
	assert.Equal(t, 8, *physics.Grade)
	require.NotNil(t, physics.AverageGrade)
	assert.InDelta(t, 7.5, *physics.AverageGrade, 1e-9)
	assert.InDelta(t, 120, physics.Hours, 1e-9)
	assert.InDelta(t, 0.2, physics.RetakeChance, 1e-9)
}

func TestParseMarkbook_MarkPages(t *testing.T) {
	body := `{"number":"999","markPages":{"3":{"averageMark":7,"marks":[{"subject":"ОАиП","mark":"9"}]},"1":{"marks":[]}}}`

	got, ok := ParseMarkbook(body)
	require.True(t, ok)
	require.Len(t, got.Semesters, 2)
	assert.Equal(t, 1, got.Semesters[0].Number)
	assert.Empty(t, got.Semesters[0].Subjects)
	assert.Equal(t, 3, got.Semesters[1].Number)
	assert.InDelta(t, 7, got.Semesters[1].GPA, 1e-9)
	require.Len(t, got.Semesters[1].Subjects, 1)
	require.NotNil(t, got.Semesters[1].Subjects[0].Grade)
	assert.Equal(t, 9, *got.Semesters[1].Subjects[0].Grade)
}

func TestParseMarkbook_NoSemesters(t *testing.T) {
	got, ok := ParseMarkbook(`{"studentNumber":"1"}`)
	require.True(t, ok)
	assert.NotNil(t, got.Semesters)
	assert.Empty(t, got.Semesters)
}

func TestParseMarkbook_RequiresStudentNumber(t *testing.T) {
	_, ok := ParseMarkbook(`{"averageMark": 9}`)
	assert.False(t, ok)
	_, ok = ParseMarkbook(``)
	assert.False(t, ok)
}

func TestParseGroupInfo_Nested(t *testing.T) {
	body := `{
		"number": "121701",
		"faculty": "ФКСиС",
		"course": 2,
		"curator": {"fullName": "Иванов Иван", "phone": "+375", "email": "c@example.com", "profileUrl": "ivanov"},
		"students": [{"number": 1, "fullName": "Аа Бб"}, {"fio": "Вв Гг"}]
	}`

	got, ok := ParseGroupInfo(body)
	require.True(t, ok)

	want := models.GroupInfo{
		Number:  "121701",
		Faculty: "ФКСиС",
		Course:  2,
		Curator: models.Curator{FullName: "Иванов Иван", Phone: "+375", Email: "c@example.com", ProfileURL: "ivanov"},
		Students: []models.GroupStudent{
			{Number: 1, FullName: "Аа Бб"},
			{Number: 2, FullName: "Вв Гг"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseGroupInfo mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGroupInfo_FlatCuratorAndNames(t *testing.T) {
	body := `{"name":"A-1","curatorName":"Кто-то","curatorEmail":"k@example.com","groupInfoStudentDto":["Один","Два"]}`

	got, ok := ParseGroupInfo(body)
	require.True(t, ok)
	assert.Equal(t, "A-1", got.Number)
	assert.Equal(t, "Кто-то", got.Curator.FullName)
	assert.Equal(t, "k@example.com", got.Curator.Email)
	assert.Equal(t, []models.GroupStudent{{Number: 1, FullName: "Один"}, {Number: 2, FullName: "Два"}}, got.Students)
}

func TestParseGroupInfo_RequiresNumber(t *testing.T) {
	_, ok := ParseGroupInfo(`{"faculty":"X"}`)
	assert.False(t, ok)
}
