package decoder

import "github.com/dmitrijs2005/iisclient/internal/client/models"

// ParsePersonalInfo projects the /personal-information body. course is
// required and must be positive.
func ParsePersonalInfo(body string) (models.PersonalInfo, bool) {
	obj := ParseObject(body)
	if len(obj) == 0 {
		return models.PersonalInfo{}, false
	}

	course, ok := ParseOptionalInt(firstOf(obj, "course"))
	if !ok || course < 1 {
		return models.PersonalInfo{}, false
	}

	info := models.PersonalInfo{
		UserIdentity: models.UserIdentity{
			StudentNumber: firstOf(obj, "studentNumber", "username", "number"),
			LastName:      firstOf(obj, "lastName"),
			FirstName:     firstOf(obj, "firstName"),
			MiddleName:    firstOf(obj, "middleName"),
		},
		BirthDate:  firstOf(obj, "birthDate", "birthday"),
		Course:     course,
		Faculty:    firstOf(obj, "faculty", "facultyName"),
		Speciality: firstOf(obj, "speciality", "specialityName"),
		Group:      firstOf(obj, "group", "studentGroup", "groupName"),
		Email:      firstOf(obj, "email"),
		Phone:      firstOf(obj, "phone"),
	}
	if id, ok := ParseOptionalInt(firstOf(obj, "id", "userId")); ok {
		info.UserID = id
	}
	if info.LastName == "" && info.FirstName == "" {
		info.LastName, info.FirstName, info.MiddleName = splitFullName(firstOf(obj, "fio", "fullName"))
	}
	return info, true
}
