package decoder

import (
	"github.com/tidwall/gjson"

	"github.com/dmitrijs2005/iisclient/internal/client/models"
)

// ParseGroupInfo projects the /student-groups/user-group-info body. The group
// number is required. The curator may be a nested object or flat
// curator-prefixed keys.
func ParseGroupInfo(body string) (models.GroupInfo, bool) {
	obj := ParseObject(body)
	if len(obj) == 0 {
		return models.GroupInfo{}, false
	}

	number := firstOf(obj, "number", "name")
	if number == "" {
		return models.GroupInfo{}, false
	}

	info := models.GroupInfo{
		Number:   number,
		Faculty:  firstOf(obj, "faculty", "facultyName"),
		Students: []models.GroupStudent{},
	}
	if c, ok := ParseOptionalInt(firstOf(obj, "course")); ok {
		info.Course = c
	}

	if cur := nested(firstOf(obj, "curator", "groupInfoCuratorDto")); cur.IsObject() {
		info.Curator = models.Curator{
			FullName:   pickString(cur, "fullName", "fio"),
			Phone:      pickString(cur, "phone"),
			Email:      pickString(cur, "email"),
			ProfileURL: pickString(cur, "profileUrl", "urlId"),
		}
	} else {
		info.Curator = models.Curator{
			FullName:   firstOf(obj, "curatorName", "curatorFio"),
			Phone:      firstOf(obj, "curatorPhone"),
			Email:      firstOf(obj, "curatorEmail"),
			ProfileURL: firstOf(obj, "curatorProfileUrl"),
		}
	}

	if list := nested(firstOf(obj, "students", "groupInfoStudentDto")); list.IsArray() {
		for i, s := range list.Array() {
			info.Students = append(info.Students, decodeStudent(s, i+1))
		}
	}
	return info, true
}

// decodeStudent accepts either {"number":..,"fullName":..} or a bare name.
func decodeStudent(res gjson.Result, position int) models.GroupStudent {
	if res.Type == gjson.String {
		return models.GroupStudent{Number: position, FullName: res.Str}
	}
	st := models.GroupStudent{Number: position, FullName: pickString(res, "fullName", "fio", "name")}
	if n, ok := pickInt(res, "number"); ok {
		st.Number = n
	}
	return st
}
