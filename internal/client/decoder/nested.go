package decoder

import (
	"github.com/tidwall/gjson"
)

// pick returns the first of keys present in res with a non-null value.
func pick(res gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := res.Get(gjson.Escape(k)); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

func pickString(res gjson.Result, keys ...string) string {
	return pick(res, keys...).String()
}

func pickInt(res gjson.Result, keys ...string) (int, bool) {
	return ParseOptionalInt(pick(res, keys...).String())
}

func pickFloat(res gjson.Result, keys ...string) (float64, bool) {
	return ParseOptionalDouble(pick(res, keys...).String())
}

// nested parses an opaque value captured by ParseObject. Anything that is not
// valid JSON yields a non-existent result.
func nested(raw string) gjson.Result {
	if raw == "" || !gjson.Valid(raw) {
		return gjson.Result{}
	}
	return gjson.Parse(raw)
}
