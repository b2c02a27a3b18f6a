package repositories

import "time"

// Field-map values arrive from typed request structs and from decoded JSON,
// so the definitions accept the handful of shapes both produce.

func asAmount(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	}
	return 0, false
}

func asID(value any) (uint, bool) {
	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	}
	return 0, false
}

func asString(value any) (string, bool) {
	v, ok := value.(string)
	return v, ok
}

func asBool(value any) (bool, bool) {
	v, ok := value.(bool)
	return v, ok
}

func asTime(value any) (time.Time, bool) {
	v, ok := value.(time.Time)
	return v, ok
}

func asTimePtr(value any) (*time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case *time.Time:
		return v, true
	case time.Time:
		return &v, true
	}
	return nil, false
}
