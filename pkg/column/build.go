package column

import (
	"fmt"
	"math"
	"time"

	"github.com/ajitpratap0/lambdadb/pkg/errors"
	"github.com/ajitpratap0/lambdadb/pkg/schema"
)

// Build constructs a column of dataType from untyped values, as produced by a
// YAML or JSON decoder. A nil element is a null. An element whose host type
// does not match dataType fails with a type_mismatch error carrying the
// element index.
func Build(dataType schema.DataType, values []any) (Column, error) {
	switch dataType {
	case schema.Int64:
		out, err := convertAll(values, dataType, toInt64)
		if err != nil {
			return nil, err
		}
		return NewInt64(out), nil
	case schema.Utf8:
		out, err := convertAll(values, dataType, toString)
		if err != nil {
			return nil, err
		}
		return NewUtf8(out), nil
	case schema.Float64:
		out, err := convertAll(values, dataType, toFloat64)
		if err != nil {
			return nil, err
		}
		return NewFloat64(out), nil
	case schema.Bool:
		out, err := convertAll(values, dataType, toBool)
		if err != nil {
			return nil, err
		}
		return NewBool(out), nil
	case schema.Timestamp:
		out, err := convertAll(values, dataType, toTime)
		if err != nil {
			return nil, err
		}
		return NewTimestamp(out), nil
	default:
		return nil, errors.Newf(errors.ErrorTypeValidation, "cannot build column of unsupported type %s", dataType).
			WithDetail(errors.DetailActual, dataType.String())
	}
}

func convertAll[T any](values []any, dataType schema.DataType, conv func(any) (T, bool)) ([]Optional[T], error) {
	out := make([]Optional[T], len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		converted, ok := conv(v)
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeTypeMismatch,
				"element %d: cannot use %T value %v as %s", i, v, v, dataType).
				WithDetail(errors.DetailIndex, i).
				WithDetail(errors.DetailExpected, dataType.String()).
				WithDetail(errors.DetailActual, fmt.Sprintf("%T", v))
		}
		out[i] = Some(converted)
	}
	return out, nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case float64:
		// Decoders hand out whole numbers as float64.
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		i, ok := toInt64(v)
		return float64(i), ok
	}
}

func toString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func toBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func toTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}
