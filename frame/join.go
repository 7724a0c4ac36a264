package frame

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Join produces the inner join of this DataFrame with another, on equality of the given columns.
// The result contains this DataFrame's columns followed by the other's non-key columns.
// Rows with a nil key value never match.
func (df *DataFrame) Join(other *DataFrame, on ...string) (*DataFrame, error) {
	if len(on) == 0 {
		return nil, fmt.Errorf("Join requires at least one key column")
	}
	leftKeys, err := keyIndices(df.schema, on)
	if err != nil {
		return nil, err
	}
	rightKeys, err := keyIndices(other.schema, on)
	if err != nil {
		return nil, err
	}
	isKey := make(map[string]bool, len(on))
	for i, name := range on {
		isKey[name] = true
		lt := df.schema.schema[name].Type()
		rt := other.schema.schema[name].Type()
		if reflect.TypeOf(lt) != reflect.TypeOf(rt) {
			return nil, fmt.Errorf("Join key %s has dtype %s on the left and %s on the right", on[i], lt.Dtype(), rt.Dtype())
		}
	}

	// result schema: left columns, then right non-key columns
	schema := df.schema.Clone()
	rightCols := make([]int, 0, other.schema.NumColumns())
	err = other.schema.ForEachColumn(func(name string, col *Column) error {
		if isKey[name] {
			return nil
		}
		if _, err := schema.CreateColumn(name, col.Type()); err != nil {
			return err
		}
		rightCols = append(rightCols, col.Index())
		return nil
	})
	if err != nil {
		return nil, err
	}

	// index the right side by key hash
	index := make(map[uint64][]int)
	for i, row := range other.rows {
		key, ok := rowKey(row, rightKeys)
		if !ok {
			continue
		}
		h := xxhash.Sum64String(key)
		index[h] = append(index[h], i)
	}

	rows := make([][]interface{}, 0)
	for _, lrow := range df.rows {
		key, ok := rowKey(lrow, leftKeys)
		if !ok {
			continue
		}
		for _, ri := range index[xxhash.Sum64String(key)] {
			// guard against hash collisions
			if !keysEqual(lrow, other.rows[ri], leftKeys, rightKeys) {
				continue
			}
			joined := make([]interface{}, 0, schema.NumColumns())
			joined = append(joined, lrow...)
			for _, idx := range rightCols {
				joined = append(joined, other.rows[ri][idx])
			}
			rows = append(rows, joined)
		}
	}
	return &DataFrame{schema: schema, rows: rows}, nil
}

func keyIndices(schema *Schema, on []string) ([]int, error) {
	indices := make([]int, len(on))
	for i, name := range on {
		col, err := schema.GetColumn(name)
		if err != nil {
			return nil, err
		}
		indices[i] = col.Index()
	}
	return indices, nil
}

// rowKey serializes the key columns of a row, each value length-prefixed.
// ok is false if any key value is nil.
func rowKey(row []interface{}, keys []int) (key string, ok bool) {
	var res strings.Builder
	for _, idx := range keys {
		if row[idx] == nil {
			return "", false
		}
		s := keyString(row[idx])
		res.WriteString(strconv.Itoa(len(s)))
		res.WriteByte(':')
		res.WriteString(s)
	}
	return res.String(), true
}

// keyString is a lossless rendering of a key value, unlike ColumnType.ToString
func keyString(v interface{}) string {
	switch v := v.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprintf("%#v", v)
}

// keysEqual compares the typed key values of two rows
func keysEqual(left, right []interface{}, leftKeys, rightKeys []int) bool {
	for i := range leftKeys {
		l, r := left[leftKeys[i]], right[rightKeys[i]]
		switch lv := l.(type) {
		case time.Time:
			rv, ok := r.(time.Time)
			if !ok || !lv.Equal(rv) {
				return false
			}
		case []byte:
			rv, ok := r.([]byte)
			if !ok || !bytes.Equal(lv, rv) {
				return false
			}
		default:
			if l != r {
				return false
			}
		}
	}
	return true
}
