package listing

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

// fieldIndex кэш: тип -> json-имя поля -> индекс в структуре
var fieldIndex sync.Map

func indexFor(t reflect.Type) map[string][]int {
	if cached, ok := fieldIndex.Load(t); ok {
		return cached.(map[string][]int)
	}

	index := make(map[string][]int)
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		index[name] = f.Index
	}

	actual, _ := fieldIndex.LoadOrStore(t, index)
	return actual.(map[string][]int)
}

// Lookup возвращает значение поля структуры по его JSON имени.
// Поддерживает указатели и встроенные структуры
func Lookup(item any, name string) (any, bool) {
	v := reflect.ValueOf(item)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false
	}

	idx, ok := indexFor(v.Type())[name]
	if !ok {
		return nil, false
	}

	field, err := v.FieldByIndexErr(idx)
	if err != nil {
		return nil, false
	}
	return field.Interface(), true
}

// Stringify приводит значение поля к строке для поиска, фильтров и экспорта
func Stringify(v any) string {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return ""
	}

	switch val := rv.Interface().(type) {
	case string:
		return val
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02 15:04")
	case fmt.Stringer:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
