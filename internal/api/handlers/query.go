package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-GymConsole/pkg/ptr"
)

// ListQuery параметры табличного списка: страница, поиск и filters[field]=value
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	Filters map[string]string
}

// ParseListQuery разбирает currentPageIndex, dataPerPage, search и filters[...]
func ParseListQuery(values url.Values) (ListQuery, error) {
	q := ListQuery{
		Page:    1,
		Search:  values.Get("search"),
		Filters: make(map[string]string),
	}

	if raw := values.Get("currentPageIndex"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return ListQuery{}, fmt.Errorf("invalid currentPageIndex %q", raw)
		}
		q.Page = page
	}

	if raw := values.Get("dataPerPage"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage < 1 {
			return ListQuery{}, fmt.Errorf("invalid dataPerPage %q", raw)
		}
		q.PerPage = perPage
	}

	for key, vals := range values {
		if !strings.HasPrefix(key, "filters[") || !strings.HasSuffix(key, "]") {
			continue
		}
		field := strings.TrimSuffix(strings.TrimPrefix(key, "filters["), "]")
		if field == "" || len(vals) == 0 {
			return ListQuery{}, fmt.Errorf("invalid filter %q", key)
		}
		q.Filters[field] = vals[0]
	}

	return q, nil
}

// OptionalInt разбирает необязательный целый query параметр
func OptionalInt(values url.Values, key string) (*int, error) {
	raw := values.Get(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", key, raw)
	}
	return ptr.Ptr(n), nil
}

// OptionalString nil для пустого значения
func OptionalString(values url.Values, key string) *string {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	return ptr.Ptr(raw)
}
