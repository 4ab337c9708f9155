package multipart

import (
	"reflect"
	"strings"
	"sync"
)

// cache of struct tags to avoid repeated parsing of the same struct type
// across multiple calls to tags. The key is the [reflect.Type] of the
// struct, and the value is a slice of *tag, one for each field.
//
// This cache is safe for concurrent use.
var structTagCache sync.Map

type tag struct {
	Name   string
	Ignore bool
}

func tags(fv reflect.Value) []*tag {
	tt := reflect.Indirect(fv).Type()
	if tt.Kind() != reflect.Struct {
		return []*tag{}
	}

	// Check the cache first.
	if cached, ok := structTagCache.Load(tt); ok {
		return cached.([]*tag)
	}

	tags := make([]*tag, tt.NumField())
	for i := 0; i < tt.NumField(); i++ {
		f := tt.Field(i)
		tag := parseTag(f.Tag.Get("form"))
		if !tag.Ignore && tag.Name == "" {
			tag.Name = f.Name
		}
		tags[i] = tag
	}

	structTagCache.Store(tt, tags)
	return tags
}

func parseTag(str string) *tag {
	str = strings.TrimSpace(str)
	if str == "-" {
		return &tag{Ignore: true}
	}

	// The first comma-separated part is the field name; the rest are
	// flags. A tag should never have zero parts but we handle it anyway.
	parts := strings.Split(str, ",")
	if len(parts) == 0 {
		return &tag{Ignore: true}
	}

	t := &tag{}
	name := strings.TrimSpace(parts[0])
	switch name {
	case "-":
		t.Ignore = true
	default:
		t.Name = name
	}

	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == "ignore" {
			t.Ignore = true
		}
	}

	return t
}
