package multipart

import (
	"fmt"
	"reflect"
	"strconv"
)

// InvalidUnmarshalError describes an invalid argument passed to [Unmarshal].
// (The argument to [Unmarshal] must be a non-nil pointer.)
type InvalidUnmarshalError struct {
	Type reflect.Type
}

func (e *InvalidUnmarshalError) Error() string {
	if e.Type == nil {
		return "multipart: Unmarshal(nil)"
	}

	if e.Type.Kind() != reflect.Pointer {
		return "multipart: Unmarshal(non-pointer " + e.Type.String() + ")"
	}
	return "multipart: Unmarshal(nil " + e.Type.String() + ")"
}

// Unmarshaler is the interface implemented by types that can unmarshal a
// form field representation of themselves. [Unmarshaler.UnmarshalForm] must
// copy the value if it wishes to retain it after returning.
type Unmarshaler interface {
	UnmarshalForm(string) error
}

var fileHeaderType = reflect.TypeOf(FileHeader{})

// Unmarshal binds a parsed form onto the struct pointed to by v. Struct
// fields select their form name with a `form:"name"` tag, falling back to
// the Go field name; a tag of "-" skips the field.
//
// Fields of type [FileHeader], *[FileHeader] or [][FileHeader] bind against
// the form's files by field name. Slice fields collect every value of the
// name; scalar fields take the first. Names absent from the form leave the
// target field untouched.
func Unmarshal(form *Form, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &InvalidUnmarshalError{reflect.TypeOf(v)}
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("multipart: target must be a struct")
	}

	tags := tags(rv)
	for i := 0; i < rv.NumField(); i++ {
		if tags[i].Ignore {
			continue
		}
		fv := rv.Field(i)
		if !fv.CanSet() {
			continue
		}
		if err := assignField(form, fv, tags[i].Name); err != nil {
			return fmt.Errorf("multipart: field %q: %w", tags[i].Name, err)
		}
	}
	return nil
}

func assignField(form *Form, v reflect.Value, name string) error {
	// File-typed targets bind against the form's files rather than its
	// fields.
	switch {
	case v.Type() == fileHeaderType:
		if h := form.File(name); h != nil {
			v.Set(reflect.ValueOf(*h))
		}
		return nil
	case v.Type() == reflect.PointerTo(fileHeaderType):
		if h := form.File(name); h != nil {
			v.Set(reflect.ValueOf(h))
		}
		return nil
	case v.Kind() == reflect.Slice && v.Type().Elem() == fileHeaderType:
		if files := form.FilesByField(name); files != nil {
			v.Set(reflect.ValueOf(files))
		}
		return nil
	}

	// Other slice targets collect every value recorded under the name.
	if v.Kind() == reflect.Slice {
		values := form.FieldValues(name)
		if values == nil {
			return nil
		}
		slice := reflect.MakeSlice(v.Type(), len(values), len(values))
		for i, val := range values {
			if err := assignLeaf(slice.Index(i), val); err != nil {
				return err
			}
		}
		v.Set(slice)
		return nil
	}

	val, ok := form.FieldValue(name)
	if !ok {
		return nil
	}
	return assignLeaf(deref(v), val)
}

// dereference a pointer value, allocating a new value if needed.
func deref(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return v.Elem()
	}
	return v
}

// assign a leaf value (string) to v. If v implements [Unmarshaler], use that.
func assignLeaf(v reflect.Value, val string) error {
	if u, ok := asUnmarshaler(v); ok {
		return u.UnmarshalForm(val)
	}
	return setScalar(v, val)
}

func asUnmarshaler(v reflect.Value) (Unmarshaler, bool) {
	if v.CanAddr() {
		if u, ok := v.Addr().Interface().(Unmarshaler); ok {
			return u, true
		}
	}
	if u, ok := v.Interface().(Unmarshaler); ok {
		return u, true
	}
	return nil, false
}

func setScalar(v reflect.Value, val string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(v, val)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(v, val)
	case reflect.Float32, reflect.Float64:
		return setFloat(v, val)
	case reflect.Bool:
		return setBool(v, val)
	default:
		return fmt.Errorf("unsupported type: %v", v.Type())
	}
	return nil
}

func setInt(v reflect.Value, s string) error {
	if s == "" {
		v.SetInt(0)
		return nil
	}
	i, err := strconv.ParseInt(s, 10, v.Type().Bits())
	if err != nil {
		return fmt.Errorf("setInt: %w", err)
	}
	v.SetInt(i)
	return nil
}

func setUint(v reflect.Value, s string) error {
	if s == "" {
		v.SetUint(0)
		return nil
	}
	i, err := strconv.ParseUint(s, 10, v.Type().Bits())
	if err != nil {
		return fmt.Errorf("setUint: %w", err)
	}
	v.SetUint(i)
	return nil
}

func setFloat(v reflect.Value, s string) error {
	if s == "" {
		v.SetFloat(0)
		return nil
	}
	f, err := strconv.ParseFloat(s, v.Type().Bits())
	if err != nil {
		return fmt.Errorf("setFloat: %w", err)
	}
	v.SetFloat(f)
	return nil
}

func setBool(v reflect.Value, s string) error {
	if s == "" {
		v.SetBool(false)
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("setBool: %w", err)
	}
	v.SetBool(b)
	return nil
}
