package config

import (
	"fmt"
	"strconv"
)

type boolValue bool

func (b *boolValue) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*b = boolValue(v)
	return nil
}

func (b *boolValue) SetValue(v interface{}) error {
	bv, ok := v.(bool)
	if !ok {
		return fmt.Errorf("parsing %v: invalid syntax", v)
	}
	*b = boolValue(bv)
	return nil
}

func (b *boolValue) String() string {
	return strconv.FormatBool(bool(*b))
}

func (_ *boolValue) Type() string {
	return "bool"
}

type stringValue string

func (s *stringValue) Set(val string) error {
	*s = stringValue(val)
	return nil
}

func (s *stringValue) SetValue(v interface{}) error {
	sv, ok := v.(string)
	if !ok {
		return fmt.Errorf("parsing %v: invalid syntax", v)
	}
	return s.Set(sv)
}

func (s *stringValue) String() string {
	return string(*s)
}

func (_ *stringValue) Type() string {
	return "string"
}
