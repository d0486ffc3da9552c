// Package config binds named variables to command line flags, environment variables, and an
// hcl config file. A flag overrides the environment, which overrides the config file, which
// overrides the default.
package config

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/pflag"
)

type setBy int

const (
	byDefault setBy = iota
	byConfig
	byEnv
	byFlag
)

func (by setBy) String() string {
	switch by {
	case byDefault:
		return "default"
	case byConfig:
		return "config"
	case byEnv:
		return "env"
	case byFlag:
		return "flag"
	}
	return fmt.Sprintf("setBy(%d)", int(by))
}

type value interface {
	pflag.Value
	SetValue(v interface{}) error
}

type Config struct {
	fs   *pflag.FlagSet
	vars map[string]*Var
}

type Var struct {
	cfg      *Config
	ptr      interface{}
	val      value
	name     string
	short    string
	usage    string
	env      string
	noConfig bool
	by       setBy
}

func NewConfig(fs *pflag.FlagSet) *Config {
	return &Config{
		fs:   fs,
		vars: map[string]*Var{},
	}
}

// Var starts the definition of a variable; ptr must be a *bool or a *string, and the
// definition is finished by the method of the matching type.
func (c *Config) Var(ptr interface{}, name string) *Var {
	if _, ok := c.vars[name]; ok {
		panic(fmt.Sprintf("config: variable redefined: %s", name))
	}
	return &Var{
		cfg:  c,
		ptr:  ptr,
		name: name,
	}
}

func (v *Var) Usage(usage string) *Var {
	v.usage = usage
	return v
}

func (v *Var) Short(short string) *Var {
	v.short = short
	return v
}

func (v *Var) Env(env string) *Var {
	v.env = env
	return v
}

// NoConfig prevents the variable from being set in a config file.
func (v *Var) NoConfig() *Var {
	v.noConfig = true
	return v
}

func (v *Var) Bool(b bool) *bool {
	p, ok := v.ptr.(*bool)
	if !ok {
		panic(fmt.Sprintf("config: %s: expected *bool got %T", v.name, v.ptr))
	}
	*p = b
	v.define((*boolValue)(p))
	return p
}

func (v *Var) String(s string) *string {
	p, ok := v.ptr.(*string)
	if !ok {
		panic(fmt.Sprintf("config: %s: expected *string got %T", v.name, v.ptr))
	}
	*p = s
	v.define((*stringValue)(p))
	return p
}

func (v *Var) define(val value) {
	v.val = val
	v.cfg.vars[v.name] = v

	flg := v.cfg.fs.VarPF(val, v.name, v.short, v.usage)
	if _, ok := val.(*boolValue); ok {
		flg.NoOptDefVal = "true"
	}
}

func (c *Config) setFlags() {
	for name, v := range c.vars {
		if c.fs.Changed(name) {
			v.by = byFlag
		} else if v.by == byFlag {
			v.by = byDefault
		}
	}
}

// Env sets each variable that has an environment variable and was not set by a flag.
func (c *Config) Env() error {
	c.setFlags()

	for _, v := range c.vars {
		if v.env == "" || v.by == byFlag {
			continue
		}
		s, ok := os.LookupEnv(v.env)
		if !ok {
			continue
		}
		err := v.val.Set(s)
		if err != nil {
			return fmt.Errorf("config: %s: %s", v.env, err)
		}
		v.by = byEnv
	}

	return nil
}

// Load sets the variables that still have their default values from the config file.
func (c *Config) Load(filename string) error {
	c.setFlags()

	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	err = c.load(f)
	if err != nil {
		return fmt.Errorf("config: %s: %s", filename, err)
	}
	return nil
}

// List calls fn for each variable in name order.
func (c *Config) List(fn func(name, val, by string)) {
	names := make([]string, 0, len(c.vars))
	for name := range c.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := c.vars[name]
		fn(name, v.val.String(), v.by.String())
	}
}

func (c *Config) Write(w io.Writer) {
	c.List(
		func(name, val, by string) {
			fmt.Fprintf(w, "%s = %s (%s)\n", name, val, by)
		})
}
