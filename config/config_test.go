package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/terror/rsql/config"
)

func TestFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test_flags", pflag.ContinueOnError)
	cfg := config.NewConfig(fs)
	b := cfg.Var(new(bool), "bool").Usage("bool variable").Bool(true)
	s := cfg.Var(new(string), "string").String("default")
	f := cfg.Var(new(string), "file").NoConfig().String("rsql.hcl")
	v := cfg.Var(new(bool), "verbose").Short("v").Bool(false)
	if *b != true {
		t.Errorf("*b != true")
	}
	if *s != "default" {
		t.Errorf("*s != \"default\"")
	}
	err := fs.Parse([]string{"--bool=false", "--file", "other.hcl", "-v"})
	if err != nil {
		t.Fatalf("fs.Parse() failed with %s", err)
	}
	if *b != false {
		t.Errorf("*b != false")
	}
	if *s != "default" {
		t.Errorf("*s != \"default\"")
	}
	if *f != "other.hcl" {
		t.Errorf("*f got %s want other.hcl", *f)
	}
	if *v != true {
		t.Errorf("*v != true")
	}

	err = fs.Parse([]string{"--bool", "--verbose=maybe"})
	if err == nil {
		t.Errorf("fs.Parse(--verbose=maybe) did not fail")
	}
}

func TestRedefine(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Var(string) after Var(string) did not fail")
		}
	}()

	cfg := config.NewConfig(pflag.NewFlagSet("test", pflag.ContinueOnError))
	cfg.Var(new(string), "string").String("")
	cfg.Var(new(string), "string").String("")
}

func TestWrongType(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Var(new(int)).Bool() did not fail")
		}
	}()

	cfg := config.NewConfig(pflag.NewFlagSet("test", pflag.ContinueOnError))
	cfg.Var(new(int), "int").Bool(true)
}

func TestEnv(t *testing.T) {
	fs := pflag.NewFlagSet("test_flags", pflag.ContinueOnError)
	cfg := config.NewConfig(fs)
	b := cfg.Var(new(bool), "bool").Env("X_BOOL").Usage("bool variable").Bool(true)
	v := cfg.Var(new(bool), "verbose").Env("X_VERBOSE").Bool(false)
	s := cfg.Var(new(string), "string").Usage("string variable").Env("X_STRING").String("default")
	if *b != true {
		t.Errorf("*b != true")
	}
	if *s != "default" {
		t.Errorf("*s != \"default\"")
	}
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_VERBOSE", "true")
	t.Setenv("X_STRING", "from environment")
	err := fs.Parse([]string{"--bool=false"})
	if err != nil {
		t.Fatalf("fs.Parse() failed with %s", err)
	}
	err = cfg.Env()
	if err != nil {
		t.Errorf("cfg.Env() failed with %s", err)
	}
	if *b != false {
		t.Errorf("*b != false")
	}
	if *v != true {
		t.Errorf("*v != true")
	}
	if *s != "from environment" {
		t.Errorf("*s != \"from environment\"")
	}

	t.Setenv("X_VERBOSE", "not a bool")
	fs = pflag.NewFlagSet("test_flags", pflag.ContinueOnError)
	cfg = config.NewConfig(fs)
	cfg.Var(new(bool), "verbose").Env("X_VERBOSE").Bool(false)
	if cfg.Env() == nil {
		t.Errorf("cfg.Env() did not fail")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "rsql.hcl")
	err := os.WriteFile(filename, []byte(`border = false
log-level = "debug"
`), 0666)
	if err != nil {
		t.Fatal(err)
	}

	fs := pflag.NewFlagSet("test_load", pflag.ContinueOnError)
	cfg := config.NewConfig(fs)
	border := cfg.Var(new(bool), "border").Bool(true)
	level := cfg.Var(new(string), "log-level").Env("X_LOG_LEVEL").String("info")
	t.Setenv("X_LOG_LEVEL", "warn")

	err = cfg.Env()
	if err != nil {
		t.Fatalf("cfg.Env() failed with %s", err)
	}
	err = cfg.Load(filename)
	if err != nil {
		t.Fatalf("cfg.Load() failed with %s", err)
	}
	if *border != false {
		t.Errorf("*border != false")
	}
	if *level != "warn" {
		t.Errorf("*level got %s want warn", *level)
	}

	var sb strings.Builder
	cfg.Write(&sb)
	want := "border = false (config)\nlog-level = warn (env)\n"
	if sb.String() != want {
		t.Errorf("cfg.Write() got %q want %q", sb.String(), want)
	}

	err = cfg.Load(filepath.Join(dir, "missing.hcl"))
	if !os.IsNotExist(err) {
		t.Errorf("cfg.Load(missing) got %v want not exist", err)
	}
}
