// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gcalc/eval"
	"github.com/katalvlaran/gcalc/integrate"
	"github.com/katalvlaran/gcalc/matrix"
	"github.com/katalvlaran/gcalc/ode"
	"github.com/katalvlaran/gcalc/roots"
)

// Config keys. Each is also readable from GCALC_<KEY> with dots as underscores.
const (
	keyLogLevel        = "log.level"
	keyLogNoColor      = "log.no_color"
	keyPrecision       = "precision"
	keyRootsLo         = "roots.lo"
	keyRootsHi         = "roots.hi"
	keyRootsStep       = "roots.step"
	keyIntersectStep   = "intersect.step"
	keyIntegrateSteps  = "integrate.steps"
	keyIntegrateGrid   = "integrate.grid"
	keyODEStep         = "ode.h"
	keyODESteps        = "ode.n"
	keyEigenIterations = "eigen.iterations"
	keyMemory          = "memory"

	maxPrecision = 17
)

var errUsage = errors.New("invalid argument")

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v      *viper.Viper
	log    *slog.Logger
	mem    *eval.Memory
	p      *message.Printer
	numFmt string
	out    io.Writer
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogNoColor, false)
	v.SetDefault(keyPrecision, 6)
	v.SetDefault(keyRootsLo, roots.DefaultLo)
	v.SetDefault(keyRootsHi, roots.DefaultHi)
	v.SetDefault(keyRootsStep, roots.DefaultStep)
	v.SetDefault(keyIntersectStep, roots.DefaultIntersectionStep)
	v.SetDefault(keyIntegrateSteps, integrate.DefaultSteps)
	v.SetDefault(keyIntegrateGrid, integrate.DefaultGrid)
	v.SetDefault(keyODEStep, ode.DefaultStep)
	v.SetDefault(keyODESteps, ode.DefaultSteps)
	v.SetDefault(keyEigenIterations, matrix.DefaultEigenIterations)
}

// setup resolves configuration, logging and memory. It runs before every
// subcommand.
func (a *app) setup(cmd *cobra.Command, cfgFile string, vars map[string]string) error {
	a.out = cmd.OutOrStdout()

	a.v.SetEnvPrefix("GCALC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString(keyLogLevel))); err != nil {
		return fmt.Errorf("config: %s: %w", keyLogLevel, err)
	}
	a.log = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    a.v.GetBool(keyLogNoColor),
	}))

	prec := a.v.GetInt(keyPrecision)
	if prec < 0 || prec > maxPrecision {
		return fmt.Errorf("config: %s must be in [0, %d], got %d", keyPrecision, maxPrecision, prec)
	}
	a.numFmt = "%." + strconv.Itoa(prec) + "f"
	a.p = message.NewPrinter(language.English)

	return a.loadMemory(cfgFile, vars)
}

// loadMemory fills the evaluation memory from the config's memory map, then
// from --var bindings, which win. Every --var value is evaluated against the
// config memory alone, so one --var cannot refer to another.
func (a *app) loadMemory(cfgFile string, vars map[string]string) error {
	a.mem = &eval.Memory{}
	section, err := a.memorySection(cfgFile)
	if err != nil {
		return err
	}
	for name, raw := range section {
		val, err := cast.ToFloat64E(raw)
		if err != nil {
			return fmt.Errorf("config: %s.%s: %w", keyMemory, name, err)
		}
		if err = a.mem.Store(name, val); err != nil {
			return fmt.Errorf("config: %s: %w", keyMemory, err)
		}
	}

	base := a.mem.Snapshot()
	for name, raw := range vars {
		val, err := evalNumber(raw, base)
		if err != nil {
			return fmt.Errorf("--var %s: %w", name, err)
		}
		if err = a.mem.Store(name, val); err != nil {
			return fmt.Errorf("--var: %w", err)
		}
	}
	a.log.Debug("memory loaded", "vars", a.mem.Snapshot().Names())

	return nil
}

// memorySection returns the memory map with its names exactly as written.
// viper folds keys to lower case, so YAML, JSON and TOML files are decoded
// directly; any other config format falls back to viper's folded view.
func (a *app) memorySection(cfgFile string) (map[string]any, error) {
	var doc struct {
		Memory map[string]any `yaml:"memory" toml:"memory"`
	}
	ext := strings.ToLower(filepath.Ext(cfgFile))
	switch ext {
	case ".yaml", ".yml", ".json", ".toml":
	default:
		return a.v.GetStringMap(keyMemory), nil
	}

	raw, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if ext == ".toml" {
		err = toml.Unmarshal(raw, &doc)
	} else {
		err = yaml.Unmarshal(raw, &doc) // JSON is valid YAML
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", keyMemory, err)
	}

	return doc.Memory, nil
}

// run times op and logs its outcome.
func (a *app) run(op string, fn func() error) error {
	start := time.Now()
	err := fn()
	if err != nil {
		a.log.Error("command failed", "op", op, "err", err)
		return err
	}
	a.log.Debug("command done", "op", op, "took", time.Since(start))

	return nil
}

// compile parses src in the given variables and warns about names that
// neither the variables nor memory provide.
func (a *app) compile(src string, vars ...string) (*eval.Compiled, error) {
	c, err := eval.Compile(src, vars...)
	if err != nil {
		return nil, err
	}
	if missing := c.Missing(a.mem.Snapshot()); len(missing) > 0 {
		a.log.Warn("unbound names evaluate as failures", "expr", src, "names", missing)
	}

	return c, nil
}

func (a *app) univariate(src string) (func(float64) eval.Result, error) {
	c, err := a.compile(src, "x")
	if err != nil {
		return nil, err
	}

	return eval.Univariate(c, a.mem.Snapshot(), "x"), nil
}

func (a *app) bivariate(src string) (func(x, y float64) eval.Result, error) {
	c, err := a.compile(src, "x", "y")
	if err != nil {
		return nil, err
	}

	return eval.Bivariate(c, a.mem.Snapshot(), "x", "y"), nil
}

// number evaluates a constant expression such as "2.5", "pi/2" or "2*a"
// against the loaded memory.
func (a *app) number(src string) (float64, error) {
	var ctx eval.Context
	if a.mem != nil {
		ctx = a.mem.Snapshot()
	}

	return evalNumber(src, ctx)
}

func evalNumber(src string, ctx eval.Context) (float64, error) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(src), 64); err == nil {
		return v, nil
	}
	c, err := eval.Compile(src)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number: %w", errUsage, src, err)
	}
	r := c.Eval(ctx)
	if !r.Finite() {
		return 0, fmt.Errorf("%w: %q does not evaluate to a finite number", errUsage, src)
	}

	return r.Value, nil
}

func (a *app) numbers(srcs []string) ([]float64, error) {
	out := make([]float64, len(srcs))
	var err error
	for i, s := range srcs {
		if out[i], err = a.number(s); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// floatFlag returns the named flag when set on the command line, else the
// config value for key.
func (a *app) floatFlag(cmd *cobra.Command, name, key string) float64 {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		if v, err := cmd.Flags().GetFloat64(name); err == nil {
			return v
		}
	}

	return a.v.GetFloat64(key)
}

// intFlag is floatFlag for integer flags.
func (a *app) intFlag(cmd *cobra.Command, name, key string) int {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		if v, err := cmd.Flags().GetInt(name); err == nil {
			return v
		}
	}

	return a.v.GetInt(key)
}

// num formats v with the configured precision and digit grouping.
func (a *app) num(v float64) string { return a.p.Sprintf(a.numFmt, v) }

func (a *app) nums(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = a.num(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *app) println(args ...any) { a.p.Fprintln(a.out, args...) }

func (a *app) printf(format string, args ...any) { a.p.Fprintf(a.out, format, args...) }
