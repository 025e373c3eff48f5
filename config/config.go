// Package config is for program wide settings that are unmarshalled
// from Viper. Settings come, in rising priority, from defaults, a
// config file, PROTSTRUCT_ environment variables and flags bound by
// the commands (see: /cmd/protstruct).
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/andrew-torda/protstruct/pdb/ctmap"
	"github.com/andrew-torda/protstruct/pdb/oldfmt"
)

// EnvPrefix goes in front of environment variables, so parse.water is
// PROTSTRUCT_PARSE_WATER.
const EnvPrefix = "PROTSTRUCT"

// ParseConfig says which atoms the reader keeps
type ParseConfig struct {
	// keep hydrogen atoms
	Hydrogens bool `mapstructure:"hydrogens"`

	// keep waters
	Water bool `mapstructure:"water"`

	// keep atoms from HETATM records
	Hetero bool `mapstructure:"hetero"`

	// model to read, counting from 0
	Model int `mapstructure:"model"`
}

// CtmapConfig is for distance map pictures
type CtmapConfig struct {
	// distances from here on are white
	Cutoff float32 `mapstructure:"cutoff"`

	// pixels per residue
	Scale int `mapstructure:"scale"`
}

// Config is the root-level settings struct
type Config struct {
	Parse ParseConfig `mapstructure:"parse"`
	Ctmap CtmapConfig `mapstructure:"ctmap"`

	// where diagnostics go: "" for nowhere, "stdout", "stderr" or a file
	Log string `mapstructure:"log"`
}

// SetDefaults puts the defaults into v. They are the same as
// oldfmt.DefaultOptions.
func SetDefaults(v *viper.Viper) {
	dflt := oldfmt.DefaultOptions()
	v.SetDefault("parse.hydrogens", dflt.IncludeHydrogens)
	v.SetDefault("parse.water", dflt.IncludeWater)
	v.SetDefault("parse.hetero", dflt.IncludeHetero)
	v.SetDefault("parse.model", dflt.ModelIndex)
	v.SetDefault("ctmap.cutoff", 20.0)
	v.SetDefault("ctmap.scale", 4)
	v.SetDefault("log", "")
}

// NewViper returns a viper with defaults and environment variables set
// up. If cfgFile is not empty, it is read too.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Load unmarshals the settings in v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	return c, err
}

// Options converts the parse settings for the reader. The logger is
// left for the caller.
func (c Config) Options() oldfmt.Options {
	return oldfmt.Options{
		IncludeHydrogens: c.Parse.Hydrogens,
		IncludeWater:     c.Parse.Water,
		IncludeHetero:    c.Parse.Hetero,
		ModelIndex:       c.Parse.Model,
	}
}

// CtmapOpts converts the picture settings.
func (c Config) CtmapOpts() ctmap.Opts {
	return ctmap.Opts{Cutoff: c.Ctmap.Cutoff, Scale: c.Ctmap.Scale}
}
