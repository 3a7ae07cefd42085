// Package config resolves the CLI configuration from flags, ENV variables and dotenv files.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/furniture-crm/crm-cli/internal/pkg/env"
	"github.com/furniture-crm/crm-cli/internal/pkg/log"
	"github.com/furniture-crm/crm-cli/internal/pkg/utils/errors"
	"github.com/furniture-crm/crm-cli/internal/pkg/validator"
)

// Config contains parsed flags and ENV variables.
// Fields with the "flag" tag are loaded, fields with the "validate" tag are required by all commands.
type Config struct {
	Verbose        bool   `flag:"verbose"`
	VerboseAPI     bool   `flag:"verbose-api"`
	LogFilePath    string `flag:"log-file"`
	NonInteractive bool   `flag:"non-interactive"`
	WorkingDir     string `flag:"working-dir"`
	ConfigDir      string `flag:"config-dir"`
	APIURL         string `flag:"api-url" name:"API url" validate:"required,url"`
	AuthURL        string `flag:"auth-url" name:"auth url" validate:"required,url"`
	AuthAnonKey    string `flag:"auth-anon-key" name:"auth anon key" validate:"required"`
}

// BindFlags defines the flags shared by all commands.
func BindFlags(flags *pflag.FlagSet) {
	flags.SortFlags = true
	flags.BoolP("verbose", "v", false, "print details")
	flags.Bool("verbose-api", false, "log each API request and response")
	flags.StringP("log-file", "l", "", "path to a log file for details")
	flags.Bool("non-interactive", false, "disable interactive dialogs")
	flags.StringP("working-dir", "d", "", "use other working directory")
	flags.String("config-dir", "", "directory of the stored session, default is the user config dir")
	flags.String("api-url", "", `CRM API url, eg. "http://localhost:3001/api"`)
	flags.String("auth-url", "", "auth service url")
	flags.String("auth-anon-key", "", "auth service public key")
}

// LoadFlags loads only values of the flags, without ENV variables.
// It is used to set up the logger before the full load.
func LoadFlags(flags *pflag.FlagSet) *Config {
	cfg := &Config{}
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		panic(errors.Wrap(err, "cannot bind flags"))
	}
	cfg.fill(v)
	return cfg
}

// Load resolves the configuration, the precedence is: flag, ENV variable, dotenv file, default.
// Dotenv files are searched in the working directory.
// All missing and invalid values are reported in one error.
func Load(ctx context.Context, logger log.Logger, fs afero.Fs, osEnvs *env.Map, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "cannot bind flags")
	}

	workingDir, err := workingDirectory(v.GetString("working-dir"))
	if err != nil {
		return nil, err
	}

	// ENVs are merged as the config layer, so a changed flag takes precedence.
	envs := env.LoadDotEnv(logger, osEnvs, fs, workingDir)
	naming := env.NewNamingConvention(env.Prefix)
	fromEnvs := make(map[string]any)
	flags.VisitAll(func(f *pflag.Flag) {
		if value, found := envs.Lookup(naming.FlagToEnv(f.Name)); found {
			fromEnvs[f.Name] = value
		}
	})
	if err := v.MergeConfigMap(fromEnvs); err != nil {
		return nil, errors.Wrap(err, "cannot merge ENV variables")
	}

	cfg := &Config{}
	cfg.fill(v)
	cfg.WorkingDir = workingDir
	cfg.normalize()

	if cfg.ConfigDir == "" {
		// nolint: forbidigo
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.ConfigDir = dir
		} else {
			return nil, errors.Wrap(err, "cannot determine user config dir, please use the --config-dir flag")
		}
	}

	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}

	logger.Debug(cfg.Dump())
	return cfg, nil
}

// Validate checks required values, missing values are reported with the flag and ENV variable names.
func (c *Config) Validate(ctx context.Context) error {
	errs := errors.NewMultiError()
	val := validator.New()
	naming := env.NewNamingConvention(env.Prefix)
	value := reflect.ValueOf(c).Elem()
	for _, field := range reflect.VisibleFields(value.Type()) {
		flag := field.Tag.Get("flag")
		rules := field.Tag.Get("validate")
		if rules == "" {
			continue
		}

		name := field.Tag.Get("name")
		fieldValue := value.FieldByIndex(field.Index)
		if fieldValue.IsZero() {
			errs.Append(errors.Errorf(`missing %s, please use "--%s" flag or ENV variable "%s"`, name, flag, naming.FlagToEnv(flag)))
			continue
		}

		if err := val.Var(ctx, fieldValue.Interface(), rules, name); err != nil {
			errs.Append(err)
		}
	}
	return errs.ErrorOrNil()
}

// Dump returns the configuration for the debug log, the anon key is masked.
func (c *Config) Dump() string {
	re := regexp.MustCompile(`(AuthAnonKey:"[^"]{1,7})[^"]*(")`)
	return re.ReplaceAllString(fmt.Sprintf("Parsed config: %#v", *c), `$1*****$2`)
}

func (c *Config) fill(v *viper.Viper) {
	value := reflect.ValueOf(c).Elem()
	for _, field := range reflect.VisibleFields(value.Type()) {
		flag := field.Tag.Get("flag")
		if flag == "" || !v.IsSet(flag) {
			continue
		}
		switch field.Type.Kind() {
		case reflect.Bool:
			value.FieldByIndex(field.Index).SetBool(v.GetBool(flag))
		case reflect.String:
			value.FieldByIndex(field.Index).SetString(v.GetString(flag))
		default:
			panic(errors.Errorf(`unexpected type "%s" of the field "%s"`, field.Type, field.Name))
		}
	}
}

func (c *Config) normalize() {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	c.AuthURL = strings.TrimRight(strings.TrimSpace(c.AuthURL), "/")
	c.AuthAnonKey = strings.TrimSpace(c.AuthAnonKey)
}

func workingDirectory(fromFlag string) (string, error) {
	if fromFlag != "" {
		return filepath.Clean(fromFlag), nil
	}
	// nolint: forbidigo
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "cannot get current working directory")
	}
	return dir, nil
}
