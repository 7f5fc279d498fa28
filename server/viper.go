// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NewViper produces a Viper instance with the usual conventions.  The applicationName is
// the configuration file name, the environment prefix, and is used to build the paths
// under /etc and $HOME where configuration files are searched for.  Automatic environment
// mode is turned on.
func NewViper(applicationName string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(applicationName)
	v.AddConfigPath(fmt.Sprintf("/etc/%s", applicationName))
	v.AddConfigPath(fmt.Sprintf("$HOME/.%s", applicationName))
	v.AddConfigPath(".")

	v.SetEnvPrefix(applicationName)
	v.AutomaticEnv()

	return v
}

// ConfigureFlagSet adds the standard flags to a flag set
func ConfigureFlagSet(applicationName string, f *pflag.FlagSet) {
	f.StringP(FileFlag, "f", "", fmt.Sprintf("the configuration file to use.  Overrides the search path for %s.(json|yaml|...)", applicationName))
}

// ParseAndBind parses the given flag set using the supplied arguments and then binds
// the flag set to the specified Viper instance.  If arguments is nil, os.Args[1:] is used.
func ParseAndBind(v *viper.Viper, f *pflag.FlagSet, arguments []string) error {
	if arguments == nil {
		arguments = os.Args[1:]
	}

	if err := f.Parse(arguments); err != nil {
		return err
	}

	return v.BindPFlags(f)
}

// ReadInConfig reads the configuration file named by FileFlag, or else searches the
// standard paths.  Having no configuration file at all is not an error, since every
// setting has a default or can come from the environment.
func ReadInConfig(v *viper.Viper, f *pflag.FlagSet) error {
	if flag := f.Lookup(FileFlag); flag != nil && len(flag.Value.String()) > 0 {
		v.SetConfigFile(flag.Value.String())
		return v.ReadInConfig()
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}

// Unmarshal decodes the subtree at key into target.  Durations may be written as
// strings such as "100ms", and slices as comma-separated strings.
func Unmarshal(v *viper.Viper, key string, target interface{}) error {
	return v.UnmarshalKey(key, target, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
}
