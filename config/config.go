/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"encoding/json"
	"log"
	"math"
	"os"
	"strings"
	"sync/atomic"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PROJECT_NAME = "Saifu"
	DEFAULT_LOG_LEVEL    = "warn"
	DEFAULT_LOG_FORMAT   = "text"
)

var ConfigStore atomic.Value

type LogConfig struct {
	Level  string `json:"level" envconfig:"SAIFU_LOG_LEVEL"`
	Format string `json:"format" envconfig:"SAIFU_LOG_FORMAT"`
}

type AccountsConfig struct {
	// DefaultOverdraftLimit applies to premium accounts created without an explicit limit.
	DefaultOverdraftLimit float64 `json:"default_overdraft_limit" envconfig:"SAIFU_DEFAULT_OVERDRAFT_LIMIT"`
}

type TracingConfig struct {
	Enabled     bool `json:"enabled" envconfig:"SAIFU_TRACING_ENABLED"`
	PrettyPrint bool `json:"pretty_print" envconfig:"SAIFU_TRACING_PRETTY_PRINT"`
}

type Configuration struct {
	ProjectName string         `json:"project_name" envconfig:"SAIFU_PROJECT_NAME"`
	Log         LogConfig      `json:"log"`
	Accounts    AccountsConfig `json:"accounts"`
	Tracing     TracingConfig  `json:"tracing"`
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return errors.Wrapf(err, "open config %s", file)
		}
		defer f.Close()
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return errors.Wrapf(err, "decode config %s", file)
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("saifu", &cnf)
	if err != nil {
		return errors.Wrap(err, "read SAIFU_* environment")
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return nil
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded. Create a json file called saifu.json or set SAIFU_* variables")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Log.Level = strings.ToLower(strings.TrimSpace(cnf.Log.Level))
	cnf.Log.Format = strings.ToLower(strings.TrimSpace(cnf.Log.Format))

	if cnf.ProjectName == "" {
		cnf.ProjectName = DEFAULT_PROJECT_NAME
	}

	if cnf.Log.Level == "" {
		cnf.Log.Level = DEFAULT_LOG_LEVEL
	}
	if _, err := logrus.ParseLevel(cnf.Log.Level); err != nil {
		return errors.Wrap(err, "log level")
	}

	switch cnf.Log.Format {
	case "":
		cnf.Log.Format = DEFAULT_LOG_FORMAT
	case "text", "json":
	default:
		return errors.Errorf("log format %q is not supported, use text or json", cnf.Log.Format)
	}

	limit := cnf.Accounts.DefaultOverdraftLimit
	if limit < 0 || math.IsNaN(limit) || math.IsInf(limit, 0) {
		log.Println("Error: default overdraft limit must be a non-negative number.")
		return errors.New("default overdraft limit cannot be negative")
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
