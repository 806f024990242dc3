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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jerry-enebeli/saifu"
	"github.com/jerry-enebeli/saifu/config"
	"github.com/jerry-enebeli/saifu/internal/apierror"
	"github.com/jerry-enebeli/saifu/model"
)

// Saifu represents the CLI application, encapsulating the root Cobra command.
type Saifu struct {
	cmd *cobra.Command
	app *saifuInstance
}

// saifuInstance holds the wallet registry shared by every command of one process,
// including all lines typed into the shell.
type saifuInstance struct {
	saifu      *saifu.Saifu
	cnf        *config.Configuration
	configFile string
	jsonOutput bool
	opts       []model.Option
	stopTracer func(context.Context) error
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(apierror.ExitInternal)
	}
}

// preRun loads the configuration and creates the registry once per process.
func preRun(app *saifuInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if app.saifu != nil {
			return nil
		}

		err := config.InitConfig(app.configFile)
		if err != nil {
			return apierror.NewAPIError(apierror.ErrInternalServer, errors.Wrap(err, "error loading config").Error(), nil)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}
		setupLogging(cnf, cmd.ErrOrStderr())

		if cnf.Tracing.Enabled {
			stop, err := setupTracing(cnf, cmd.ErrOrStderr())
			if err != nil {
				return errors.Wrap(err, "error starting tracer")
			}
			app.stopTracer = stop
		}

		newSaifu, err := saifu.NewSaifu(app.opts...)
		if err != nil {
			return errors.Wrap(err, "error creating saifu")
		}

		app.saifu = newSaifu
		app.cnf = cnf
		return nil
	}
}

func setupLogging(cnf *config.Configuration, w io.Writer) {
	logrus.SetOutput(w)
	if cnf.Log.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	level, err := logrus.ParseLevel(cnf.Log.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)
}

// newRootCommand builds the command tree. The shell builds a fresh tree for every line it
// reads, so interactive trees leave out the shell command itself.
func newRootCommand(app *saifuInstance, interactive bool) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "saifu",
		Short:         "Wallets and multi-currency accounts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if !interactive {
		rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "./saifu.json", "Configuration file for saifu")
		rootCmd.PersistentFlags().BoolVar(&app.jsonOutput, "json", false, "Print responses as JSON")
	}
	rootCmd.PersistentPreRunE = preRun(app)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apierror.NewAPIError(apierror.ErrInvalidInput, err.Error(), nil)
	})

	rootCmd.AddCommand(createWalletCommand(app))
	rootCmd.AddCommand(createAccountCommand(app))
	rootCmd.AddCommand(depositCommand(app))
	rootCmd.AddCommand(withdrawCommand(app))
	rootCmd.AddCommand(transferCommand(app))
	rootCmd.AddCommand(balanceCommand(app))
	rootCmd.AddCommand(showCommand(app))
	rootCmd.AddCommand(listCommand(app))
	rootCmd.AddCommand(configCommands())
	rootCmd.AddCommand(metricsCommand(app))
	if !interactive {
		rootCmd.AddCommand(shellCommand(app))
	}
	return rootCmd
}

// NewCLI creates the command-line interface for saifu.
func NewCLI(opts ...model.Option) *Saifu {
	app := &saifuInstance{opts: opts}
	return &Saifu{cmd: newRootCommand(app, false), app: app}
}

// run executes the root command and returns the process exit code.
func (s Saifu) run(args []string) int {
	s.cmd.SetArgs(args)
	err := s.cmd.Execute()
	if s.app.stopTracer != nil {
		if stopErr := s.app.stopTracer(context.Background()); stopErr != nil {
			logrus.Error(stopErr)
		}
	}
	if err != nil {
		fmt.Fprintln(s.cmd.ErrOrStderr(), err)
	}
	return apierror.MapErrorToExitCode(err)
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	os.Exit(cli.run(os.Args[1:]))
}
