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
	"encoding/json"
	"fmt"

	"github.com/jerry-enebeli/saifu/config"
	"github.com/spf13/cobra"
)

func configCommands() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Prints the configuration saifu runs with, after saifu.json and SAIFU_* overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Fetch()
			if err != nil {
				return fmt.Errorf("error getting config: %w", err)
			}

			data, err := json.MarshalIndent(cfg, "", "    ")
			if err != nil {
				return fmt.Errorf("error printing config: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	return cmd
}
