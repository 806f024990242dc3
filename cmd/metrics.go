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
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

func metricsCommand(app *saifuInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Prints the registry's counters in the Prometheus text format",
		Args:  argsBetween(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := app.saifu.Metrics().Gatherer().Gather()
			if err != nil {
				return err
			}
			for _, family := range families {
				if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), family); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
