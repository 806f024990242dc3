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
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const shellPrompt = "saifu> "

// shellCommand runs every line read from stdin as a command against the same registry, so
// wallets created on one line are visible to the next.
func shellCommand(app *saifuInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Runs commands interactively against one in-memory registry",
		Args:  argsBetween(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, shellPrompt)
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}

				fields := strings.Fields(scanner.Text())
				if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
					continue
				}
				if fields[0] == "exit" || fields[0] == "quit" {
					return nil
				}

				line := newRootCommand(app, true)
				line.SetArgs(fields)
				line.SetOut(out)
				line.SetErr(cmd.ErrOrStderr())
				if err := line.ExecuteContext(cmd.Context()); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			}
		},
	}
}
