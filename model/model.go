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

package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// idSuffixLength is the number of random alphanumeric characters after the type prefix.
const idSuffixLength = 10

// IDGenerator returns a fresh identifier for the given type prefix.
type IDGenerator func(prefix string) string

// GenerateID builds an identifier of the form "<prefix>-<10 random alphanumerics>".
// The random part is taken from a version 4 UUID with the dashes removed.
func GenerateID(prefix string) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s-%s", prefix, raw[:idSuffixLength])
}

// Option configures how accounts and wallets are constructed.
type Option func(*options)

type options struct {
	generateID IDGenerator
}

// WithIDGenerator replaces GenerateID. Tests use it to get predictable numbers.
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *options) {
		if gen != nil {
			o.generateID = gen
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{generateID: GenerateID}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
