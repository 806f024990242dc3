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
	"regexp"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sequentialIDs returns a generator producing "<prefix>-0000000001", "<prefix>-0000000002", ...
func sequentialIDs() IDGenerator {
	var n int64
	return func(prefix string) string {
		return fmt.Sprintf("%s-%010d", prefix, atomic.AddInt64(&n, 1))
	}
}

func TestGenerateID(t *testing.T) {
	pattern := regexp.MustCompile(`^Premium-[a-zA-Z0-9]{10}$`)

	id := GenerateID("Premium")
	assert.Regexp(t, pattern, id)
	assert.NotEqual(t, id, GenerateID("Premium"))
}

func TestWithIDGenerator(t *testing.T) {
	gen := sequentialIDs()

	account := NewBasicAccount("USD", WithIDGenerator(gen))
	wallet := NewMultiCurrencyWallet(WithIDGenerator(gen))

	assert.Equal(t, "Basic-0000000001", account.AccountNumber())
	assert.Equal(t, "MultiCurrency-0000000002", wallet.WalletID())
}

func TestWithIDGenerator_NilKeepsDefault(t *testing.T) {
	account := NewBasicAccount("USD", WithIDGenerator(nil))
	assert.Regexp(t, `^Basic-[a-zA-Z0-9]{10}$`, account.AccountNumber())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrDuplicateCurrency, KindOf(newError(ErrDuplicateCurrency, msgDuplicateCurrency)))
	assert.Equal(t, ErrWalletSealed, KindOf(fmt.Errorf("wrapped: %w", newError(ErrWalletSealed, msgWalletSealed))))
	assert.Equal(t, ErrorKind(""), KindOf(fmt.Errorf("plain")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}
