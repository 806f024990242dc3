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

package saifu

import (
	"sync"

	"github.com/jerry-enebeli/saifu/config"
	"github.com/jerry-enebeli/saifu/model"
)

// Saifu is an in-memory registry of wallets. It is safe for concurrent use.
type Saifu struct {
	mu      sync.RWMutex
	wallets map[string]model.Wallet
	order   []string

	opts             []model.Option
	defaultOverdraft float64
	metrics          *Metrics
}

// NewSaifu creates an empty registry. Options are passed on to every wallet and account
// it creates, so tests can pin identifiers with model.WithIDGenerator.
func NewSaifu(opts ...model.Option) (*Saifu, error) {
	configuration, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	return &Saifu{
		wallets:          make(map[string]model.Wallet),
		opts:             opts,
		defaultOverdraft: configuration.Accounts.DefaultOverdraftLimit,
		metrics:          NewMetrics(),
	}, nil
}

// Metrics exposes the registry's operation counters.
func (s *Saifu) Metrics() *Metrics {
	return s.metrics
}

func (s *Saifu) register(wallet model.Wallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[wallet.WalletID()] = wallet
	s.order = append(s.order, wallet.WalletID())
}

func (s *Saifu) lookup(id string) (model.Wallet, []string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if wallet, ok := s.wallets[id]; ok {
		return wallet, nil, true
	}
	known := make([]string, len(s.order))
	copy(known, s.order)
	return nil, known, false
}
