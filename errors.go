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
	"fmt"

	"github.com/jerry-enebeli/saifu/internal/apierror"
	"github.com/jerry-enebeli/saifu/model"
)

// mapModelError turns a core error into an APIError with the matching code.
func mapModelError(err error) error {
	if err == nil {
		return nil
	}
	kind := model.KindOf(err)
	details := map[string]interface{}{"kind": kind}
	switch kind {
	case model.ErrCurrencyNotFound, model.ErrCurrencyMismatch:
		return apierror.NewAPIError(apierror.ErrNotFound, err.Error(), details)
	case model.ErrDuplicateCurrency, model.ErrWalletSealed:
		return apierror.NewAPIError(apierror.ErrConflict, err.Error(), details)
	case model.ErrInvalidOverdraft, model.ErrInvalidAmount, model.ErrNegativeAmount:
		return apierror.NewAPIError(apierror.ErrInvalidInput, err.Error(), details)
	case "":
		return apierror.NewAPIError(apierror.ErrInvalidInput, err.Error(), nil)
	default:
		return apierror.NewAPIError(apierror.ErrDomain, err.Error(), details)
	}
}

func invalidInput(err error) error {
	return apierror.NewAPIError(apierror.ErrInvalidInput, err.Error(), err)
}

func walletNotFound(id string, known []string) error {
	message := fmt.Sprintf("wallet %s not found", id)
	if suggestion, ok := suggestID(id, known); ok {
		return apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("%s, did you mean %s?", message, suggestion), map[string]string{"suggestion": suggestion})
	}
	return apierror.NewAPIError(apierror.ErrNotFound, message, nil)
}
