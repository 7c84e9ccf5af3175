/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package secret stores password-prompt values in the OS keyring. A password
// prompt with a keyringKey pulls its default from here and writes its
// committed value back on a validated close. Values never touch the config
// file or the dialog document.
package secret

import "github.com/zalando/go-keyring"

const service = "Modalkit"

// Store abstracts the keyring so tests can stub it.
type Store interface {
	Get(service, key string) (string, error)
	Set(service, key, value string) error
	Delete(service, key string) error
}

var store Store = osKeyring{}

type osKeyring struct{}

func (osKeyring) Get(service, key string) (string, error)    { return keyring.Get(service, key) }
func (osKeyring) Set(service, key, value string) error       { return keyring.Set(service, key, value) }
func (osKeyring) Delete(service, key string) error           { return keyring.Delete(service, key) }

// Get reads the secret under key; missing keys return an empty string with
// no error so a fresh machine behaves like an unset default.
func Get(key string) (string, error) {
	v, err := store.Get(service, key)
	if err == keyring.ErrNotFound {
		return "", nil
	}
	return v, err
}

// Set writes the secret under key.
func Set(key, value string) error { return store.Set(service, key, value) }

// Delete removes the secret under key; deleting a missing key is not an error.
func Delete(key string) error {
	err := store.Delete(service, key)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}
