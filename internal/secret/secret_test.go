/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package secret

import (
	"testing"

	"github.com/zalando/go-keyring"
)

// memStore stubs the OS keyring for tests.
type memStore map[string]string

func (m memStore) Get(service, key string) (string, error) {
	v, ok := m[service+"/"+key]
	if !ok {
		return "", keyring.ErrNotFound
	}
	return v, nil
}

func (m memStore) Set(service, key, value string) error {
	m[service+"/"+key] = value
	return nil
}

func (m memStore) Delete(service, key string) error {
	k := service + "/" + key
	if _, ok := m[k]; !ok {
		return keyring.ErrNotFound
	}
	delete(m, k)
	return nil
}

func withMemStore(t *testing.T) memStore {
	t.Helper()
	old := store
	m := memStore{}
	store = m
	t.Cleanup(func() { store = old })
	return m
}

func TestGetMissingKeyIsEmpty(t *testing.T) {
	withMemStore(t)
	v, err := Get("nothing")
	if err != nil || v != "" {
		t.Fatalf("Get missing = %q, %v", v, err)
	}
}

func TestSetGetDeleteRoundTrip(t *testing.T) {
	withMemStore(t)
	if err := Set("db_password", "s3cret"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, err := Get("db_password")
	if err != nil || v != "s3cret" {
		t.Fatalf("Get = %q, %v", v, err)
	}
	if err := Delete("db_password"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := Delete("db_password"); err != nil {
		t.Fatalf("Delete of missing key should be nil, got %v", err)
	}
}
