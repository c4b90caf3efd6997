// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration file can't be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Handles describes which types are shared-ownership handles and how their methods behave.
type Handles struct {
	// Types lists qualified names ("example.com/rc.Shared") of handle types.
	// Listed types are recognized without inspecting their method sets.
	Types []string `yaml:"handles,omitempty"`

	// Retain lists method names creating an additional owned reference.
	Retain []string `yaml:"retain,omitempty"`

	// Release lists method names giving up the owned reference.
	Release []string `yaml:"release,omitempty"`

	// Mutate lists method names changing the sharing relationship of the handle.
	Mutate []string `yaml:"mutate,omitempty"`

	// Access lists method names returning a pointer to the pointee. Calls are rewritten to the parameter itself.
	Access []string `yaml:"access,omitempty"`

	// Load lists method names returning a copy of the pointee. Calls are rewritten to a dereference.
	Load []string `yaml:"load,omitempty"`

	// NoDetect disables recognition of handle types by their method set.
	NoDetect bool `yaml:"no-detect,omitempty"`
}

// DefaultHandles returns the default [Handles] configuration.
func DefaultHandles() Handles {
	return Handles{
		Retain:  []string{"Clone", "Retain", "Share", "Copy"},
		Release: []string{"Release", "Drop", "DecRef"},
		Mutate:  []string{"Reset", "Swap", "Store", "Set", "CompareAndSwap"},
		Access:  []string{"Get", "Ptr", "Deref"},
		Load:    []string{"Load", "Value"},
	}
}

// Merge overrides every non-empty list in h with the values from o.
func (h Handles) Merge(o Handles) Handles {
	if len(o.Types) > 0 {
		h.Types = o.Types
	}

	if len(o.Retain) > 0 {
		h.Retain = o.Retain
	}

	if len(o.Release) > 0 {
		h.Release = o.Release
	}

	if len(o.Mutate) > 0 {
		h.Mutate = o.Mutate
	}

	if len(o.Access) > 0 {
		h.Access = o.Access
	}

	if len(o.Load) > 0 {
		h.Load = o.Load
	}

	h.NoDetect = h.NoDetect || o.NoDetect

	return h
}

// LoadHandles reads a YAML handle configuration file.
func LoadHandles(path string) (Handles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Handles{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return ParseHandles(data)
}

// ParseHandles decodes a YAML handle configuration.
func ParseHandles(data []byte) (Handles, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var h Handles
	if err := dec.Decode(&h); err != nil && !errors.Is(err, io.EOF) {
		return Handles{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for _, name := range h.Types {
		if _, _, ok := SplitQualified(name); !ok {
			return Handles{}, fmt.Errorf("%w: handle type %q is not qualified", ErrInvalidConfig, name)
		}
	}

	return h, nil
}

// SplitQualified splits a qualified type name "path/to/pkg.Name" into package path and name.
func SplitQualified(qualified string) (path, name string, ok bool) {
	i := strings.LastIndexByte(qualified, '.')
	if i <= 0 || i == len(qualified)-1 || strings.LastIndexByte(qualified, '/') > i {
		return "", "", false
	}

	return qualified[:i], qualified[i+1:], true
}
