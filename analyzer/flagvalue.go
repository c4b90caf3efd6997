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

package analyzer

import (
	"strconv"
	"strings"

	"fillmore-labs.com/sharedparam/internal/config"
)

// behaviorValue is a boolean [flag.Value] switching a single option of a [config.Behavior].
type behaviorValue struct {
	behavior *config.Behavior
	option   config.Config
}

func newBehaviorValue(behavior *config.Behavior, option config.Config) behaviorValue {
	return behaviorValue{behavior: behavior, option: option}
}

// Set implements [flag.Value].
func (v behaviorValue) Set(s string) error {
	enabled, err := parseBool(s)
	if err != nil {
		return err
	}

	v.behavior.Set(v.option, enabled)

	return nil
}

// String implements [flag.Value]. The flag package calls it on a zero value to detect defaults.
func (v behaviorValue) String() string {
	return strconv.FormatBool(v.enabled())
}

// Get implements [flag.Getter].
func (v behaviorValue) Get() any {
	return v.enabled()
}

// IsBoolFlag marks the value as a boolean flag, so "-explain" means "-explain=true".
func (behaviorValue) IsBoolFlag() bool { return true }

func (v behaviorValue) enabled() bool {
	return v.behavior != nil && v.behavior.Enabled(v.option)
}

// parseBool returns the boolean value represented by the string.
func parseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "on", "On":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "off", "Off":
		return false, nil
	}

	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

// listValue is a comma-separated list of names. Setting it replaces the current list.
type listValue []string

// Set implements [flag.Value].
func (l *listValue) Set(s string) error {
	var names []string

	for name := range strings.SplitSeq(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	*l = names

	return nil
}

// String implements [flag.Value].
func (l *listValue) String() string {
	if l == nil {
		return ""
	}

	return strings.Join(*l, ",")
}

// Get implements [flag.Getter].
func (l *listValue) Get() any {
	if l == nil {
		return []string(nil)
	}

	return []string(*l)
}

// configValue merges a YAML handle configuration file into the current configuration.
type configValue config.Handles

// Set implements [flag.Value].
func (c *configValue) Set(path string) error {
	h, err := config.LoadHandles(path)
	if err != nil {
		return err
	}

	*c = configValue(config.Handles(*c).Merge(h))

	return nil
}

// String implements [flag.Value].
func (c *configValue) String() string { return "" }
