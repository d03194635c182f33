// Copyright 2026 The ReflexJS Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads a project's reflex.toml: the validator's source
// globs, the WAT template entry points, and shared expansion variables.
package config

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

const FileName = "reflex.toml"

var ErrConfigNotFound = errors.New("reflex.toml not found")

// File is the project config's on-disk shape.
type File struct {
	Location string `toml:"-"`

	Lint struct {
		Include []string `toml:"include"`
		Exclude []string `toml:"exclude"`
	} `toml:"lint"`

	Templates struct {
		Entry []string       `toml:"entry"`
		Vars  map[string]any `toml:"vars"`
	} `toml:"templates"`
}

// Load walks upward from root looking for reflex.toml, the same
// upward-search convention a project's pack file uses.
func Load(ctx context.Context, root string) (*File, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	path, err := locate(ctx, root)
	if err != nil {
		return nil, errors.Wrap(err, "locate reflex.toml")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read reflex.toml")
	}

	var f File
	if err := toml.Unmarshal(b, &f); err != nil {
		return nil, errors.Wrap(err, "parse reflex.toml")
	}
	f.Location = filepath.Dir(path)
	return &f, nil
}

func locate(ctx context.Context, root string) (string, error) {
	if len(strings.TrimSpace(root)) == 0 {
		return "", errors.New("root is empty")
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrap(err, "resolve absolute path")
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", errors.Wrap(err, "stat root")
	}
	if !info.IsDir() {
		root = filepath.Dir(root)
	}

	for {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		candidate := filepath.Join(root, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(root)
		if parent == root || (runtime.GOOS == "windows" && strings.HasSuffix(root, `:\`)) {
			break
		}
		root = parent
	}

	return "", ErrConfigNotFound
}
