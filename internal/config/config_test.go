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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWalksUpToFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	contents := "[templates]\nentry = [\"app.wat\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(contents), 0o644))

	f, err := Load(context.Background(), nested)
	require.NoError(t, err)
	require.Equal(t, []string{"app.wat"}, f.Templates.Entry)
	require.Equal(t, root, f.Location)
}

func TestLoadMissingConfig(t *testing.T) {
	root := t.TempDir()
	_, err := Load(context.Background(), root)
	require.ErrorIs(t, err, ErrConfigNotFound)
}
