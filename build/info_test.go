/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

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

package build

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReleaseInfo(t *testing.T) {
	defer func(t0, u0, r0 string) { tag, utcTime, rev = t0, u0, r0 }(tag, utcTime, rev)

	SetReleaseInfo("v1.2.0", "abc123", "2019-03-01T10:00:00Z")
	info := GetInfo()

	require.Equal(t, "v1.2.0", info.Tag)
	require.Equal(t, "abc123", info.Revision)
	require.Equal(t, time.Date(2019, 3, 1, 10, 0, 0, 0, time.UTC), info.GoTime())
	require.True(t, strings.HasPrefix(info.Short(), "bintree v1.2.0 ("))

	SetReleaseInfo("", "", "")
	require.Equal(t, "v1.2.0", GetInfo().Tag, "empty values keep the previous ones")
}

func TestUnknownBuildTime(t *testing.T) {
	info := Info{Tag: "dev", Time: ""}

	require.True(t, info.GoTime().IsZero())
	require.Contains(t, info.Short(), "built unknown")
}
