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

// Package build exposes the release information of the bintree binary.
package build

import (
	"fmt"
	"runtime"
	"time"
)

// TimeFormat is the reference format for Info.Time. Make sure it stays
// in sync with the date passed to the linker by the release scripts.
const TimeFormat = "2006-01-02T15:04:05Z"

var (
	// These variables are initialized via the linker -X flag on
	// release binaries, or through SetReleaseInfo.
	tag      = "dev"  // Tag of this build (git describe --tags)
	utcTime  = ""     // Build time in UTC
	rev      = "none" // SHA-1 of this build (git rev-parse)
	platform = fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
)

// Info stores the build information
type Info struct {
	GoVersion string
	Tag       string
	Time      string
	Revision  string
	Platform  string
}

// Short returns a pretty printed build and version summary.
func (i Info) Short() string {
	built := i.Time
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("bintree %s (%s, rev %s, built %s, %s)",
		i.Tag, i.Platform, i.Revision, built, i.GoVersion)
}

// GoTime parses the build time and returns a time.Time. It returns the
// zero time when the build time is unknown.
func (i Info) GoTime() time.Time {
	val, err := time.Parse(TimeFormat, i.Time)
	if err != nil {
		return time.Time{}
	}
	return val
}

// SetReleaseInfo overrides the values injected by the linker. Empty
// arguments keep the current value.
func SetReleaseInfo(version, commit, date string) {
	if version != "" {
		tag = version
	}
	if commit != "" {
		rev = commit
	}
	if date != "" {
		utcTime = date
	}
}

// GetInfo returns an Info struct populated with the build information.
func GetInfo() Info {
	return Info{
		GoVersion: runtime.Version(),
		Tag:       tag,
		Time:      utcTime,
		Revision:  rev,
		Platform:  platform,
	}
}
