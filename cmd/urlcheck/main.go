// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command urlcheck reports uses of raw URL-parsing APIs such as
// net/url.Parse, so that URLs are parsed through the validating
// safeurl package instead. The default bans can be replaced with JSON
// config files passed via -configs.
package main

import (
	"github.com/FabulaAI/httpx/cmd/urlcheck/bannedurl"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(bannedurl.NewAnalyzer())
}
