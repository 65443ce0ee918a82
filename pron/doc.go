// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pron implements reading packed pronunciation tables.
//
// A packed pronunciation table maps short alphabetic codes to pronunciation
// strings. It is a comma separated list of pairs, each pair being a code and
// a pronunciation separated by a colon:
//
//	Jn:oi3,gf:ngoi3
//
// There is no escaping mechanism, so neither codes nor pronunciations may
// contain ',' or ':'. When a code appears more than once the last pair wins.
package pron
