/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bitio

// maskLow64 returns a mask with the low n bits set (n in [0..64]).
func maskLow64(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	if n == 0 {
		return 0
	}

	return (uint64(1) << n) - 1
}
