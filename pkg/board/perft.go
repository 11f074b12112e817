// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package board

// Perft counts the leaf nodes of the legal move tree rooted at the
// current position to the given depth. With debug set, it asserts that
// the Zobrist hash is restored exactly after every Make/Unmake pair,
// panicking on mismatch.
func (p *Position) Perft(depth int, debug bool) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, m := range p.LegalMoves() {
		hashBefore := p.Hash

		t := p.Make(m)
		nodes += p.Perft(depth-1, debug)
		p.Unmake(t)

		if debug && p.Hash != hashBefore {
			panic("board: hash mismatch after unmake")
		}
	}
	return nodes
}
