// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

package square

// Diagonal identifies one of the 15 a1-h8-direction diagonals a square can
// sit on. DiagonalN is the count of distinct diagonals.
type Diagonal int8

const DiagonalN = 15

// AntiDiagonal identifies one of the 15 a8-h1-direction diagonals a square
// can sit on. AntiDiagonalN is the count of distinct anti-diagonals.
type AntiDiagonal int8

const AntiDiagonalN = 15
