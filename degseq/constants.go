// SPDX-License-Identifier: MIT

package degseq

// DefaultDenseThreshold is the largest vertex count for which the
// undirected rejection sampler keeps a bitset per vertex. Above it each
// vertex gets a hash set sized by its degree.
const DefaultDenseThreshold = 1024

// DefaultRewireFactor is the number of switch attempts per edge for
// EdgeSwitchingSimple and VL.
const DefaultRewireFactor = 10
