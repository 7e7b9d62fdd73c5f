// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package blend

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// Hash computes an FNV-1a hash over every field of d.
//
// Only canonical descriptors hash consistently with their behavior: callers
// hash the output of Normalize, never a raw draft.
func Hash(d Desc1) uint64 {
	h := fnv.New64a()

	hashWriteUint32(h, uint32(d.AlphaToCoverageEnable))
	hashWriteUint32(h, uint32(d.IndependentBlendEnable))

	for i := range d.RenderTarget {
		rt := &d.RenderTarget[i]
		hashWriteUint32(h, uint32(rt.BlendEnable))
		hashWriteUint32(h, uint32(rt.LogicOpEnable))
		hashWriteUint32(h, uint32(rt.SrcBlend))
		hashWriteUint32(h, uint32(rt.DestBlend))
		hashWriteUint32(h, uint32(rt.BlendOp))
		hashWriteUint32(h, uint32(rt.SrcBlendAlpha))
		hashWriteUint32(h, uint32(rt.DestBlendAlpha))
		hashWriteUint32(h, uint32(rt.BlendOpAlpha))
		hashWriteUint32(h, uint32(rt.LogicOp))
		_, _ = h.Write([]byte{byte(rt.RenderTargetWriteMask)})
	}

	return h.Sum64()
}

// hashWriteUint32 writes a uint32 to the hash.
func hashWriteUint32(h hash.Hash64, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, _ = h.Write(buf[:])
}
