// SPDX-License-Identifier: MIT

// Package strel computes structuring-element geometry: the center of an
// element and the offsets of its active cells relative to that center.
//
// What:
//
//   - Center(bc): for every dimension, extent/2 (integer division). For even
//     extents this is the upper of the two middle cells, not the geometric
//     middle.
//   - Offsets(bc): every nonzero cell, in row-major order, reduced to
//     cell-center with its value kept as a weight.
//   - Cross / Box / FromConnectivity: ready-made 3^n elements for face
//     (Conn4-like) and full (Conn8-like) connectivity in any dimension.
//
// Erosion, dilation, watershed and labelling all discover neighbours
// through Offsets; they differ only in what they do with each offset.
package strel
