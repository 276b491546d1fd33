// SPDX-License-Identifier: MIT

// Package label finds connected components ("regions") of nonzero cells in
// an n-dimensional array, where connectivity is given by a structuring
// element.
//
// What:
//
//   - Label assigns 1, 2, ... to components in row-major order of each
//     component's first cell; background stays 0.
//   - Sizes counts the cells of each label.
//
// Why:
//
//   - Turning a binary seed image into a watershed marker image, one label
//     per seed blob.
//   - Counting objects after erosion.
//
// Connectivity follows the element's active offsets exactly. An element
// that is not symmetric about its center yields directed reachability
// from each component's first cell.
//
// Errors:
//
//   - ErrTooManyLabels: more components than the element type can number.
//
// Complexity: O(N·K·d) time, O(N) memory for the queue and output.
package label
