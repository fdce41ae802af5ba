// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package ast defines the owned, in-memory representation of PostgreSQL
// parse trees.
//
// The model mirrors PostgreSQL's tagged-node structure but uses idiomatic
// Go patterns: a Node interface with one pointer-to-struct implementation
// per node kind, plain slices for multi-child fields, and nil for absent
// children. Ownership is a strict tree: every Node has exactly one parent
// and there are no back references, so values can be copied, stored, or
// sent across goroutines under the caller's own discipline.
//
// # Conventions
//
// Three boundary conventions apply uniformly, matching the wire encoding
// used by the pgbridge parser package:
//
//   - Enumerated attributes reserve 0 as an "undefined" sentinel. Defined
//     values are the underlying C enum values shifted by +1.
//   - String fields that are absent on the C side (null pointer) surface
//     as the empty string, never as a pointer. Callers that must tell the
//     two apart need to consult the node kind.
//   - Location fields are byte offsets into the original SQL text. They
//     are preserved but never interpreted.
//
// Node kinds the bridge does not decode are represented by Other, which
// retains the C library's serialized form of the subtree.
//
// Walk and the other traversal helpers recurse, so their stack use
// grows with tree depth even when the tree was built by a stackless
// reader.
package ast
