// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package parser bridges PostgreSQL's own SQL parser into Go.
//
// It links libpg_query's raw interface and reads the parser's in-memory
// node structures directly into the owned tree types of pkg/ast,
// skipping any serialization step. The package exposes five operations:
//
//   - Parse: SQL text to an owned parse tree (iterative reader).
//   - ParseRecursive: same contract, recursive reader. Kept as the
//     correctness reference for differential tests.
//   - Deparse: an owned parse tree back to canonical SQL text.
//   - Scan: SQL text to lexer tokens.
//   - Fingerprint: SQL text to the libpg_query statement fingerprint.
//
// Only the Parse reader is stackless. Deparse walks the tree with
// ordinary Go recursion, as do the pkg/ast traversal helpers, so a
// tree deep enough to need the iterative reader still grows the
// goroutine stack in proportion to its depth on the way back out.
//
// All C memory is scoped to the call that allocated it. Parse, Scan,
// and Fingerprint free their C results before returning; Deparse
// builds its node tree inside a scoped arena context that is released
// on every exit path.
//
// Building this package requires the vendored libpg_query checkout at
// the repository root. Run scripts/build_libpg_query.sh once before
// the first build.
package parser
