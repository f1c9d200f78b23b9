// Package inspect builds bounded display trees from arbitrary runtime values.
//
// # Purpose
//
//   - Convert any in-process value (scalar, composite, sequence, or error)
//     into an immutable Node tree that a UI can render without knowing the
//     value's shape in advance.
//   - Enforce hard caps on depth, text length, and element count so that
//     pathological or enormous inputs can never cause unbounded work or
//     unbounded output.
//   - Express every recoverable failure (a member getter that throws, an
//     iteration that fails partway) as data inside the tree instead of
//     propagating it.
//
// # Scope
//
// Package inspect does not execute user code, does not manage evaluation
// sessions, and does not paint trees. Transport encoding lives in
// internal/inspect/wire; interactive browsing lives in internal/ui.
//
// # Capabilities
//
// Values participate in formatting through three optional capabilities:
//
//   - MemberProvider (or a RegisterMembers entry, or the built-in
//     map[string]any adapter): named, fallibly readable members.
//   - Sequence / Grouping (or the built-in slice adapter): element-by-element
//     iteration with failure isolation.
//   - StackProvider: a captured call stack with the script boundary marked,
//     used by CreateError.
//
// Values with none of these render as leaves.
package inspect
