// Package harness provides conformance testing for the ordering engine.
//
// The harness loads edit scenarios from YAML, executes them against a
// deterministically normalized recipe, and validates assertions about the
// resulting section/item order - optionally comparing a snapshot of the
// final state against a golden file.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	recipe:
//	  ingredient_sections:
//	    - id: s1
//	      name: Dough
//	      items:
//	        - { id: a, name: Flour }
//	        - { id: b, name: Water }
//	steps:
//	  - op: reorder
//	    section: s1
//	    from: 0
//	    to: 1
//	  - op: move
//	    from_section: s1
//	    to_section: s2
//	    from: 0
//	    to: 0
//	assertions:
//	  - type: item_order
//	    section: s1
//	    ids: [b, a]
//	  - type: contiguous
//
// # Step Operations
//
// reorder, move, add_section, rename_section, delete_section, add_item,
// merge. All steps target one list kind ("list: ingredients|instructions",
// default ingredients).
//
// # Assertion Types
//
//   - section_order: section ids appear in exactly this order
//   - item_order: one section's item ids appear in exactly this order
//   - contiguous: every list's positions are exactly 0..n-1
//   - section_count / item_count: cardinality checks
//   - counts: normalization fix counts match
//
// # Deterministic Execution
//
// Scenarios run with a deterministic sequential ID generator, so any ids
// the normalizer fills in are stable across runs and golden snapshots
// compare byte-for-byte.
package harness
