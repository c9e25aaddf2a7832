// Package idsampler draws reproducible random samples of unique numeric
// identifiers from a master pool, with exclusion, retention and range control.
//
// 🚀 What is idsampler?
//
//	A small, deterministic sampling engine for workflows where a researcher
//	keeps a master list of record IDs, has already selected some of them,
//	wants others excluded, and needs a fresh random draw from what remains:
//	  • Validation: duplicate rows, selected∩excluded conflicts, unknown IDs
//	  • Filtering: eligible = pool − selections − excluded, optional ranges
//	  • Sampling: uniform, without replacement, seed ⇒ bit-for-bit replayable
//	  • Reporting: counts, findings, and a merged Current/New final dataset
//
// ✨ Why choose idsampler?
//
//   - Reproducible – the seed is an explicit parameter, never ambient state
//   - Honest about shortfall – a too-small pool is reported, not raised
//   - Pure pipeline – Validate → Filter → Sample → Report, no hidden I/O
//   - Collaborator-friendly – CSV/XLSX loading and export live at the edges
//
// Everything is organized under a handful of packages:
//
//	idset/     — ID and Set primitives, numeric-token parsing
//	sampling/  — validator, filter engine, sampler, report builder, pipeline
//	tabular/   — first-column ID loading and row-oriented export (CSV/XLSX)
//	cmd/       — the idsampler command-line front end
//
// Quick example:
//
//	in := sampling.Inputs{FullPool: pool, CurrentSelections: cur, Excluded: exc}
//	opts := sampling.DefaultOptions()
//	opts.SampleSize = 25
//	opts.Seed = 42
//	res, err := sampling.Run(in, opts)
//
// Dive into README.md and the package docs for full examples.
//
//	go get github.com/katalvlaran/idsampler
package idsampler
