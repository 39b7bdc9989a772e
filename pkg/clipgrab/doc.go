// Package clipgrab implements the file selection and aggregation pipeline:
// glob expansion, tag scanning, ignore-rule application, inclusion/exclusion
// set algebra, and aggregation of the surviving files into a clipboard
// payload.
//
// The pipeline is sequential and single-pass. Each stage produces an
// immutable result consumed by the next:
//
//	patterns := ParsePatterns(includes, excludes)
//	rules, _ := ignore.Load(".", true, logger)
//	universe, _ := CollectUniverse(".", rules, logger)
//	engine := NewEngine(NewResolver(".", logger), NewScanner(".", logger), logger)
//	selection, _ := engine.Select(patterns, universe)
//	report, _ := NewAggregator(".", logger).Aggregate(selection.Files)
//	_ = WriteClipboard(report.Payload)
//
// Note the deliberate asymmetry: the ignore rules filter only the universe
// the tag scanner walks. Glob resolution searches the full tree, so a glob
// can reach files the ignore rules would hide from tag scanning.
package clipgrab
