// Package ingest reads measurement files and experiment metadata and hands
// them to the profile engines.
//
// Measurement files are whitespace-delimited text with three float64 columns
// (condition value — irradiation offset or cycle count —, intensity,
// intensity uncertainty); '#' starts a comment and a leading non-numeric
// line is treated as the column header. Experiment metadata is YAML; the
// model string ("2st"/"3st"/"4st") is mapped to a liouville.Topology exactly
// once here, so no string inspection reaches the simulation engines.
//
// All ingestion failures are data or configuration errors: they are fatal
// before any simulation starts and never surface mid-fit.
package ingest
