// Package logging builds log/slog loggers from configuration.
//
// Three formats are supported: json, text and console (text without
// timestamps). Records logged with a context pick up the unit id, contract
// name and pass stored in it:
//
//	logger, err := logging.New(logging.Config{Level: "debug", Format: "json"})
//	ctx := logging.WithUnitID(ctx, unit.ID)
//	logger.InfoContext(ctx, "annotated", "nodes", n) // includes unit_id
package logging
