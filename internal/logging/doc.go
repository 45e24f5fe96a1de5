// Package logging provides structured logging for the pipex CLI using slog.
//
// Text output goes through [Handler], which colors levels on a terminal and
// masks values whose keys look like secrets. Pipeline parameters are logged
// as individual attributes at [LevelTrace], so a parameter such as
// db_password=... never reaches a log file in clear text. JSON output applies
// the same masking through [RedactAttr].
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//		File:   logFile, // optional JSON copy of every record
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	logger := logging.ForTest(t)
package logging
