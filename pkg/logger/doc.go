/*
Package logger provides a structured logging facade for dirguard.
It wraps uber-go/zap behind a small interface with verbosity levels and
field-based context.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0,  // Default level (INFO)
	})

	log.Info("Reconciliation started")
	log.Debug("Entry matched suffix") // Only shown with verbosity >= 1
	log.Trace("Comparing names")      // Only shown with verbosity >= 2

Verbosity Levels:

	0: Info, Warn, Error (default)
	1: Debug + Level 0
	2: Trace + Level 1

Structured Logging:

	log.WithFields(logger.Fields{
	    "dir":      "/src/generated",
	    "expected": "/src/required-files.txt",
	}).Info("Listing matches expected list")

Output Example (JSON):

	{
	    "level": "info",
	    "ts": "2024-01-20T15:04:05.000Z",
	    "message": "Listing matches expected list",
	    "dir": "/src/generated",
	    "expected": "/src/required-files.txt"
	}

Setting Encoding to EncodingConsole switches to zap's console encoder,
which reads better in build logs.
*/
package logger
