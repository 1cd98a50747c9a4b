package notify

import (
	"log/slog"
	"os"
)

// notifyLogLevel controls the log level for toast debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var notifyLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the toast overlay.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		notifyLogLevel.Set(slog.LevelDebug)
	} else {
		notifyLogLevel.Set(slog.LevelInfo)
	}
}

var notifyLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: notifyLogLevel}))
