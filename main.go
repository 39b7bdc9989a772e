package main

import (
	"log"
	"os"
	"strings"

	"clipgrab/cmd"
	"clipgrab/pkg/ui"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		ui.PrintError("Error: " + err.Error())
		if cmd.Verbose() {
			zap.L().Error("clipgrab execution failed", zap.Error(err))
		}
		syncLogger(zap.L())
		os.Exit(1)
	}
	syncLogger(zap.L())
}

// syncLogger flushes the logger, but only when stderr can actually accept a
// sync. Syncing against a closed pipe reports "invalid argument" on some
// platforms, which is noise rather than a real failure.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
