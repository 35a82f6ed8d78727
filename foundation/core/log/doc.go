// Package log provides leveled, structured logging for pier.
//
// Package: log
// Title: pier Structured Logging
// Description: A small structured logger with text and JSON output. Entries
//              carry key/value Fields; errors from the error package are logged
//              with their code and operation attached.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: os.Stderr,
//		Name:   "pier",
//	})
//	logger.Debug("config loaded", log.Fields{"path": path, "scripts": 3})
package log
