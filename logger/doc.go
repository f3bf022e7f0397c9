// Package logger provides zerolog-based structured logging for the
// chat client. It supports console and JSON output and component-tagged
// child loggers.
package logger
