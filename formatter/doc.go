// Package formatter turns core entries into render events.
//
// A Formatter decides what the message segments of a log line are and how
// the level label and source location are presented; the render package
// then decides where they go. TextFormatter, the built-in implementation,
// produces one segment holding the message followed by its fields as
// key=value pairs, and a second segment with the traceback of the entry's
// error when there is one.
//
// Errors created with github.com/pkg/errors carry a stack; the traceback
// segment prints it below the error message.
package formatter
