// Package render lays out a single log event for the terminal.
//
// Two layouts are provided, both implementing Renderer:
//
//   - Tabular builds a one-row console.Grid with the columns
//     time | level | message | path. The grid owns padding and folds long
//     messages inside the message column.
//   - Fluid builds one flowing line: the time and level are prefixed to the
//     first message segment and the path is appended to the last one, so a
//     soft-wrapping console wraps the whole line as prose.
//
// Both layouts remember the last timestamp they printed. When the next
// event formats to the same string, the time is replaced by blanks of the
// same width so columns stay aligned while repeats stay quiet.
//
// A renderer owns that memory and is not safe for concurrent use; callers
// that log from several goroutines must serialize calls, as
// handler.ConsoleHandler does.
package render
