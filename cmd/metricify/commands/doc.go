// Package commands defines the metricify CLI.
//
// Commands
//
//   - convert   Convert inch dimensions in a text, HTML or Markdown document
//   - parse     Show how single dimension components are read
//   - preview   Draw a converted dimension group as a PNG wireframe
//
// Documents are read from a file argument or stdin and written to stdout
// unless --out is given. Diagnostics go to stderr and can be silenced
// with --quiet.
package commands
