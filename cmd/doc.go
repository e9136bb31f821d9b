// # Command Line
//
// The root command treats its first argument as a text command name and the
// rest as the text, joined with single spaces:
//
//	textutils reverse hello world     // dlrow olleh
//	textutils count "a b c"           // characters: 5 ...
//	cat notes.txt | textutils compact -
//	textutils --file page.html untag
//
// Subcommands:
//
//   - list: print the command catalogue (table, json or yaml)
//   - version: print build information
//   - help: cobra help followed by the command catalogue
//
// # Exit Codes
//
//   - 0: success
//   - 1: unknown command or a failing command
//   - 2: configuration, input or usage errors
//
// Errors are returned from Execute and printed once by main with any
// suggestions the error carries.
package cmd
