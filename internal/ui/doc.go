// Package ui provides semantic text formatting for CLI output.
//
// Formatters render with colour when the terminal supports it. When NO_COLOR
// is set or colour is unavailable, text decorations are used instead:
//
//	ui.Code.Sprint("jpas save out.json")   // `jpas save out.json`
//	ui.Path.Sprint("Example.ssh.json")     // Example.ssh.json
//	ui.Success.Sprint("✓")
//	ui.Error.Sprint("✗")
//	ui.Info.Sprint("→")
package ui
