// Package config loads the field definitions for the inline edit demo.
//
// The demo page is a list of fields, each shown as an inline-editable element.
// Fields come from a YAML file; when none exists at the default location the
// built-in page is used.
//
// # File Location
//
//   - Linux: $XDG_CONFIG_HOME/inlineedit/fields.yaml (or ~/.config/inlineedit/fields.yaml)
//   - macOS: ~/.config/inlineedit/fields.yaml
//   - Windows: %LOCALAPPDATA%\inlineedit\fields.yaml
//
// # File Format
//
//	version: 1
//	fields:
//	  - name: title
//	    element: h1
//	    text: "Release notes"
//	  - name: body
//	    element: p
//	    text: "Write something..."
//	    editor: textarea
//	    rows: 4
//	    cols: 50
//
// Edited values are never written back.
package config
