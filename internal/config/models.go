package config

import "fmt"

// Editor kinds accepted in the field file
const (
	EditorInput    = "input"
	EditorTextArea = "textarea"
)

// Element styles accepted in the field file
var validElements = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "span": true,
}

// FieldFile is the demo's field configuration file.
type FieldFile struct {
	Version int      `yaml:"version"`
	Fields  []*Field `yaml:"fields"`
}

// Field describes one inline-editable value on the demo page.
type Field struct {
	Name    string `yaml:"name"`              // State key, unique within the file
	Element string `yaml:"element"`           // h1-h6, p or span
	Text    string `yaml:"text"`              // Initial text
	Editor  string `yaml:"editor,omitempty"`  // input (default) or textarea
	Rows    int    `yaml:"rows,omitempty"`    // Text area rows
	Cols    int    `yaml:"cols,omitempty"`    // Text area columns
	Section int    `yaml:"section,omitempty"` // Extra blank lines before the field
}

// FieldError reports an invalid entry in the field file.
type FieldError struct {
	// Index is the position of the field in the file
	Index int
	// Name is the field name, if it had one
	Name string
	// Err is the underlying problem
	Err error
}

func (e *FieldError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("field %d (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("field %d: %v", e.Index, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// IsTextArea reports whether the field uses a multi-line editor
func (f *Field) IsTextArea() bool {
	return f.Editor == EditorTextArea
}

// DefaultFields returns the built-in demo page: six headings, a paragraph, a
// span and two multi-line fields.
func DefaultFields() *FieldFile {
	return &FieldFile{
		Version: 1,
		Fields: []*Field{
			{Name: "heading1", Element: "h1", Text: "This is a Heading 1 element"},
			{Name: "heading2", Element: "h2", Text: "This is a Heading 2 element"},
			{Name: "heading3", Element: "h3", Text: "This is a Heading 3 element"},
			{Name: "heading4", Element: "h4", Text: "This is a Heading 4 element"},
			{Name: "heading5", Element: "h5", Text: "This is a Heading 5 element"},
			{Name: "heading6", Element: "h6", Text: "This is a Heading 6 element"},
			{Name: "paraValue", Element: "p", Text: "This is an inline paragraph element"},
			{Name: "spanValue", Element: "span", Text: "This is an inline span element"},
			{
				Name:    "paraWrapper",
				Element: "p",
				Text:    "Inline Edit component inside a paragraph element that will convert to textarea upon edit...",
				Editor:  EditorTextArea,
				Rows:    4,
				Cols:    50,
				Section: 1,
			},
			{
				Name:    "spanWrapper",
				Element: "span",
				Text:    "Inline Edit component inside a span element that will convert to textarea upon edit...",
				Editor:  EditorTextArea,
				Rows:    4,
				Cols:    50,
				Section: 1,
			},
		},
	}
}
