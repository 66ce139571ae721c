package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "inlineedit"
	configFile = "fields.yaml"
)

var (
	ErrNoFields        = errors.New("no fields defined")
	ErrMissingName     = errors.New("name is required")
	ErrDuplicateName   = errors.New("duplicate name")
	ErrUnknownElement  = errors.New("unknown element")
	ErrUnknownEditor   = errors.New("unknown editor")
	ErrInvalidTextArea = errors.New("rows and cols must not be negative")
)

// GetConfigDir returns the OS-appropriate configuration directory for the application.
//   - Linux: $XDG_CONFIG_HOME/inlineedit or $HOME/.config/inlineedit
//   - macOS: $HOME/.config/inlineedit
//   - Windows: %LOCALAPPDATA%\inlineedit
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the default path of the field file.
func GetConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// LoadFields reads the field file at path. An empty path means the default
// location. A missing file at the default location yields DefaultFields; a
// missing file that was asked for explicitly is an error.
func LoadFields(path string) (*FieldFile, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultFields(), nil
		}
		return nil, fmt.Errorf("failed to read field file: %w", err)
	}

	return ParseFields(data)
}

// ParseFields decodes and validates a YAML field file.
func ParseFields(data []byte) (*FieldFile, error) {
	var file FieldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse field file: %w", err)
	}
	if file.Version == 0 {
		file.Version = 1
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks every field and fills in defaults.
func (f *FieldFile) Validate() error {
	if len(f.Fields) == 0 {
		return ErrNoFields
	}

	seen := make(map[string]bool, len(f.Fields))
	for i, field := range f.Fields {
		if field == nil || field.Name == "" {
			return &FieldError{Index: i, Err: ErrMissingName}
		}
		if seen[field.Name] {
			return &FieldError{Index: i, Name: field.Name, Err: ErrDuplicateName}
		}
		seen[field.Name] = true

		if field.Element == "" {
			field.Element = "span"
		}
		if !validElements[field.Element] {
			return &FieldError{Index: i, Name: field.Name, Err: fmt.Errorf("%w: %q", ErrUnknownElement, field.Element)}
		}

		switch field.Editor {
		case "":
			field.Editor = EditorInput
		case EditorInput, EditorTextArea:
		default:
			return &FieldError{Index: i, Name: field.Name, Err: fmt.Errorf("%w: %q", ErrUnknownEditor, field.Editor)}
		}

		if field.Rows < 0 || field.Cols < 0 {
			return &FieldError{Index: i, Name: field.Name, Err: ErrInvalidTextArea}
		}
		if field.IsTextArea() && field.Rows == 0 {
			field.Rows = 4
		}
	}
	return nil
}

// Marshal encodes the field file as YAML.
func (f *FieldFile) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal field file: %w", err)
	}
	return data, nil
}
