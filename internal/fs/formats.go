package fs

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"
)

// ReadJSON reads and parses a JSON file. Binary files and malformed
// documents fail with IO_ERROR.
func (s *Service) ReadJSON(path string) (interface{}, error) {
	content, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if content.IsBinary {
		return nil, ioError("file is not text: %s", path)
	}
	var v interface{}
	if err := sonic.UnmarshalString(content.Content, &v); err != nil {
		return nil, ioError("parse json: %v", err)
	}
	return v, nil
}

// WriteJSON serializes data as JSON and writes it to path under the
// usual write rules. With pretty set the output is indented.
func (s *Service) WriteJSON(path string, data interface{}, pretty bool) (*OperationResult, error) {
	var (
		out string
		err error
	)
	if pretty {
		var b []byte
		b, err = sonic.ConfigDefault.MarshalIndent(data, "", "  ")
		out = string(b)
	} else {
		out, err = sonic.MarshalString(data)
	}
	if err != nil {
		return nil, ioError("encode json: %v", err)
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return s.WriteFile(path, out)
}

// ReadYAML reads and parses a YAML file.
func (s *Service) ReadYAML(path string) (interface{}, error) {
	content, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if content.IsBinary {
		return nil, ioError("file is not text: %s", path)
	}
	var v interface{}
	if err := yaml.Unmarshal([]byte(content.Content), &v); err != nil {
		return nil, ioError("parse yaml: %v", err)
	}
	return v, nil
}

// WriteYAML serializes data as YAML and writes it to path.
func (s *Service) WriteYAML(path string, data interface{}) (*OperationResult, error) {
	b, err := yaml.Marshal(data)
	if err != nil {
		return nil, ioError("encode yaml: %v", err)
	}
	return s.WriteFile(path, string(b))
}

// ReadTOML reads and parses a TOML file.
func (s *Service) ReadTOML(path string) (interface{}, error) {
	content, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if content.IsBinary {
		return nil, ioError("file is not text: %s", path)
	}
	var v interface{}
	if err := toml.Unmarshal([]byte(content.Content), &v); err != nil {
		return nil, ioError("parse toml: %v", err)
	}
	return v, nil
}

// WriteTOML serializes data as TOML and writes it to path. Only
// map-rooted documents are valid TOML.
func (s *Service) WriteTOML(path string, data interface{}) (*OperationResult, error) {
	b, err := toml.Marshal(data)
	if err != nil {
		return nil, ioError("encode toml: %v", err)
	}
	return s.WriteFile(path, string(b))
}
