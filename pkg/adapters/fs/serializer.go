package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// header is the trigger frontmatter of a steering file. Everything below the
// frontmatter is opaque payload.
type header struct {
	ID       string   `yaml:"id"`
	Keywords []string `yaml:"keywords"`
	Patterns []string `yaml:"patterns"`
}

// parseSteeringFile splits a steering file into its trigger header and
// payload body. Files without frontmatter yield an empty header and the full
// content as body.
func parseSteeringFile(r io.Reader) (header, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return header{}, "", err
	}

	var h header

	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return h, string(data), nil
	}

	rest := data[3:]
	parts := bytes.SplitN(rest, []byte("---"), 2)
	if len(parts) == 1 {
		return h, "", errors.New("frontmatter started but no closing delimiter found")
	}

	yamlData := parts[0]
	contentData := parts[1]

	if err := yaml.Unmarshal(yamlData, &h); err != nil {
		return h, "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	body := strings.TrimPrefix(string(contentData), "\n")
	body = strings.TrimPrefix(body, "\r\n")

	return h, body, nil
}
