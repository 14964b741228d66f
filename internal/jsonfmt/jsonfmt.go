// Package jsonfmt pretty-prints project configuration JSON (such as composer.json) in a
// compact, diff-friendly layout.
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

const indent = "    "

// singleItemArray matches a string array holding exactly one element spread across lines.
var singleItemArray = regexp.MustCompile(`": \[\s*("[^"]*")\s*\]`)

// EncodePretty returns data as indented JSON without HTML escaping, with single-element
// string arrays collapsed onto one line. Object keys are emitted in sorted order; use
// EncodePrettyObject to keep the original order.
func EncodePretty(data map[string]any) (string, error) {
	return encodePretty(data)
}

// EncodePrettyObject formats obj like EncodePretty, keeping key order and number text.
func EncodePrettyObject(obj *Object) (string, error) {
	return encodePretty(obj)
}

// Format decodes a JSON object from data and re-encodes it with EncodePrettyObject.
func Format(data []byte) (string, error) {
	obj, err := Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return EncodePrettyObject(obj)
}

func encodePretty(value any) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(value); err != nil {
		return "", fmt.Errorf(messages.JSONFmtMarshalFmt, err)
	}
	pretty := strings.TrimSuffix(buf.String(), "\n")
	return singleItemArray.ReplaceAllString(pretty, `": [$1]`), nil
}
