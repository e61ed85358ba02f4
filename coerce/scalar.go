package coerce

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	textCodec = codec[string]{
		parse:  func(s string) (string, error) { return s, nil },
		format: func(s string) string { return s },
	}

	uuidCodec = codec[uuid.UUID]{
		parse:  uuid.Parse,
		format: uuid.UUID.String,
	}

	boolCodec = codec[bool]{
		parse:  parseBool,
		format: func(v bool) string {
			if v {
				return "true"
			}

			return "false"
		},
	}
)

// parseBool accepts the textual forms true/false, yes/no, on/off and 1/0.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	default:
		return false, fmt.Errorf("only true/false, yes/no, on/off, 1/0 are allowed for bool")
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
}
