package booking

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Normalizer extracts a canonical argument set from the loosely shaped
// payloads produced by different voice-AI providers. Providers silently
// change shape between versions, so every selection decision is logged.
type Normalizer struct {
	log *zap.Logger
}

// NewNormalizer creates a new Normalizer
func NewNormalizer(log *zap.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// extractors is the ordered list of argument-source strategies, tried in
// sequence. The first non-nil value wins; the raw payload itself is the
// final fallback (args-only shape).
var extractors = []struct {
	path   string
	lookup func(raw map[string]any) any
}{
	{"arguments", func(raw map[string]any) any { return raw["arguments"] }},
	{"args", func(raw map[string]any) any { return raw["args"] }},
	{"toolCall.arguments", func(raw map[string]any) any { return nested(raw, "toolCall", "arguments") }},
	{"tool_call.arguments", func(raw map[string]any) any { return nested(raw, "tool_call", "arguments") }},
}

// nested reads raw[outer][inner] when raw[outer] is an object
func nested(raw map[string]any, outer, inner string) any {
	if m, ok := raw[outer].(map[string]any); ok {
		return m[inner]
	}
	return nil
}

// Normalize resolves the argument source from the raw payload and validates
// the required fields. Returns a MissingFieldsError naming every absent
// required field; optional fields never fail extraction.
func (n *Normalizer) Normalize(raw map[string]any) (*Args, error) {
	if raw == nil {
		raw = map[string]any{}
	}

	args, source := n.selectArgs(raw)

	a := &Args{
		Name:        stringField(args, "name"),
		Date:        stringField(args, "date"),
		Time:        stringField(args, "time"),
		Title:       strings.TrimSpace(stringField(args, "title")),
		Timezone:    stringField(args, "timezone"),
		PhoneNumber: extractPhone(args, raw),
	}

	var missing []string
	if a.Name == "" {
		missing = append(missing, "name")
	}
	if a.Date == "" {
		missing = append(missing, "date")
	}
	if a.Time == "" {
		missing = append(missing, "time")
	}
	if len(missing) > 0 {
		n.log.Info("tool-call payload rejected",
			zap.String("source", source),
			zap.Strings("missing", missing))
		return nil, &MissingFieldsError{Fields: missing}
	}

	n.log.Debug("tool-call payload normalized",
		zap.String("source", source),
		zap.Bool("has_phone", a.PhoneNumber != ""),
		zap.Bool("has_timezone", a.Timezone != ""))

	return a, nil
}

// selectArgs walks the extraction strategies and returns the argument
// object plus the path it came from (for diagnostics). String values are
// JSON-decoded; a string that fails to decode drops us back to the raw
// payload itself rather than failing the request.
func (n *Normalizer) selectArgs(raw map[string]any) (map[string]any, string) {
	for _, ex := range extractors {
		v := ex.lookup(raw)
		if v == nil {
			continue
		}

		switch val := v.(type) {
		case map[string]any:
			if len(val) == 0 {
				// Distinct from plain absence: the provider sent the key
				// with nothing in it, which usually means upstream drift
				n.log.Warn("tool-call argument source present but empty",
					zap.String("source", ex.path))
			} else {
				n.log.Debug("selected tool-call argument source",
					zap.String("source", ex.path))
			}
			return val, ex.path

		case string:
			if strings.TrimSpace(val) == "" {
				n.log.Warn("tool-call argument source present but empty",
					zap.String("source", ex.path))
				continue
			}

			var parsed map[string]any
			if err := json.Unmarshal([]byte(val), &parsed); err != nil {
				n.log.Warn("string-encoded tool-call arguments are not valid JSON, falling back to raw payload",
					zap.String("source", ex.path),
					zap.Error(err))
				return raw, "raw"
			}

			n.log.Debug("selected tool-call argument source",
				zap.String("source", ex.path),
				zap.Bool("json_encoded", true))
			return parsed, ex.path

		default:
			// A scalar where an object should be. The source was chosen, it
			// just carries no extractable fields
			n.log.Warn("tool-call argument source has unusable type",
				zap.String("source", ex.path),
				zap.String("type", fmt.Sprintf("%T", v)))
			return map[string]any{}, ex.path
		}
	}

	n.log.Debug("selected tool-call argument source", zap.String("source", "raw"))
	return raw, "raw"
}

// extractPhone reads the caller phone number, best effort. Argument-level
// keys take priority over the top-level from_number some providers attach.
func extractPhone(args, raw map[string]any) string {
	for _, key := range []string{"phone_number", "phone", "phoneNumber"} {
		if v := stringField(args, key); v != "" {
			return v
		}
	}
	return stringField(raw, "from_number")
}

// stringField coerces a field to a non-empty string. JSON numbers are
// formatted rather than discarded since some providers send times or
// phone numbers as numerics.
func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
