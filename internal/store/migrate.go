package store

import "fmt"

// payloadVersion is the current run document version. Bump it when the
// payload shape changes and add a step to migrations below.
const payloadVersion = 2

// migrations maps a version to the pure function that lifts a document to
// the next version. Applied in order at load time, never at save time.
var migrations = map[int]func(map[string]any) map[string]any{
	1: migrateV1toV2,
}

// migratePayload lifts a stored document to the current version. A missing
// or unrecognized version is indistinguishable from corruption: the caller
// treats it as absent data and starts fresh.
func migratePayload(m map[string]any) (map[string]any, error) {
	v, ok := payloadVersionOf(m)
	if !ok {
		return nil, fmt.Errorf("run payload: missing or invalid version")
	}
	if v > payloadVersion {
		return nil, fmt.Errorf("run payload: version %d is newer than supported %d", v, payloadVersion)
	}

	for v < payloadVersion {
		step, ok := migrations[v]
		if !ok {
			return nil, fmt.Errorf("run payload: no migration from version %d", v)
		}
		m = step(m)
		v++
		m["version"] = v
	}
	return m, nil
}

// migrateV1toV2 lifts the original save format: the pointer field was named
// "topic_index" and the remediation toggle did not exist yet.
func migrateV1toV2(m map[string]any) map[string]any {
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	if idx, ok := out["topic_index"]; ok {
		out["topic_pointer"] = idx
		delete(out, "topic_index")
	}
	if _, ok := out["remediation_mode"]; !ok {
		out["remediation_mode"] = false
	}
	return out
}

// payloadVersionOf extracts the version field, tolerating the float64
// representation JSON round-tripping produces.
func payloadVersionOf(m map[string]any) (int, bool) {
	switch v := m["version"].(type) {
	case int:
		return v, v > 0
	case int64:
		return int(v), v > 0
	case float64:
		return int(v), v > 0 && v == float64(int(v))
	default:
		return 0, false
	}
}
