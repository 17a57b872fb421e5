// Package httpjson holds the JSON request/response helpers shared by every
// handler: bounded body decoding, response writing, and the couple of
// lenient field types the wire format needs.
package httpjson

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/unityvolunteers/unityhub/internal/app/system/httperr"
)

// maxBodyBytes bounds request bodies. The largest legitimate payload is an
// NGO profile with achievements; 1 MiB is far above anything real.
const maxBodyBytes = 1 << 20

// Decode reads the request body into dst. Malformed or oversized bodies
// come back as a Validation error ready for httperr.Write.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return httperr.Wrap(httperr.Validation, "Invalid request body", err)
	}
	return nil
}

// Write sends v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// dateLayouts are the formats clients actually send: RFC 3339 from
// programmatic callers, bare dates from HTML date inputs.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a request date field.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// StringList accepts either a JSON array of strings or a single
// comma-separated string ("a, b" decodes to ["a", "b"]). The original web
// client sends the comma form from plain text inputs.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(s, ",")
	return nil
}
