package live

import (
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cast"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/eduplatform/brforms/pkg/form"
)

const (
	hxRequest       = "HX-Request"
	eventStreamMIME = "text/event-stream"
)

// IsHTMX reports whether r was issued by HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(hxRequest) == "true"
}

// IsDataStar reports whether r was issued by DataStar and expects SSE.
func IsDataStar(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), eventStreamMIME) ||
		r.URL.Query().Has("datastar")
}

// readValues returns the submitted values of r. DataStar signals are
// flattened into form values: true booleans become "on", false and null
// signals are dropped, so checkbox presence matches a browser submission.
func readValues(r *http.Request) (url.Values, map[string][]*multipart.FileHeader, error) {
	if !IsDataStar(r) {
		return form.ParseRequest(r)
	}

	signals := make(map[string]any)
	if err := datastar.ReadSignals(r, &signals); err != nil {
		return nil, nil, err
	}

	values := make(url.Values, len(signals))
	for name, signal := range signals {
		switch v := signal.(type) {
		case nil:
		case bool:
			if v {
				values.Set(name, "on")
			}
		case []any:
			for _, item := range v {
				values.Add(name, cast.ToString(item))
			}
		default:
			values.Set(name, cast.ToString(v))
		}
	}
	return values, nil, nil
}
