// Package live serves form schemas over HTTP so pages can validate and
// format inputs as the user types.
//
// NewHandler mounts four routes per loaded form:
//
//	GET  /forms/{form}                       schema as JSON
//	POST /forms/{form}/validate              whole-form validation
//	POST /forms/{form}/fields/{field}/blur   one field, on focus loss
//	POST /forms/{form}/fields/{field}/input  reformat while typing
//
// Requests may come from plain fetch calls, HTMX or DataStar. Plain requests
// post url-encoded or multipart bodies and receive JSON. HTMX requests
// (HX-Request: true) to the blur route receive the error fragment as HTML,
// ready to swap into #{field}-error. DataStar requests (Accept:
// text/event-stream) send their signals as JSON and receive Server-Sent
// Events that patch the error elements and the field signal directly.
//
// The error fragment is a templ.Component; replace it with WithErrorComponent
// to match the page's markup.
package live
