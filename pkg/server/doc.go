// Package server is the HTTP front end for the select renderers.
//
// Routes:
//
//	POST /v1/dropdown   render a dropdown from a JSON RenderRequest
//	POST /v1/listbox    render a list box from a JSON RenderRequest
//	GET  /v1/live       WebSocket live preview (LiveMessage in, LiveReply out)
//	GET  /healthz       liveness check
//	GET  /metrics       Prometheus metrics, when a Gatherer is configured
//
// A render request looks like:
//
//	{
//	  "name": "country",
//	  "defaultOption": "Choose...",
//	  "options": [
//	    {"text": "Norway", "value": "no"},
//	    {"text": "Sweden", "value": "se"}
//	  ],
//	  "selected": "se",
//	  "attributes": {"class": "form-select", "tabindex": 3}
//	}
//
// Successful renders answer with text/html. Failures answer with a JSON
// errors.Payload and a status derived from the error category.
package server
