package server

import (
	"fmt"
	"github.com/davecgh/go-spew/spew"
	"net/http"
)

// HttpEndpoint describes a single route of the HTTP server
type HttpEndpoint struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Description string `json:"description"`
}

func (ep *HttpEndpoint) String() string {
	return fmt.Sprintf("%s %s", ep.Method, ep.Pattern)
}

// ------ // ------ // ------ // ------ // ------ // ------ // ------ //

type HttpEndpointList []HttpEndpoint

func (epl HttpEndpointList) String() string {
	return spew.Sdump(epl)
}

// Endpoints lists all the routes served by the HttpServer
var Endpoints = HttpEndpointList{
	{Method: http.MethodGet, Pattern: "/encoders", Description: "List the enabled encoders"},
	{Method: http.MethodPost, Pattern: "/encode", Description: "Encode the body. Use `?url=true` for the URL-safe alphabet"},
	{Method: http.MethodPost, Pattern: "/encode/{encoder}", Description: "Encode the body with the named encoder"},
	{Method: http.MethodPost, Pattern: "/decode", Description: "Decode the body. Use `?strip=true` to remove line breaks first"},
	{Method: http.MethodPost, Pattern: "/decode/{encoder}", Description: "Decode the body with the named encoder"},
	{Method: http.MethodGet, Pattern: "/ws/{encoder}", Description: "Websocket: binary frames are encoded, text frames are decoded"},
}
