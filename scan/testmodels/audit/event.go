package audit

import "github.com/go-openapi/strfmt"

//mongo:document
type Event struct {
	ID        string           `json:"Id"`
	Action    string           `json:"Action"`
	CreatedAt *strfmt.DateTime `json:"CreatedAt"`
}

// marker text inside the body is ignored: //mongo:document
type Note struct {
	Text string `json:"Text"`
}
