package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var registerSwaggerOnce sync.Once

type swaggerDoc struct {
	doc []byte
}

// ReadDoc implements swag.Swagger.
func (s swaggerDoc) ReadDoc() string {
	return string(s.doc)
}

// registerSwagger publishes doc for echo-swagger. swag keeps a process-wide registry
// that panics on a second registration under the same name.
func registerSwagger(doc *openapi3.T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: raw})
	})

	return nil
}
