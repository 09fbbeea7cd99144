// Package docs holds the static swagger spec for the table service.
// It is written by hand in the shape `swag init` produces (a
// swag.Register call plus a template string) since no swag toolchain
// is available to regenerate it from annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{.Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/games": {
            "post": {
                "summary": "Create a new table with a freshly shuffled, undealt deck",
                "responses": {"201": {"description": "created"}}
            }
        },
        "/games/{id}": {
            "get": {
                "summary": "Fetch the current state of a table",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/games/{id}/deal": {
            "post": {
                "summary": "Deal the next card in rotation",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/games/{id}/declare": {
            "post": {
                "summary": "Register a trump declaration",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/games/{id}/kitty": {
            "post": {
                "summary": "Exchange the kitty for cards from the declarer's hand",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/games/{id}/play": {
            "post": {
                "summary": "Play cards to the current trick",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/games/{id}/clear-trick": {
            "post": {
                "summary": "Resolve a completed trick and advance the lead",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/games/{id}/end-round": {
            "post": {
                "summary": "Score a completed round and advance the trump rank",
                "responses": {"200": {"description": "ok"}}
            }
        }
    }
}`

// SwaggerInfo holds exported swagger configuration, mirroring the
// shape swag init emits so cmd/table-service can set SwaggerInfo.Host
// at startup the same way the teacher's entrypoints do.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Shengji Tractor Table Service API",
	Description:      "HTTP façade over the Shengji/Tractor rules engine",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
