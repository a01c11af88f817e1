// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "pong"}}}
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Studio admin login",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.LoginRequest"}}],
                "responses": {"200": {"description": "access token"}, "401": {"description": "invalid credentials", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/quotes/preview": {
            "post": {
                "tags": ["quotes"],
                "summary": "Price a quote form without saving it",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.QuoteRequest"}}],
                "responses": {"200": {"description": "breakdown"}, "400": {"description": "invalid input", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/quotes": {
            "get": {"tags": ["quotes"], "summary": "List quotes", "security": [{"Bearer": []}], "responses": {"200": {"description": "quotes"}}},
            "post": {
                "tags": ["quotes"],
                "summary": "Submit a quote",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.QuoteRequest"}}],
                "responses": {"201": {"description": "quote"}, "400": {"description": "invalid input", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/quotes/{id}": {
            "get": {"tags": ["quotes"], "summary": "Get a quote", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "quote"}, "404": {"description": "not found"}}}
        },
        "/quotes/{id}/receipt": {
            "get": {"tags": ["quotes"], "summary": "Plain-text receipt of a quote", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "receipt"}}}
        },
        "/intake/sessions": {
            "post": {"tags": ["intake"], "summary": "Open a chat intake session", "responses": {"201": {"description": "session"}, "429": {"description": "rate limited"}}}
        },
        "/intake/sessions/{id}/messages": {
            "post": {
                "tags": ["intake"],
                "summary": "Send a chat message",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.IntakeMessageRequest"}}],
                "responses": {"200": {"description": "session"}, "502": {"description": "extraction failed"}}
            }
        },
        "/projects/{id}": {
            "get": {"tags": ["projects"], "summary": "Project dashboard", "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "dashboard"}, "404": {"description": "not found"}}}
        },
        "/projects/{id}/deliverables/uploads": {
            "post": {"tags": ["projects"], "summary": "Presigned deliverable upload", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"201": {"description": "upload ticket"}, "503": {"description": "file storage unavailable"}}}
        },
        "/payments/{quote_id}": {
            "get": {"tags": ["payments"], "summary": "Latest payment of a quote", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "quote_id", "required": true, "type": "string"}], "responses": {"200": {"description": "payment"}}},
            "post": {"tags": ["payments"], "summary": "Charge an accepted quote", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "quote_id", "required": true, "type": "string"}], "responses": {"200": {"description": "payment"}, "409": {"description": "quote not accepted"}}}
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "request.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "request.IntakeMessageRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {"text": {"type": "string"}}
        },
        "request.ServiceInput": {
            "type": "object",
            "properties": {
                "quantity": {"type": "integer"},
                "duration": {"type": "string", "example": "1:30"},
                "individual_durations": {"type": "array", "items": {"type": "string"}},
                "format": {"type": "string"},
                "resolution": {"type": "string"}
            }
        },
        "request.QuoteRequest": {
            "type": "object",
            "properties": {
                "client_name": {"type": "string"},
                "client_email": {"type": "string"},
                "project_name": {"type": "string"},
                "is_existing_project": {"type": "boolean"},
                "audio": {"$ref": "#/definitions/request.ServiceInput"},
                "video": {"$ref": "#/definitions/request.ServiceInput"},
                "delivery_date": {"type": "string", "example": "2025-01-06"},
                "brief": {"type": "string"},
                "assets_link": {"type": "string"},
                "terms_accepted": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Fukuro Studio Quotation API",
	Description:      "Quotes, chat intake, project dashboards and on-delivery payments for the Fukuro audio/video studio.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
