// Package docs registers the OpenAPI document served at /swagger. It is laid
// out the way `swag init -g cmd/api/main.go -o docs` writes it and mirrors the
// @Router annotations on the handlers; running that command replaces it.
// docs_test.go fails when a route or response drifts from the handlers.
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
        "/api/book": {
            "post": {
                "description": "Checks the slot against the calendar's free/busy data and, if it is free,\ncreates an event with the customer invited. Optionally removes the\navailability placeholder event the slot came from.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Book a time slot",
                "parameters": [
                    {
                        "description": "Booking request: {slot: {title, startIso, endIso, availabilityEventId}, customer: {name, phone, email, notes}}",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.bookResp"}},
                    "400": {"description": "Invalid start time or customer details", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "409": {"description": "Slot already booked", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "413": {"description": "Request body too large", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "http.bookResp": {
            "type": "object",
            "properties": {
                "eventId": {"type": "string", "example": "abc123def456"},
                "htmlLink": {"type": "string", "example": "https://www.google.com/calendar/event?eid=abc123"},
                "ok": {"type": "boolean", "example": true}
            }
        },
        "response.ErrorResp": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Server error creating booking."}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Booking Backend API",
	Description:      "Books training sessions straight into Google Calendar after a free/busy check.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
