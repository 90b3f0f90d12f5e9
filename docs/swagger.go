// Package docs registers the OpenAPI document served by Swagger UI at /docs.
// Regenerate with swag init -g api/server.go after changing handler annotations.
//
//	@title			Contacts Manager API
//	@version		1.0.0
//	@description	REST API for storing contacts and listing upcoming birthdays.
//	@BasePath		/
package docs

import (
	"github.com/swaggo/swag"
)

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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Welcome message",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.MessageResponse"}}
                }
            }
        },
        "/api/healthchecker": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Database health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.HealthCheckResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.InternalServerErrorResponse"}}
                }
            }
        },
        "/api/contacts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "List contacts",
                "parameters": [
                    {"type": "integer", "default": 10, "maximum": 100, "minimum": 1, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "minimum": 0, "description": "Rows to skip", "name": "offset", "in": "query"},
                    {"type": "string", "description": "First name contains", "name": "first_name", "in": "query"},
                    {"type": "string", "description": "Last name contains", "name": "last_name", "in": "query"},
                    {"type": "string", "description": "Email contains", "name": "email", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/contacts.ContactResponse"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/responses.ValidationErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Create contact",
                "parameters": [
                    {"description": "Contact", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/contacts.ContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/contacts.ContactResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/responses.ResourceAlreadyExistsErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/responses.ValidationErrorResponse"}}
                }
            }
        },
        "/api/contacts/birthdays": {
            "get": {
                "description": "Contacts whose birthday falls within the next days, soonest first",
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Upcoming birthdays",
                "parameters": [
                    {"type": "integer", "default": 7, "maximum": 366, "minimum": 1, "description": "Window in days", "name": "days", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/contacts.ContactResponse"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/responses.ValidationErrorResponse"}}
                }
            }
        },
        "/api/contacts/{contact_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Get contact",
                "parameters": [
                    {"type": "integer", "description": "Contact ID", "name": "contact_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/contacts.ContactResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ResourceNotFoundErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/responses.ValidationErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Update contact",
                "parameters": [
                    {"type": "integer", "description": "Contact ID", "name": "contact_id", "in": "path", "required": true},
                    {"description": "Contact", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/contacts.ContactRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/contacts.ContactResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ResourceNotFoundErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/responses.ResourceAlreadyExistsErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/responses.ValidationErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Delete contact",
                "parameters": [
                    {"type": "integer", "description": "Contact ID", "name": "contact_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/contacts.ContactResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ResourceNotFoundErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/responses.ValidationErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "contacts.ContactRequest": {
            "type": "object",
            "required": ["email", "first_name", "last_name", "phone_number"],
            "properties": {
                "additional_info": {"type": "string", "maxLength": 250},
                "birthday": {"type": "string", "example": "1990-05-17"},
                "email": {"type": "string", "maxLength": 100},
                "first_name": {"type": "string", "maxLength": 50},
                "last_name": {"type": "string", "maxLength": 50},
                "phone_number": {"type": "string", "maxLength": 20}
            }
        },
        "contacts.ContactResponse": {
            "type": "object",
            "properties": {
                "additional_info": {"type": "string"},
                "birthday": {"type": "string"},
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "id": {"type": "integer"},
                "last_name": {"type": "string"},
                "phone_number": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "errors.FieldError": {
            "type": "object",
            "properties": {
                "loc": {"type": "array", "items": {"type": "string"}},
                "msg": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "responses.HealthCheckResponse": {
            "type": "object",
            "properties": {"status": {"type": "string", "example": "ok"}}
        },
        "responses.InternalServerErrorResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string", "example": "Internal Server Error"}}
        },
        "responses.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "responses.ResourceAlreadyExistsErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string", "example": "<resource> with <key> '<value>' already exists"},
                "key": {"type": "string", "example": "<key>"},
                "resource": {"type": "string", "example": "<resource>"},
                "value": {"type": "string", "example": "<value>"}
            }
        },
        "responses.ResourceNotFoundErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string", "example": "<resource> with <key> '<value>' not found"},
                "key": {"type": "string", "example": "<key>"},
                "resource": {"type": "string", "example": "<resource>"},
                "value": {"type": "string", "example": "<value>"}
            }
        },
        "responses.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "array", "items": {"$ref": "#/definitions/errors.FieldError"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Contacts Manager API",
	Description:      "REST API for storing contacts and listing upcoming birthdays.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
