// Package docs 提供 /api-docs 使用的 Swagger 文档。
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a user",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/RegisterResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Username already exists", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in and obtain a token pair",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenPair"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Error"}},
                    "429": {"description": "Too many login attempts", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange a refresh token for a new token pair",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"refreshToken": {"type": "string"}}}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenPair"}},
                    "401": {"description": "Invalid refresh token", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/cats": {
            "get": {
                "tags": ["cats"],
                "summary": "List cats",
                "parameters": [
                    {"type": "string", "description": "Temperaments separated by |, case-insensitive", "name": "temperaments", "in": "query"},
                    {"type": "boolean", "name": "isAdopted", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Cat"}}}}
            },
            "post": {
                "tags": ["cats"],
                "summary": "Add a cat",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CatInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Cat"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Staff or adopter not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/cats/{id}": {
            "get": {
                "tags": ["cats"],
                "summary": "Get a cat",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Cat"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "tags": ["cats"],
                "summary": "Replace a cat",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CatInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Cat"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "patch": {
                "tags": ["cats"],
                "summary": "Reassign staff or record an adoption",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CatPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Cat"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["cats"],
                "summary": "Delete a cat",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/staff": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["staff"],
                "summary": "List staff",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Staff"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["staff"],
                "summary": "Add a staff member",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/StaffInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Staff"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/staff/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["staff"],
                "summary": "Get a staff member",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "name": "includeCats", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Staff"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["staff"],
                "summary": "Replace a staff member",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/StaffInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Staff"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["staff"],
                "summary": "Delete a staff member not in charge of any cat",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Still in charge of cats", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/adopters": {
            "get": {
                "tags": ["adopters"],
                "summary": "List adopters",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Adopter"}}}}
            },
            "post": {
                "tags": ["adopters"],
                "summary": "Add an adopter",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/AdopterInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Adopter"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/adopters/{id}": {
            "get": {
                "tags": ["adopters"],
                "summary": "Get an adopter",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "name": "includeCats", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Adopter"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "tags": ["adopters"],
                "summary": "Replace an adopter",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/AdopterInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Adopter"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "tags": ["adopters"],
                "summary": "Delete an adopter with no adopted cats",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Referenced by a cat", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "msg": {"type": "string"},
                "data": {"type": "object"}
            }
        },
        "Credentials": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "RegisterResult": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "userId": {"type": "string"}}
        },
        "TokenPair": {
            "type": "object",
            "properties": {"accessToken": {"type": "string"}, "refreshToken": {"type": "string"}}
        },
        "Temperament": {
            "type": "string",
            "enum": ["Calm", "Curious", "Playful", "Affectionate", "Independent", "Shy", "Dominant", "Easygoing", "Aggressive", "Nervous", "Social"]
        },
        "Cat": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Whiskers"},
                "age": {"type": "integer", "example": 3},
                "breed": {"type": "string"},
                "dateJoined": {"type": "string", "format": "date-time"},
                "vaccinated": {"type": "boolean"},
                "temperament": {"type": "array", "items": {"$ref": "#/definitions/Temperament"}},
                "staffInCharge": {"type": "string", "format": "uuid"},
                "isAdopted": {"type": "boolean"},
                "adopterId": {"type": "integer"}
            }
        },
        "CatInput": {
            "type": "object",
            "required": ["name", "age", "breed", "dateJoined", "vaccinated", "temperament", "staffInCharge", "isAdopted"],
            "properties": {
                "name": {"type": "string"},
                "age": {"type": "integer", "minimum": 1},
                "breed": {"type": "string"},
                "dateJoined": {"type": "string", "format": "date-time"},
                "vaccinated": {"type": "boolean"},
                "temperament": {"type": "array", "items": {"$ref": "#/definitions/Temperament"}},
                "staffInCharge": {"type": "string", "format": "uuid"},
                "isAdopted": {"type": "boolean"},
                "adopterId": {"type": "integer"}
            }
        },
        "CatPatch": {
            "type": "object",
            "properties": {
                "staffInCharge": {"type": "string", "format": "uuid"},
                "adopterId": {"type": "integer"}
            }
        },
        "Staff": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "name": {"type": "string"},
                "lastName": {"type": "string"},
                "age": {"type": "integer"},
                "dateJoined": {"type": "string", "format": "date-time"},
                "role": {"type": "string"}
            }
        },
        "StaffInput": {
            "type": "object",
            "required": ["name", "lastName", "age", "dateJoined", "role"],
            "properties": {
                "name": {"type": "string"},
                "lastName": {"type": "string"},
                "age": {"type": "integer", "minimum": 18},
                "dateJoined": {"type": "string", "format": "date-time"},
                "role": {"type": "string"}
            }
        },
        "Adopter": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "lastName": {"type": "string"},
                "dateOfBirth": {"type": "string", "format": "date-time"},
                "phone": {"type": "integer"},
                "address": {"type": "string"}
            }
        },
        "AdopterInput": {
            "type": "object",
            "required": ["name", "lastName", "dateOfBirth", "phone", "address"],
            "properties": {
                "name": {"type": "string"},
                "lastName": {"type": "string"},
                "dateOfBirth": {"type": "string", "format": "date"},
                "phone": {"type": "string", "description": "digits, +, - and spaces; at least 8 digits"},
                "address": {"type": "string", "minLength": 6}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo 运行时可改 Host / BasePath
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Cat Café API",
	Description:      "API for managing cats, adopters and the staff at a cat café",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
