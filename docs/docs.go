// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/api/v1/chat": {
            "post": {
                "description": "Answers one customer message. When the order is confirmed the drink is sent to the dispenser in the same request.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Bar"],
                "summary": "Chat with the barman",
                "parameters": [
                    {
                        "description": "Message and prior conversation",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.chatReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Message missing", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "502": {"description": "Language model unavailable", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/api/v1/cocktails": {
            "get": {
                "description": "Returns the menu in presentation order with per-ingredient pump availability.",
                "produces": ["application/json"],
                "tags": ["Bar"],
                "summary": "List cocktails",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listCocktailsResp"}}
                }
            }
        },
        "/api/v1/dispenser/status": {
            "get": {
                "description": "Proxies the controller queue and health. An unreachable controller is reported as offline, not as an error.",
                "produces": ["application/json"],
                "tags": ["Bar"],
                "summary": "Dispenser status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.dispenserStatusResp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.turnReq": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "example": "user"},
                "content": {"type": "string"}
            }
        },
        "http.chatReq": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "quiero una sangría"},
                "conversationHistory": {"type": "array", "items": {"$ref": "#/definitions/http.turnReq"}}
            }
        },
        "http.intentResp": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "example": "named_confirmed"},
                "recipeId": {"type": "string"},
                "rule": {"type": "string"},
                "outcome": {"type": "string"}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "shouldPrepare": {"type": "boolean"},
                "recipe": {"$ref": "#/definitions/model.Recipe"},
                "pourPlan": {"$ref": "#/definitions/model.PourPlan"},
                "controllerResult": {"type": "object", "additionalProperties": true},
                "intent": {"$ref": "#/definitions/http.intentResp"}
            }
        },
        "http.ingredientResp": {
            "type": "object",
            "properties": {
                "ingredient": {"type": "string"},
                "label": {"type": "string"},
                "emoji": {"type": "string"},
                "ml": {"type": "number"},
                "available": {"type": "boolean"}
            }
        },
        "http.cocktailResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "total_ml": {"type": "number"},
                "available": {"type": "boolean"},
                "ingredients": {"type": "array", "items": {"$ref": "#/definitions/http.ingredientResp"}}
            }
        },
        "http.listCocktailsResp": {
            "type": "object",
            "properties": {
                "cocktails": {"type": "array", "items": {"$ref": "#/definitions/http.cocktailResp"}}
            }
        },
        "model.Ingredient": {
            "type": "object",
            "properties": {
                "ingredient": {"type": "string"},
                "ml": {"type": "number"}
            }
        },
        "model.Recipe": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "ingredients": {"type": "array", "items": {"$ref": "#/definitions/model.Ingredient"}}
            }
        },
        "model.PumpDose": {
            "type": "object",
            "properties": {
                "address": {},
                "ingredient": {"type": "string"},
                "ml": {"type": "number"},
                "duration_ms": {"type": "integer"}
            }
        },
        "model.PourPlan": {
            "type": "object",
            "properties": {
                "recipe_id": {"type": "string"},
                "recipe_name": {"type": "string"},
                "pumps": {"type": "object", "additionalProperties": {"$ref": "#/definitions/model.PumpDose"}},
                "total_ml": {"type": "number"},
                "timestamp": {"type": "integer"}
            }
        },
        "model.DispenserStatus": {
            "type": "object",
            "properties": {
                "endpoint": {"type": "string"},
                "online": {"type": "boolean"},
                "health": {"type": "string"},
                "state": {"type": "string"},
                "queued_orders": {"type": "integer"},
                "estimated_wait": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "http.dispenserStatusResp": {
            "type": "object",
            "properties": {
                "endpoint": {"type": "string"},
                "online": {"type": "boolean"},
                "health": {"type": "string"},
                "state": {"type": "string"},
                "queued_orders": {"type": "integer"},
                "estimated_wait": {"type": "string"},
                "error": {"type": "string"},
                "checked_at": {"type": "string", "example": "2025-06-23 22:15:00"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
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
	Title:            "Autonomous Barman API",
	Description:      "Conversational cocktail ordering: chat with the barman and the dispenser pours confirmed drinks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
