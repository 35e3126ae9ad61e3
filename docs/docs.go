// Package docs registers the OpenAPI description served under /swagger/.
// Regenerate with `swag init -g cmd/app/main.go -o docs` after changing
// handler annotations.
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
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}}
            }
        },
        "/readyz": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/api/v1/recipes/profitability": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["recipes"],
                "summary": "List recipe profitability",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "server", "in": "query", "required": true},
                    {"type": "integer", "name": "minLevel", "in": "query"},
                    {"type": "integer", "name": "maxLevel", "in": "query"},
                    {"type": "integer", "name": "jobId", "in": "query"},
                    {"type": "number", "name": "minRoi", "in": "query"},
                    {"type": "string", "name": "nameSearch", "in": "query"},
                    {"type": "integer", "name": "recipeId", "in": "query"},
                    {"type": "integer", "name": "resultItemId", "in": "query"},
                    {"type": "string", "name": "sortBy", "in": "query", "enum": ["margin", "roi", "level", "cost", "estimated_margin", "estimated_roi"]},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ProfitabilityPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/bank/opportunities": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["bank"],
                "summary": "Bank craft opportunities",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "server", "in": "query", "required": true},
                    {"type": "string", "name": "profileId", "in": "query"},
                    {"type": "integer", "name": "maxMissing", "in": "query"},
                    {"type": "integer", "name": "minLevel", "in": "query"},
                    {"type": "integer", "name": "maxLevel", "in": "query"},
                    {"type": "integer", "name": "jobId", "in": "query"},
                    {"type": "number", "name": "minRoi", "in": "query"},
                    {"type": "string", "name": "nameSearch", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BankOpportunityPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/bank/sync": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["bank"],
                "summary": "Sync bank",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.BankSyncRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.BankSyncResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/jobs": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["jobs"],
                "summary": "List professions",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.JobsResponse"}}}
            }
        },
        "/api/v1/jobs/{jobID}/leveling-plan": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["jobs"],
                "summary": "Leveling plan",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "jobID", "in": "path", "required": true},
                    {"type": "string", "name": "server", "in": "query", "required": true},
                    {"type": "integer", "name": "fromLevel", "in": "query"},
                    {"type": "integer", "name": "toLevel", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.LevelingPlan"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/prices/latest": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["prices"],
                "summary": "Latest price",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "server", "in": "query", "required": true},
                    {"type": "integer", "name": "itemId", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.LatestPriceResponse"}}}
            }
        },
        "/api/v1/observations": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["catalog"],
                "summary": "Record price observations",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.RecordObservationsResponse"}}}
            }
        },
        "/api/v1/catalog/items": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["catalog"],
                "summary": "Sync items",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SyncResult"}}}
            }
        },
        "/api/v1/catalog/recipes": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["catalog"],
                "summary": "Sync recipes",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.SyncResult"}}}
            }
        }
    },
    "definitions": {
        "handler.HealthResponse": {"type": "object", "properties": {"status": {"type": "string"}, "message": {"type": "string"}}},
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.BankSyncRequest": {
            "type": "object",
            "properties": {
                "server": {"type": "string"},
                "profile_id": {"type": "string"},
                "items": {"type": "array", "items": {"type": "object", "properties": {"item_id": {"type": "integer"}, "quantity": {"type": "integer"}}}}
            }
        },
        "handler.JobsResponse": {"type": "object", "properties": {"jobs": {"type": "array", "items": {"type": "object"}}}},
        "handler.LatestPriceResponse": {
            "type": "object",
            "properties": {"item_id": {"type": "integer"}, "server": {"type": "string"}, "price": {"type": "number"}, "known": {"type": "boolean"}}
        },
        "handler.RecordObservationsResponse": {"type": "object", "properties": {"recorded": {"type": "integer"}}},
        "domain.ProfitabilityPage": {
            "type": "object",
            "properties": {"rows": {"type": "array", "items": {"type": "object"}}, "total": {"type": "integer"}, "limit": {"type": "integer"}, "offset": {"type": "integer"}}
        },
        "domain.BankOpportunityPage": {
            "type": "object",
            "properties": {"rows": {"type": "array", "items": {"type": "object"}}, "total": {"type": "integer"}, "limit": {"type": "integer"}, "offset": {"type": "integer"}}
        },
        "domain.BankSyncResult": {
            "type": "object",
            "properties": {"inserted": {"type": "integer"}, "updated": {"type": "integer"}, "deleted": {"type": "integer"}, "unchanged": {"type": "integer"}}
        },
        "domain.SyncResult": {
            "type": "object",
            "properties": {"created": {"type": "integer"}, "updated": {"type": "integer"}, "skipped": {"type": "integer"}, "detached": {"type": "integer"}}
        },
        "domain.LevelingPlan": {
            "type": "object",
            "properties": {
                "job_id": {"type": "integer"},
                "server": {"type": "string"},
                "from_level": {"type": "integer"},
                "to_level": {"type": "integer"},
                "target_level": {"type": "integer"},
                "complete": {"type": "boolean"},
                "total_cost": {"type": "number"},
                "total_xp": {"type": "integer"},
                "steps": {"type": "array", "items": {"type": "object"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CraftMarket API",
	Description:      "Craft profitability, bank opportunities and profession leveling plans from observed market prices.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
