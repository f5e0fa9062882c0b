// Package docs holds the OpenAPI document served by swaggerkit
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/dreams": {
            "get": {
                "tags": ["dreams"],
                "summary": "List dreams, newest first",
                "parameters": [
                    {"name": "category", "in": "query", "schema": {"type": "string"}},
                    {"name": "limit", "in": "query", "schema": {"type": "integer", "maximum": 500}}
                ],
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/DreamList"}}}}}
            },
            "post": {
                "tags": ["dreams"],
                "summary": "Submit a dream",
                "parameters": [{"$ref": "#/components/parameters/DreamerID"}],
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SubmitDream"}}}},
                "responses": {
                    "201": {"description": "Created", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Submission"}}}},
                    "401": {"description": "Missing or malformed dreamer id"},
                    "429": {"description": "Daily limit reached; details.cooldown_until carries the reset instant"}
                }
            }
        },
        "/dreams/categories": {
            "get": {
                "tags": ["dreams"],
                "summary": "Dream categories with color and sentiment",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ratelimit": {
            "get": {
                "tags": ["ratelimit"],
                "summary": "Submission quota for the caller",
                "parameters": [{"$ref": "#/components/parameters/DreamerID"}],
                "responses": {"200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/RateLimitStatus"}}}}}
            }
        },
        "/identity": {
            "post": {
                "tags": ["identity"],
                "summary": "Issue a fresh anonymous dreamer id",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/regions": {
            "get": {
                "tags": ["regions"],
                "summary": "Known region names",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/regions/themes": {
            "get": {
                "tags": ["regions"],
                "summary": "Dominant theme and total for every region with dreams",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/regions/{name}/stats": {
            "get": {
                "tags": ["regions"],
                "summary": "Aggregate statistics for one region",
                "parameters": [{"name": "name", "in": "path", "required": true, "schema": {"type": "string"}}],
                "responses": {
                    "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/RegionStats"}}}},
                    "404": {"description": "Unknown region"}
                }
            }
        },
        "/meta/health": {"get": {"tags": ["meta"], "summary": "Liveness", "responses": {"200": {"description": "OK"}}}},
        "/meta/ready": {"get": {"tags": ["meta"], "summary": "Readiness of configured backends", "responses": {"200": {"description": "OK"}, "503": {"description": "A backend is down"}}}},
        "/meta/version": {"get": {"tags": ["meta"], "summary": "Build information", "responses": {"200": {"description": "OK"}}}}
    },
    "components": {
        "parameters": {
            "DreamerID": {"name": "X-Dreamer-ID", "in": "header", "required": true, "schema": {"type": "string", "format": "uuid"}}
        },
        "schemas": {
            "Location": {
                "type": "object",
                "properties": {"lat": {"type": "number"}, "lng": {"type": "number"}}
            },
            "Dream": {
                "type": "object",
                "properties": {
                    "id": {"type": "string"},
                    "text": {"type": "string"},
                    "category": {"type": "string", "enum": ["Nightmare", "Surreal", "Romantic", "Prophetic", "Mundane", "Lucid", "Stress", "Adventure"]},
                    "summary": {"type": "string"},
                    "interpretation": {"type": "string"},
                    "timestamp": {"type": "integer", "format": "int64"},
                    "location": {"$ref": "#/components/schemas/Location"}
                }
            },
            "DreamList": {"type": "array", "items": {"$ref": "#/components/schemas/Dream"}},
            "SubmitDream": {
                "type": "object",
                "required": ["text"],
                "properties": {
                    "text": {"type": "string", "maxLength": 2000},
                    "lat": {"type": "number", "minimum": -90, "maximum": 90},
                    "lng": {"type": "number", "minimum": -180, "maximum": 180}
                }
            },
            "RateLimitStatus": {
                "type": "object",
                "properties": {
                    "is_limited": {"type": "boolean"},
                    "cooldown_until": {"type": "string", "format": "date-time", "nullable": true},
                    "remaining": {"type": "integer"}
                }
            },
            "Submission": {
                "type": "object",
                "properties": {
                    "dream": {"$ref": "#/components/schemas/Dream"},
                    "rate_limit": {"$ref": "#/components/schemas/RateLimitStatus"}
                }
            },
            "RegionStats": {
                "type": "object",
                "properties": {
                    "country_name": {"type": "string"},
                    "total_dreams": {"type": "integer"},
                    "dominant_theme": {"type": "string"},
                    "mood_score": {"type": "integer", "minimum": -100, "maximum": 100},
                    "trending_symbols": {"type": "array", "items": {"type": "object", "properties": {"word": {"type": "string"}, "count": {"type": "integer"}}}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/api/v1",
	Title:            "dreammap",
	Description:      "Anonymous dream map: submissions, listings and regional aggregates",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
