// Package docs registers the Swagger document served at /swagger/*.
// Keep the paths in sync with the godoc annotations on the HTTP handlers.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/quote": {
            "get": {
                "description": "Proxy a single ticker quote from Yahoo Finance",
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Get a quote",
                "parameters": [
                    {"type": "string", "description": "Ticker symbol", "name": "ticker", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.Quote"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/scan": {
            "post": {
                "description": "Scan the configured universe, rank it with the default weights and optionally save it",
                "produces": ["application/json"],
                "tags": ["scan"],
                "summary": "Run a scan",
                "parameters": [
                    {"type": "boolean", "description": "Save the result as the latest snapshot", "name": "save", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entity.ScanResult"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/scores/rank": {
            "post": {
                "description": "Compute composite scores and sort stocks, highest first",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scores"],
                "summary": "Rank stocks",
                "parameters": [
                    {"type": "string", "description": "Session id", "name": "X-Session-ID", "in": "header"},
                    {"description": "Stocks and optional weights", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RankRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RankResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/storage/load": {
            "get": {
                "description": "Returns the last saved snapshot, or {stocks: [], scanStats: null, timestamp: null} when nothing was saved",
                "produces": ["application/json"],
                "tags": ["storage"],
                "summary": "Load the latest scan",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Snapshot"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/storage/save": {
            "post": {
                "description": "Overwrites the stored snapshot with the given stocks and scan stats",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["storage"],
                "summary": "Save a scan",
                "parameters": [
                    {"description": "Scan to save", "name": "snapshot", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SaveSnapshotRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SaveSnapshotResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/weights": {
            "get": {
                "description": "Get the factor weights of the current session, or the defaults",
                "produces": ["application/json"],
                "tags": ["scores"],
                "summary": "Get weights",
                "parameters": [
                    {"type": "string", "description": "Session id", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.WeightsResponse"}}
                }
            },
            "put": {
                "description": "Replace the factor weights of the current session; a session is created when none is given",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scores"],
                "summary": "Update weights",
                "parameters": [
                    {"type": "string", "description": "Session id", "name": "X-Session-ID", "in": "header"},
                    {"description": "Weights, each 0-100", "name": "weights", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.WeightsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.WeightsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {"kvConfigured": {"type": "boolean"}, "status": {"type": "string"}}
        },
        "dto.RankRequest": {
            "type": "object",
            "properties": {
                "stocks": {"type": "array", "items": {"$ref": "#/definitions/entity.StockRecord"}},
                "weights": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "dto.RankResponse": {
            "type": "object",
            "properties": {
                "stocks": {"type": "array", "items": {"$ref": "#/definitions/entity.StockRecord"}},
                "weights": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "dto.SaveSnapshotRequest": {
            "type": "object",
            "properties": {
                "scanStats": {"type": "object"},
                "stocks": {"type": "array", "items": {"type": "object"}}
            }
        },
        "dto.SaveSnapshotResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}}
        },
        "dto.Snapshot": {
            "type": "object",
            "properties": {
                "scanStats": {"type": "object"},
                "stocks": {"type": "array", "items": {"type": "object"}},
                "timestamp": {"type": "integer"}
            }
        },
        "dto.WeightsRequest": {
            "type": "object",
            "properties": {"weights": {"type": "object", "additionalProperties": {"type": "integer"}}}
        },
        "dto.WeightsResponse": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "weights": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        },
        "entity.Quote": {
            "type": "object",
            "properties": {
                "marketState": {"type": "string"},
                "postMarketChange": {"type": "number"},
                "postMarketPrice": {"type": "number"},
                "preMarketChange": {"type": "number"},
                "preMarketPrice": {"type": "number"},
                "previousClose": {"type": "number"},
                "regularMarketPrice": {"type": "number"},
                "ticker": {"type": "string"}
            }
        },
        "entity.ScanResult": {
            "type": "object",
            "properties": {
                "scanStats": {"$ref": "#/definitions/entity.ScanStats"},
                "stocks": {"type": "array", "items": {"$ref": "#/definitions/entity.StockRecord"}}
            }
        },
        "entity.ScanStats": {
            "type": "object",
            "properties": {
                "averageScore": {"type": "number"},
                "durationMs": {"type": "integer"},
                "failed": {"type": "integer"},
                "failedTickers": {"type": "array", "items": {"type": "string"}},
                "succeeded": {"type": "integer"},
                "topTicker": {"type": "string"},
                "totalScanned": {"type": "integer"}
            }
        },
        "entity.StockRecord": {
            "type": "object",
            "required": ["ticker"],
            "properties": {
                "agentScores": {"type": "object", "additionalProperties": {"type": "number"}},
                "changePercent": {"type": "number"},
                "compositeScore": {"type": "number"},
                "marketCap": {"type": "number"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "sector": {"type": "string"},
                "ticker": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Stock Screener API",
	Description:      "Quote proxy, scan snapshot persistence and composite ranking for the small-cap screener dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
