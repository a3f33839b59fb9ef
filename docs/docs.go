// Package docs holds the OpenAPI document served under /swagger/.
// It mirrors the godoc annotations on the controllers; refresh with
// `swag init -g cmd/api/main.go` after changing them.
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
        "/events": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns every event ordered by date, split into those accessible at the selected tier and locked previews above it. The tier is a client-held selection; omitted means \"free\". Requires authentication.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events for a tier",
                "parameters": [
                    {
                        "enum": ["free", "silver", "gold", "platinum"],
                        "type": "string",
                        "default": "free",
                        "description": "Viewer tier",
                        "name": "tier",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "data contains accessible and locked events",
                        "schema": {"$ref": "#/definitions/controllers.ListEventsSuccessResponse"}
                    },
                    "400": {
                        "description": "error.code: invalid_tier",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    },
                    "401": {
                        "description": "error.code: unauthorized",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    },
                    "500": {
                        "description": "error.code: malformed_event_data",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    },
                    "502": {
                        "description": "error.code: store_unavailable",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    }
                }
            }
        },
        "/events/{eventID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the event when the selected tier grants access. Otherwise responds 403 with the tier required to unlock it. Requires authentication.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event for a tier",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Event ID (UUID)",
                        "name": "eventID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "enum": ["free", "silver", "gold", "platinum"],
                        "type": "string",
                        "default": "free",
                        "description": "Viewer tier",
                        "name": "tier",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "data contains the event",
                        "schema": {"$ref": "#/definitions/controllers.GetEventSuccessResponse"}
                    },
                    "400": {
                        "description": "error.code: bad_request or invalid_tier",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    },
                    "401": {
                        "description": "error.code: unauthorized",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    },
                    "403": {
                        "description": "error.code: locked",
                        "schema": {"$ref": "#/definitions/controllers.LockedEventErrorResponse"}
                    },
                    "404": {
                        "description": "error.code: not_found",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    },
                    "500": {
                        "description": "error.code: malformed_event_data",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    },
                    "502": {
                        "description": "error.code: store_unavailable",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports service liveness and event store reachability (\"ok\", \"down\" or \"unchecked\").",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "data.status: ok",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    },
                    "503": {
                        "description": "data.status: degraded",
                        "schema": {"$ref": "#/definitions/helpers.APIResponse"}
                    }
                }
            }
        },
        "/tiers": {
            "get": {
                "description": "Returns the tiers in ascending rank with display label and description. Public.",
                "produces": ["application/json"],
                "tags": ["tiers"],
                "summary": "List membership tiers",
                "responses": {
                    "200": {
                        "description": "data contains the tier catalog",
                        "schema": {"$ref": "#/definitions/controllers.ListTiersSuccessResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.GetEventSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.Event"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListEventsResponse": {
            "type": "object",
            "properties": {
                "accessible": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}},
                "accessible_count": {"type": "integer"},
                "locked": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}},
                "locked_count": {"type": "integer"},
                "tier": {"$ref": "#/definitions/domain.Tier"}
            }
        },
        "controllers.ListEventsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.ListEventsResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListTiersSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.TierInfo"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.LockedEventErrorResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.LockedEventResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.LockedEventResponse": {
            "type": "object",
            "properties": {
                "event_id": {"type": "string"},
                "required_tier": {"$ref": "#/definitions/domain.Tier"},
                "viewer_tier": {"$ref": "#/definitions/domain.Tier"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "event_date": {"type": "string"},
                "id": {"type": "string"},
                "image_url": {"type": "string"},
                "tier": {"$ref": "#/definitions/domain.Tier"},
                "title": {"type": "string"}
            }
        },
        "domain.Tier": {
            "type": "string",
            "enum": ["free", "silver", "gold", "platinum"],
            "x-enum-varnames": ["TierFree", "TierSilver", "TierGold", "TierPlatinum"]
        },
        "domain.TierInfo": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "label": {"type": "string"},
                "rank": {"type": "integer"},
                "tier": {"$ref": "#/definitions/domain.Tier"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the identity provider token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tier Showcase API",
	Description:      "Membership-tier gated event listings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
