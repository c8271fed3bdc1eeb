// Package inversie holds the OpenAPI document served under /swagger/. It is
// maintained by hand alongside the swag annotations in internal/inversie/http;
// update both when a route changes.
package inversie

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/inversie"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "API index",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.IndexResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "description": "Exchanges email and PIN for an opaque bearer token valid for 30 minutes.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid email or PIN",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Log out",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.MessageResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Current user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.User"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/pin/change": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Change PIN",
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ChangePINRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Current PIN is incorrect",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/settings": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Update settings",
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.UpdateSettingsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.User"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/bewindvoerder/clients": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bewindvoerder"
                ],
                "summary": "List clients",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inversiesdk.ClientOverview"
                            }
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/bewindvoerder/clients/{clientId}/decisions": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bewindvoerder"
                ],
                "summary": "Client decisions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Client ID",
                        "name": "clientId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inversiesdk.Decision"
                            }
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/bewindvoerder/clients/{clientId}/money-requests": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bewindvoerder"
                ],
                "summary": "Client money requests",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Client ID",
                        "name": "clientId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inversiesdk.MoneyRequest"
                            }
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/bewindvoerder/decisions/{id}/approve": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bewindvoerder"
                ],
                "summary": "Approve decision",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Optional message for the client",
                        "name": "request",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.DecideRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.Decision"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/bewindvoerder/decisions/{id}/deny": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bewindvoerder"
                ],
                "summary": "Deny decision",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Optional message for the client",
                        "name": "request",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.DecideRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.Decision"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/bewindvoerder/money-requests/{id}/approve": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bewindvoerder"
                ],
                "summary": "Approve money request",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Optional message for the client",
                        "name": "request",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.DecideRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.MoneyRequest"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/bewindvoerder/money-requests/{id}/deny": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Bewindvoerder"
                ],
                "summary": "Deny money request",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Optional message for the client",
                        "name": "request",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.DecideRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.MoneyRequest"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/decisions": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Decisions"
                ],
                "summary": "List decisions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inversiesdk.Decision"
                            }
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Decisions"
                ],
                "summary": "Create decision",
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.CreateDecisionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.Decision"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/decisions/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Decisions"
                ],
                "summary": "Get decision",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.Decision"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/decisions/{id}/reflection": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Decisions"
                ],
                "summary": "Add reflection",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.CreateReflectionRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.Reflection"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/money-requests": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MoneyRequests"
                ],
                "summary": "List money requests",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inversiesdk.MoneyRequest"
                            }
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MoneyRequests"
                ],
                "summary": "Create money request",
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.CreateMoneyRequestRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.MoneyRequest"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/notifications": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notifications"
                ],
                "summary": "List notifications",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inversiesdk.Notification"
                            }
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/notifications/read-all": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notifications"
                ],
                "summary": "Mark all notifications read",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.MessageResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/notifications/{id}/read": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Notifications"
                ],
                "summary": "Mark notification read",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.MessageResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/potjes": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Potjes"
                ],
                "summary": "List potjes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inversiesdk.Potje"
                            }
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/potjes/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Potjes"
                ],
                "summary": "Get potje",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.Potje"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/savings-goals": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "SavingsGoals"
                ],
                "summary": "List savings goals",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inversiesdk.SavingsGoal"
                            }
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "SavingsGoals"
                ],
                "summary": "Create savings goal",
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.CreateSavingsGoalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.SavingsGoal"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/savings-goals/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "SavingsGoals"
                ],
                "summary": "Update savings goal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.UpdateSavingsGoalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.SavingsGoal"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "SavingsGoals"
                ],
                "summary": "Delete savings goal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.MessageResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/transactions": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "List transactions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Inclusive start, YYYY-MM-DD or RFC 3339",
                        "name": "startDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Exclusive end; a bare date covers that whole day",
                        "name": "endDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Exact category",
                        "name": "category",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inversiesdk.Transaction"
                            }
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Authentication required or session expired",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.PingResponse"
                        }
                    }
                }
            }
        },
        "/livez": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.HealthResponse"
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/inversiesdk.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "inversiesdk.ChangePINRequest": {
            "type": "object",
            "required": [
                "currentPin",
                "newPin"
            ],
            "properties": {
                "currentPin": {
                    "type": "string"
                },
                "newPin": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.ClientOverview": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "firstName": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "lastActivity": {
                    "type": "string",
                    "format": "date-time"
                },
                "lastName": {
                    "type": "string"
                },
                "pendingDecisions": {
                    "type": "integer"
                },
                "pendingMoneyRequests": {
                    "type": "integer"
                }
            }
        },
        "inversiesdk.CreateDecisionRequest": {
            "type": "object",
            "required": [
                "amount",
                "potjeId",
                "title"
            ],
            "properties": {
                "amount": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                },
                "needsHelp": {
                    "type": "boolean"
                },
                "potjeId": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.CreateMoneyRequestRequest": {
            "type": "object",
            "required": [
                "amount",
                "category",
                "photoUrl"
            ],
            "properties": {
                "amount": {
                    "type": "number"
                },
                "category": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "photoUrl": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.CreateReflectionRequest": {
            "type": "object",
            "required": [
                "satisfactionRating"
            ],
            "properties": {
                "notes": {
                    "type": "string"
                },
                "satisfactionRating": {
                    "type": "integer",
                    "maximum": 5,
                    "minimum": 1
                }
            }
        },
        "inversiesdk.CreateSavingsGoalRequest": {
            "type": "object",
            "required": [
                "name",
                "targetAmount"
            ],
            "properties": {
                "currentAmount": {
                    "type": "number"
                },
                "imageUrl": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "targetAmount": {
                    "type": "number"
                },
                "targetDate": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.DecideRequest": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.Decision": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "approvedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "bewindvoerderMessage": {
                    "type": "string"
                },
                "clientId": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "needsHelp": {
                    "type": "boolean"
                },
                "potje": {
                    "$ref": "#/definitions/inversiesdk.Potje"
                },
                "potjeId": {
                    "type": "string"
                },
                "reflection": {
                    "$ref": "#/definitions/inversiesdk.Reflection"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "PENDING",
                        "APPROVED",
                        "DENIED"
                    ]
                },
                "title": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "inversiesdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {
                    "$ref": "#/definitions/inversiesdk.HealthChecks"
                },
                "status": {
                    "type": "string"
                },
                "uptime": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.IndexResponse": {
            "type": "object",
            "properties": {
                "endpoints": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.LoginRequest": {
            "type": "object",
            "required": [
                "email",
                "pin"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "pin": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.LoginResponse": {
            "type": "object",
            "properties": {
                "expiresAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/inversiesdk.User"
                }
            }
        },
        "inversiesdk.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.MoneyRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "approvedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "bewindvoerderMessage": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "clientId": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "photoUrl": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "PENDING",
                        "APPROVED",
                        "DENIED"
                    ]
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "inversiesdk.Notification": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "data": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "isRead": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.PingResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "inversiesdk.Potje": {
            "type": "object",
            "properties": {
                "clientId": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "currentSpent": {
                    "type": "number"
                },
                "icon": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "monthlyBudget": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "remaining": {
                    "type": "number"
                },
                "resetDay": {
                    "type": "integer"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "inversiesdk.Reflection": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "decisionId": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "satisfactionRating": {
                    "type": "integer",
                    "maximum": 5,
                    "minimum": 1
                }
            }
        },
        "inversiesdk.SavingsGoal": {
            "type": "object",
            "properties": {
                "clientId": {
                    "type": "string"
                },
                "completedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "currentAmount": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "isCompleted": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "progress": {
                    "type": "number"
                },
                "targetAmount": {
                    "type": "number"
                },
                "targetDate": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "inversiesdk.Transaction": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number"
                },
                "balanceAfter": {
                    "type": "number"
                },
                "category": {
                    "type": "string"
                },
                "clientId": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date-time"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "importedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "inversiesdk.UpdateSavingsGoalRequest": {
            "type": "object",
            "properties": {
                "currentAmount": {
                    "type": "number"
                },
                "imageUrl": {
                    "type": "string"
                },
                "isCompleted": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "targetAmount": {
                    "type": "number"
                },
                "targetDate": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.UpdateSettingsRequest": {
            "type": "object",
            "properties": {
                "biometricsEnabled": {
                    "type": "boolean"
                },
                "highContrast": {
                    "type": "boolean"
                },
                "language": {
                    "type": "string"
                },
                "textSize": {
                    "type": "string"
                }
            }
        },
        "inversiesdk.User": {
            "type": "object",
            "properties": {
                "biometricsEnabled": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "email": {
                    "type": "string"
                },
                "firstName": {
                    "type": "string"
                },
                "highContrast": {
                    "type": "boolean"
                },
                "id": {
                    "type": "string"
                },
                "language": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "textSize": {
                    "type": "string",
                    "enum": [
                        "SMALL",
                        "MEDIUM",
                        "LARGE",
                        "XLARGE"
                    ]
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "CLIENT",
                        "BEWINDVOERDER"
                    ]
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Session token from /api/auth/login. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Inversie API",
	Description:      "Backend for Inversie, a budgeting app for people under financial guardianship (bewindvoering).\nClients manage potjes, decisions, money requests and savings goals; their bewindvoerder approves or denies.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
