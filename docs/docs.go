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
        "/items": {
            "get": {
                "tags": ["items"],
                "summary": "List items",
                "description": "Lists every item, or the items of one merchant when merchant_id names an existing merchant",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Merchant id", "name": "merchant_id", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}}
                }
            },
            "post": {
                "tags": ["items"],
                "summary": "Create an item",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"description": "Item attributes", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/items/find": {
            "get": {
                "tags": ["search"],
                "summary": "Find one item",
                "description": "Searches by name substring or by an exclusive price range and returns the first match by name",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Name fragment", "name": "name", "in": "query"},
                    {"type": "number", "description": "Lower price bound", "name": "min_price", "in": "query"},
                    {"type": "number", "description": "Upper price bound", "name": "max_price", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/items/find_all": {
            "get": {
                "tags": ["search"],
                "summary": "Find all matching items",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Name fragment", "name": "name", "in": "query"},
                    {"type": "number", "description": "Lower price bound", "name": "min_price", "in": "query"},
                    {"type": "number", "description": "Upper price bound", "name": "max_price", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/items/{id}": {
            "get": {
                "tags": ["items"],
                "summary": "Get an item",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["items"],
                "summary": "Delete an item",
                "description": "Deletes the item with its invoice items, then every invoice left without items",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            },
            "patch": {
                "tags": ["items"],
                "summary": "Update an item",
                "description": "Changes only the attributes present in the body",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Item id", "name": "id", "in": "path", "required": true},
                    {"description": "Item attributes", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/items/{id}/merchant": {
            "get": {
                "tags": ["items"],
                "summary": "Get the merchant of an item",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/merchants": {
            "get": {
                "tags": ["merchants"],
                "summary": "List merchants",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}}
                }
            }
        },
        "/merchants/find": {
            "get": {
                "tags": ["search"],
                "summary": "Find one merchant",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Name fragment", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/merchants/find_all": {
            "get": {
                "tags": ["search"],
                "summary": "Find all matching merchants",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Name fragment", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/merchants/{id}": {
            "get": {
                "tags": ["merchants"],
                "summary": "Get a merchant",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Merchant id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/merchants/{id}/items": {
            "get": {
                "tags": ["merchants"],
                "summary": "List the items of a merchant",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Merchant id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/invoices": {
            "post": {
                "tags": ["invoices"],
                "summary": "Create an invoice",
                "description": "Creates an invoice together with at least one invoice item; item prices are recorded at creation",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"description": "Invoice attributes", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.InvoiceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/invoices/{id}": {
            "get": {
                "tags": ["invoices"],
                "summary": "Get an invoice with its items",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Invoice id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/invoices/{id}/items": {
            "post": {
                "tags": ["invoices"],
                "summary": "Add an item to an invoice",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "Invoice id", "name": "id", "in": "path", "required": true},
                    {"description": "Invoice item attributes", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.InvoiceItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/common.DataResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "common.DataResponse": {
            "type": "object",
            "properties": {
                "data": {}
            }
        },
        "common.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "errors": {}
            }
        },
        "models.ItemUpdate": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "unit_price": {"type": "number"},
                "merchant_id": {"type": "integer"}
            }
        },
        "models.InvoiceItemInput": {
            "type": "object",
            "properties": {
                "item_id": {"type": "integer"},
                "quantity": {"type": "integer"}
            }
        },
        "models.InvoiceInput": {
            "type": "object",
            "properties": {
                "merchant_id": {"type": "integer"},
                "customer_id": {"type": "integer"},
                "status": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.InvoiceItemInput"}}
            }
        },
        "handlers.ItemRequest": {
            "type": "object",
            "properties": {
                "item": {"$ref": "#/definitions/models.ItemUpdate"}
            }
        },
        "handlers.InvoiceRequest": {
            "type": "object",
            "properties": {
                "invoice": {"$ref": "#/definitions/models.InvoiceInput"}
            }
        },
        "handlers.InvoiceItemRequest": {
            "type": "object",
            "properties": {
                "invoice_item": {"$ref": "#/definitions/models.InvoiceItemInput"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Rails Engine API",
	Description:      "Merchants, items and invoices with name and price search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
