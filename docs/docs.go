// Package docs holds the Swagger 2.0 document served under /swagger.
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
        "/api/authors": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "List authors",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 0,
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "field[,asc|desc]",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.equals",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "id.specified",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "firstName.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.doesNotContain",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "lastName.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.doesNotContain",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.ListResult-model.Author"
                        },
                        "headers": {
                            "X-Total-Count": {
                                "type": "integer",
                                "description": "total matching rows"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Create author",
                "parameters": [
                    {
                        "description": "Author",
                        "name": "author",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.Author"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Author"
                        },
                        "headers": {
                            "Location": {
                                "type": "string",
                                "description": "URL of the new author"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/authors/count": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Count authors",
                "parameters": [
                    {
                        "type": "integer",
                        "name": "id.equals",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "id.specified",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "firstName.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.doesNotContain",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "lastName.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.doesNotContain",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "integer"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/authors/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Get author",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Author ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Author"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Replace author",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Author ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Author",
                        "name": "author",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.Author"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Author"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Partially update author",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Author ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "patch",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.AuthorPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Author"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "authors"
                ],
                "summary": "Delete author",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Author ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/clients": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clients"
                ],
                "summary": "List clients",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 0,
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "field[,asc|desc]",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.equals",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "id.specified",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "firstName.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.doesNotContain",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "lastName.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.doesNotContain",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "email.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.doesNotContain",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "address.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.doesNotContain",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "phone.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.doesNotContain",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.ListResult-model.Client"
                        },
                        "headers": {
                            "X-Total-Count": {
                                "type": "integer",
                                "description": "total matching rows"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clients"
                ],
                "summary": "Create client",
                "parameters": [
                    {
                        "description": "Client",
                        "name": "client",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.Client"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Client"
                        },
                        "headers": {
                            "Location": {
                                "type": "string",
                                "description": "URL of the new client"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/clients/count": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clients"
                ],
                "summary": "Count clients",
                "parameters": [
                    {
                        "type": "integer",
                        "name": "id.equals",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "id.specified",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "firstName.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "firstName.doesNotContain",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "lastName.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "lastName.doesNotContain",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "email.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "email.doesNotContain",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "address.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "address.doesNotContain",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "phone.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "phone.doesNotContain",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "integer"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/clients/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clients"
                ],
                "summary": "Get client",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Client ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Client"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clients"
                ],
                "summary": "Replace client",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Client ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Client",
                        "name": "client",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.Client"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Client"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clients"
                ],
                "summary": "Partially update client",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Client ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "patch",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.ClientPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Client"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "clients"
                ],
                "summary": "Delete client",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Client ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/publishers": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "publishers"
                ],
                "summary": "List publishers",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 0,
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "name": "size",
                        "in": "query"
                    },
                    {
                        "type": "array",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi",
                        "description": "field[,asc|desc]",
                        "name": "sort",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.equals",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "id.specified",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "name.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.doesNotContain",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.ListResult-model.Publisher"
                        },
                        "headers": {
                            "X-Total-Count": {
                                "type": "integer",
                                "description": "total matching rows"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "publishers"
                ],
                "summary": "Create publisher",
                "parameters": [
                    {
                        "description": "Publisher",
                        "name": "publisher",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.Publisher"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Publisher"
                        },
                        "headers": {
                            "Location": {
                                "type": "string",
                                "description": "URL of the new publisher"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/publishers/count": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "publishers"
                ],
                "summary": "Count publishers",
                "parameters": [
                    {
                        "type": "integer",
                        "name": "id.equals",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "id.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "id.specified",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThan",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.greaterThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "name": "id.lessThanOrEqual",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.equals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.notEquals",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.in",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.notIn",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "name": "name.specified",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.contains",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "name": "name.doesNotContain",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "integer"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/api/publishers/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "publishers"
                ],
                "summary": "Get publisher",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Publisher ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Publisher"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "publishers"
                ],
                "summary": "Replace publisher",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Publisher ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Publisher",
                        "name": "publisher",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.Publisher"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Publisher"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "publishers"
                ],
                "summary": "Partially update publisher",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Publisher ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "patch",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/model.PublisherPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Publisher"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "publishers"
                ],
                "summary": "Delete publisher",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Publisher ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
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
                    "ops"
                ],
                "summary": "Readiness: database and cache connectivity",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.errorPayload"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": [
                    "ops"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "request_id": {
                    "type": "string"
                },
                "error": {
                    "$ref": "#/definitions/handler.errorEnvelope"
                }
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "details": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/validator.ValidationError"
                    }
                }
            }
        },
        "validator.ValidationError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "model.Author": {
            "type": "object",
            "required": [
                "firstName",
                "lastName"
            ],
            "properties": {
                "id": {
                    "type": "integer",
                    "format": "int64"
                },
                "firstName": {
                    "type": "string",
                    "maxLength": 50
                },
                "lastName": {
                    "type": "string",
                    "maxLength": 50
                }
            }
        },
        "model.AuthorPatch": {
            "type": "object",
            "properties": {
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                }
            }
        },
        "model.Client": {
            "type": "object",
            "required": [
                "firstName",
                "lastName"
            ],
            "properties": {
                "id": {
                    "type": "integer",
                    "format": "int64"
                },
                "firstName": {
                    "type": "string",
                    "maxLength": 50
                },
                "lastName": {
                    "type": "string",
                    "maxLength": 50
                },
                "email": {
                    "type": "string",
                    "maxLength": 50
                },
                "address": {
                    "type": "string",
                    "maxLength": 50
                },
                "phone": {
                    "type": "string",
                    "maxLength": 20
                }
            }
        },
        "model.ClientPatch": {
            "type": "object",
            "properties": {
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "model.Publisher": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "id": {
                    "type": "integer",
                    "format": "int64"
                },
                "name": {
                    "type": "string",
                    "maxLength": 100
                }
            }
        },
        "model.PublisherPatch": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                }
            }
        },
        "service.ListResult-model.Author": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Author"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "size": {
                    "type": "integer"
                }
            }
        },
        "service.ListResult-model.Client": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Client"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "size": {
                    "type": "integer"
                }
            }
        },
        "service.ListResult-model.Publisher": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Publisher"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "page": {
                    "type": "integer"
                },
                "size": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Library API",
	Description:      "CRUD and criteria queries over the library's authors, clients and publishers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
