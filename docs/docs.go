package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "TaskFlow API Documentation",
        "title": "TaskFlow API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/api/v1",
    "schemes": ["http"],
    "paths": {
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List Tasks",
                "description": "List tasks with pagination and filtering",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "page", "type": "integer", "minimum": 1, "default": 1},
                    {"in": "query", "name": "page_size", "type": "integer", "minimum": 1, "maximum": 100, "default": 10},
                    {"in": "query", "name": "status", "type": "string", "enum": ["active", "completed", "pending"]},
                    {"in": "query", "name": "priority", "type": "string", "enum": ["low", "medium", "high"]},
                    {"in": "query", "name": "search", "type": "string", "description": "Case-insensitive substring match on title or description"}
                ],
                "responses": {
                    "200": {"description": "Paginated task list"},
                    "400": {"description": "Invalid query parameters"}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create Task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "task",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "required": ["title"],
                            "properties": {
                                "title": {"type": "string", "maxLength": 200, "example": "Buy groceries"},
                                "description": {"type": "string", "maxLength": 1000},
                                "status": {"type": "string", "enum": ["active", "completed", "pending"], "default": "active"},
                                "priority": {"type": "string", "enum": ["low", "medium", "high"], "default": "medium"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Task created"},
                    "422": {"description": "Validation failed"}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get Task",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Task"},
                    "404": {"description": "Task not found"}
                }
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Update Task",
                "description": "Partial update; omitted fields are left unchanged",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true},
                    {
                        "in": "body",
                        "name": "task",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {"type": "string", "maxLength": 200},
                                "description": {"type": "string", "maxLength": 1000},
                                "status": {"type": "string", "enum": ["active", "completed", "pending"]},
                                "priority": {"type": "string", "enum": ["low", "medium", "high"]}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Updated task"},
                    "404": {"description": "Task not found"},
                    "422": {"description": "Validation failed"}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete Task",
                "description": "Soft delete; returns the deleted task representation",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Deleted task"},
                    "404": {"description": "Task not found"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "TaskFlow API",
	Description:      "TaskFlow API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
