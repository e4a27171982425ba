// Package docs is generated by swaggo/swag. Regenerate with
// swag init -g cmd/api/main.go -o cmd/api/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.HealthResponse"}
                    }
                }
            }
        },
        "/questions": {
            "get": {
                "description": "Returns the questionnaire in a new random order on every call",
                "produces": ["application/json"],
                "tags": ["quiz"],
                "summary": "List questions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.QuestionsResponse"}
                    }
                }
            }
        },
        "/submissions": {
            "get": {
                "description": "Newest first",
                "produces": ["application/json"],
                "tags": ["submissions"],
                "summary": "List recent submissions",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Maximum number of submissions (1-100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.SubmissionListResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/submissions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["submissions"],
                "summary": "Get a submission",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Submission ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.SubmissionResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        },
        "/submit": {
            "post": {
                "description": "Scores the answers, stores the submission and returns the personalized result",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["submissions"],
                "summary": "Score and store a submission",
                "parameters": [
                    {
                        "description": "Respondent and answers",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.SubmitRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.SubmitResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/dto.ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Answer": {
            "type": "object",
            "properties": {
                "a": {"type": "string"},
                "q": {"type": "integer"}
            }
        },
        "domain.Question": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "options": {"type": "array", "items": {"type": "string"}},
                "text": {"type": "string"},
                "type": {"type": "string", "enum": ["choice", "text"]}
            }
        },
        "domain.ValidationError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "field": {"type": "string"},
                "message": {"type": "string"},
                "value": {}
            }
        },
        "dto.ErrorResponse": {
            "description": "Error body; error is always present",
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "error": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/domain.ValidationError"}}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean", "example": true}
            }
        },
        "dto.QuestionsResponse": {
            "description": "Questionnaire",
            "type": "object",
            "properties": {
                "questions": {"type": "array", "items": {"$ref": "#/definitions/domain.Question"}}
            }
        },
        "dto.SubmissionListResponse": {
            "type": "object",
            "properties": {
                "submissions": {"type": "array", "items": {"$ref": "#/definitions/dto.SubmissionResponse"}}
            }
        },
        "dto.SubmissionResponse": {
            "description": "Stored submission with its scored result",
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/domain.Answer"}},
                "calculationSteps": {"type": "array", "items": {"type": "string"}},
                "categoryScores": {"type": "object", "additionalProperties": {"type": "number"}},
                "dominantType": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "overallScore": {"type": "number"},
                "personalizedDescription": {"type": "string"},
                "recommendedLearningStyles": {"type": "array", "items": {"type": "string"}},
                "timestamp": {"type": "string"}
            }
        },
        "dto.SubmitRequest": {
            "description": "Respondent details and answers to score",
            "type": "object",
            "properties": {
                "age": {"type": "integer", "example": 9},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/domain.Answer"}},
                "name": {"type": "string", "example": "Ana"}
            }
        },
        "dto.SubmitResponse": {
            "description": "Scored result with the stored submission id",
            "type": "object",
            "properties": {
                "calculationSteps": {"type": "array", "items": {"type": "string"}},
                "categoryScores": {"type": "object", "additionalProperties": {"type": "number"}},
                "dominantType": {"type": "string"},
                "id": {"type": "integer"},
                "overallScore": {"type": "number"},
                "personalizedDescription": {"type": "string"},
                "recommendedLearningStyles": {"type": "array", "items": {"type": "string"}},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "AgapePT API",
	Description:      "Personality and learning-style questionnaire: serves the questions, scores submissions and stores the results.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
