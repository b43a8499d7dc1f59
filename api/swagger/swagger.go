package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Review360 API",
        "description": "360-degree performance review collection and aggregation",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Reviews", "description": "Organizer-facing review lifecycle"},
        {"name": "Submissions", "description": "Token-gated reviewer submission flow"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/reviews": {
            "post": {
                "tags": ["Reviews"],
                "summary": "Create a review with its reviewer set",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateReviewRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/reviews/{reviewId}": {
            "get": {
                "tags": ["Reviews"],
                "summary": "Organizer manage view",
                "parameters": [
                    {"name": "reviewId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Review not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/reviews/{reviewId}/results": {
            "get": {
                "tags": ["Reviews"],
                "summary": "Aggregated results per category and overall",
                "parameters": [
                    {"name": "reviewId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Review not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/reviews/{reviewId}/results/export": {
            "get": {
                "tags": ["Reviews"],
                "summary": "Download overall results as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "reviewId", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered file"},
                    "404": {"description": "Review not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/reviewers/{token}": {
            "get": {
                "tags": ["Submissions"],
                "summary": "Resolve a reviewer token into the submission form context",
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/responses": {
            "post": {
                "tags": ["Submissions"],
                "summary": "Submit the one-time response for a reviewer token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitResponseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already submitted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Question": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "text": {"type": "string"},
                "category": {"type": "string"},
                "order": {"type": "integer"},
                "kind": {"type": "string", "enum": ["RATED", "COMMENT_ONLY"]}
            }
        },
        "ReviewerInput": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "category": {"type": "string", "enum": ["SUBORDINATE", "PEER", "SUPERVISOR", "OTHER"]}
            },
            "required": ["email", "category"]
        },
        "CreateReviewRequest": {
            "type": "object",
            "properties": {
                "ownerName": {"type": "string"},
                "ownerEmail": {"type": "string"},
                "revieweeName": {"type": "string"},
                "reviewers": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/ReviewerInput"}
                }
            },
            "required": ["ownerName", "ownerEmail", "revieweeName", "reviewers"]
        },
        "AnswerInput": {
            "type": "object",
            "properties": {
                "questionId": {"type": "integer"},
                "rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "comment": {"type": "string"}
            },
            "required": ["questionId"]
        },
        "SubmitResponseRequest": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "reviewerName": {"type": "string"},
                "answers": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/AnswerInput"}
                }
            },
            "required": ["token", "answers"]
        },
        "QuestionStats": {
            "type": "object",
            "properties": {
                "sum": {"type": "integer"},
                "count": {"type": "integer"},
                "average": {"type": "number"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
