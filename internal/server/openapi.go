package server

import (
	"encoding/json"
	"net/http"
)

// handleDocs serves the interactive API documentation page.
func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		s.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	html := `<!DOCTYPE html>
<html>
<head>
    <title>Muse API Documentation</title>
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@4.15.5/swagger-ui.css" />
    <style>
        html { box-sizing: border-box; overflow: -moz-scrollbars-vertical; overflow-y: scroll; }
        *, *:before, *:after { box-sizing: inherit; }
        body { margin:0; background: #fafafa; }
    </style>
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4.15.5/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            const ui = SwaggerUIBundle({
                url: '/openapi.json',
                dom_id: '#swagger-ui',
                deepLinking: true,
                presets: [
                    SwaggerUIBundle.presets.apis,
                    SwaggerUIBundle.presets.standalone
                ],
                plugins: [
                    SwaggerUIBundle.plugins.DownloadUrl
                ],
                layout: "StandaloneLayout"
            });
        };
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// handleOpenAPISpec serves the OpenAPI JSON specification.
func (s *Server) handleOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		s.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(getOpenAPISpec())
}

// getOpenAPISpec returns the OpenAPI 3.0 specification.
func getOpenAPISpec() map[string]interface{} {
	jsonContent := func(ref string) map[string]interface{} {
		return map[string]interface{}{
			"application/json": map[string]interface{}{
				"schema": map[string]interface{}{"$ref": ref},
			},
		}
	}
	errorResponses := map[string]interface{}{
		"400": map[string]interface{}{
			"description": "Validation failure",
			"content":     jsonContent("#/components/schemas/ValidationErrorResponse"),
		},
		"502": map[string]interface{}{
			"description": "Generation service failure",
			"content":     jsonContent("#/components/schemas/ErrorResponse"),
		},
	}

	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":       "Muse API",
			"description": "Form-driven creative content generation over templated prompts",
			"version":     "1.0.0",
		},
		"servers": []map[string]interface{}{
			{
				"url":         "http://localhost:8080",
				"description": "Local server",
			},
		},
		"paths": map[string]interface{}{
			"/categories": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "List categories",
					"description": "Retrieve the template categories in display order",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "Category names",
						},
					},
				},
			},
			"/templates": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "List templates",
					"description": "Retrieve templates, optionally filtered by category or fuzzy query",
					"parameters": []map[string]interface{}{
						{
							"name":        "category",
							"in":          "query",
							"description": "Filter templates by category",
							"required":    false,
							"schema": map[string]interface{}{
								"type": "string",
								"enum": []string{"Story", "Poem", "Character", "Worldbuilding"},
							},
						},
						{
							"name":        "q",
							"in":          "query",
							"description": "Fuzzy-search query over names and descriptions",
							"required":    false,
							"schema":      map[string]interface{}{"type": "string"},
						},
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "List of templates",
							"content":     jsonContent("#/components/schemas/TemplatesResponse"),
						},
					},
				},
			},
			"/templates/{id}": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Get template by ID",
					"description": "Retrieve one template with its parameter specs and validation rules",
					"parameters": []map[string]interface{}{
						{
							"name":     "id",
							"in":       "path",
							"required": true,
							"schema":   map[string]interface{}{"type": "string"},
						},
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "The template",
							"content":     jsonContent("#/components/schemas/Template"),
						},
						"404": map[string]interface{}{
							"description": "Unknown template id",
							"content":     jsonContent("#/components/schemas/ErrorResponse"),
						},
					},
				},
			},
			"/render": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":     "Render a prompt",
					"description": "Validate parameters and build the prompt without calling the generation service",
					"requestBody": map[string]interface{}{
						"required": true,
						"content":  jsonContent("#/components/schemas/GenerateRequest"),
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "The built prompt",
						},
						"400": errorResponses["400"],
					},
				},
			},
			"/generate": map[string]interface{}{
				"post": map[string]interface{}{
					"summary":     "Generate content",
					"description": "Validate, render, and run the generation pipeline",
					"requestBody": map[string]interface{}{
						"required": true,
						"content":  jsonContent("#/components/schemas/GenerateRequest"),
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "The generated content with any grounding sources",
						},
						"400": errorResponses["400"],
						"502": errorResponses["502"],
					},
				},
			},
		},
		"components": map[string]interface{}{
			"schemas": map[string]interface{}{
				"Template": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"id":          map[string]interface{}{"type": "string"},
						"name":        map[string]interface{}{"type": "string"},
						"category":    map[string]interface{}{"type": "string"},
						"description": map[string]interface{}{"type": "string"},
						"parameters": map[string]interface{}{
							"type":  "array",
							"items": map[string]interface{}{"type": "object"},
						},
					},
				},
				"TemplatesResponse": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"count": map[string]interface{}{"type": "integer"},
						"templates": map[string]interface{}{
							"type":  "array",
							"items": map[string]interface{}{"$ref": "#/components/schemas/Template"},
						},
					},
				},
				"GenerateRequest": map[string]interface{}{
					"type":     "object",
					"required": []string{"template"},
					"properties": map[string]interface{}{
						"template": map[string]interface{}{
							"type":        "string",
							"description": "Template id",
							"example":     "haiku-poem",
						},
						"params": map[string]interface{}{
							"type":        "object",
							"description": "Parameter values as strings; numbers are parsed per the template's specs",
							"additionalProperties": map[string]interface{}{
								"type": "string",
							},
							"example": map[string]string{"topic": "autumn rain"},
						},
					},
				},
				"ValidationErrorResponse": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"error": map[string]interface{}{"type": "string"},
						"field_errors": map[string]interface{}{
							"type": "object",
							"additionalProperties": map[string]interface{}{
								"type": "string",
							},
						},
					},
				},
				"ErrorResponse": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"error": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"code":    map[string]interface{}{"type": "string"},
								"message": map[string]interface{}{"type": "string"},
								"details": map[string]interface{}{"type": "string"},
							},
						},
					},
				},
			},
		},
	}
}
