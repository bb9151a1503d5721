package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Banking Ledger API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Banking Ledger API",
    "version": "1.0.0"
  },
  "paths": {
    "/accounts": {
      "post": {
        "summary": "Create account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "currency"],
                "properties": {
                  "accountNumber": {"type": "string"},
                  "amount": {"type": "number"},
                  "currency": {"type": "string", "enum": ["USD", "EUR", "GBP", "NGN"]}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Account created"},
          "400": {"description": "Validation or ledger error"}
        }
      },
      "get": {
        "summary": "List accounts",
        "responses": {
          "200": {"description": "All accounts"}
        }
      }
    },
    "/accounts/{accountNumber}": {
      "get": {
        "summary": "Get account",
        "parameters": [
          {"name": "accountNumber", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Account"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/accounts/{accountNumber}/transactions": {
      "get": {
        "summary": "List account transactions",
        "parameters": [
          {"name": "accountNumber", "in": "path", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Journal entries"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/accounts/deposit": {
      "post": {
        "summary": "Deposit funds",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "amount"],
                "properties": {
                  "accountNumber": {"type": "string"},
                  "amount": {"type": "number"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Deposit successful"},
          "400": {"description": "Ledger error"}
        }
      }
    },
    "/accounts/withdraw": {
      "post": {
        "summary": "Withdraw funds",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accountNumber", "amount"],
                "properties": {
                  "accountNumber": {"type": "string"},
                  "amount": {"type": "number"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Withdrawal successful"},
          "400": {"description": "Ledger error"}
        }
      }
    },
    "/accounts/transfer": {
      "post": {
        "summary": "Transfer funds between accounts",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["fromAccountNumber", "toAccountNumber", "amount"],
                "properties": {
                  "fromAccountNumber": {"type": "string"},
                  "toAccountNumber": {"type": "string"},
                  "amount": {"type": "number"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Transfer successful"},
          "400": {"description": "Ledger error"}
        }
      }
    }
  }
}`
