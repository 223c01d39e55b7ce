package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "reconstruction/internal/errors"
	"reconstruction/internal/validator"
)

const (
	testID      = "01941e2a-7b6c-7d3e-9f10-2a3b4c5d6e7f"
	otherTestID = "01941e2a-7b6c-7d3e-9f10-2a3b4c5d6e80"
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// --- tests ---

func TestRespondWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "app error keeps status and message",
			err:        apperrors.ErrCategoryHasArticles,
			wantStatus: http.StatusConflict,
			wantCode:   "CATEGORY_HAS_ARTICLES",
			wantMsg:    "Category still has articles",
		},
		{
			name:       "wrapped internal error is not leaked",
			err:        apperrors.Wrap(apperrors.ErrInternalServer, errors.New("pq: connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "An internal error occurred",
		},
		{
			name:       "plain error becomes internal error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "An internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) { respondWithError(c, tt.err) })

			rec := doRequest(r, "GET", "/", "")

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			result := parseJSON(t, rec)
			assertErrorCode(t, result, tt.wantCode)
			if msg := result["error"].(map[string]interface{})["message"]; msg != tt.wantMsg {
				t.Errorf("expected message %q, got %v", tt.wantMsg, msg)
			}
		})
	}
}

func TestParseTransactionFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "empty", query: ""},
		{name: "all fields", query: "?article_id=" + testID + "&category_id=" + otherTestID + "&from=2025-01-01&to=2025-01-31"},
		{name: "bad article id", query: "?article_id=abc", wantErr: true},
		{name: "bad category id", query: "?category_id=42", wantErr: true},
		{name: "bad from", query: "?from=01/01/2025", wantErr: true},
		{name: "bad to", query: "?to=2025-13-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/", func(c *gin.Context) {
				filter, err := parseTransactionFilter(c)
				if err != nil {
					respondWithError(c, err)
					return
				}
				c.JSON(http.StatusOK, gin.H{
					"article":  filter.ArticleID != nil,
					"category": filter.CategoryID != nil,
					"from":     filter.From != nil,
					"to":       filter.To != nil,
				})
			})

			rec := doRequest(r, "GET", "/"+tt.query, "")

			if tt.wantErr {
				if rec.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", rec.Code)
				}
				assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
				return
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			result := parseJSON(t, rec)
			set := strings.Contains(tt.query, "article_id")
			if result["article"] != set || result["category"] != set || result["from"] != set || result["to"] != set {
				t.Errorf("unexpected filter presence: %v", result)
			}
		})
	}
}
