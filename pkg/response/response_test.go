package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "tax-practice-management/pkg/errors"
	"tax-practice-management/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, map[string]string{"foo": "bar"})

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("expected ErrorCode 0, got %d", resp.ErrorCode)
		}
		dMap, ok := resp.Data.(map[string]interface{})
		if !ok || dMap["foo"] != "bar" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Unauthorized(c)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestErrorDetailByEnvironment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	defer response.SetEnvironment("production")

	render := func(err error) response.Resp {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.Error(c, err)

		var resp response.Resp
		if uerr := json.Unmarshal(w.Body.Bytes(), &resp); uerr != nil {
			t.Fatalf("unmarshal error: %v", uerr)
		}
		return resp
	}

	serverErr := pkgErrors.NewHTTPErrorWithDetails(500, response.DefaultErrorMessage, "db crash")

	t.Run("production hides 500 detail", func(t *testing.T) {
		response.SetEnvironment("production")
		resp := render(serverErr)
		if resp.Errors != nil {
			t.Errorf("expected no detail in production, got %v", resp.Errors)
		}
	})

	t.Run("development includes 500 detail", func(t *testing.T) {
		response.SetEnvironment("development")
		resp := render(serverErr)
		if resp.Errors != "db crash" {
			t.Errorf("expected detail 'db crash', got %v", resp.Errors)
		}
	})

	t.Run("400 detail survives production", func(t *testing.T) {
		response.SetEnvironment("production")
		resp := render(pkgErrors.NewHTTPErrorWithDetails(400, "bad input", map[string]string{"name": "required"}))
		if resp.Errors == nil {
			t.Error("expected field detail on a 400 response")
		}
	})
}
