package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"item_count": 3})

	if w.Code != http.StatusOK {
		t.Fatalf("want http 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["status_code"].(float64) != CodeOK || body["msg"] != "success" {
		t.Fatalf("unexpected envelope: %v", body)
	}
	data := body["data"].(map[string]interface{})
	if data["item_count"].(float64) != 3 {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestErrorAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	NotFound(c, "Product not found")

	if w.Code != http.StatusOK {
		t.Fatalf("business errors still return http 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["status_code"].(float64) != CodeNotFound {
		t.Fatalf("unexpected status_code: %v", body["status_code"])
	}
	data := body["data"].(map[string]interface{})
	if data["request_id"] != "req-1" {
		t.Fatalf("request id missing: %v", data)
	}
}

func TestErrorWithDataWrapsNonMap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-2")

	ErrorWithData(c, CodeBadRequest, "bad", []int{1, 2})

	data := decode(t, w)["data"].(map[string]interface{})
	if data["request_id"] != "req-2" || data["data"] == nil {
		t.Fatalf("non-map data should be wrapped: %v", data)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("db down")
	err := WrapError(CodeInternal, "Internal server error", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("wrapped error should unwrap to cause")
	}
	if err.Error() != "Internal server error: db down" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if WrapError(CodeBadRequest, "bad", nil).Error() != "bad" {
		t.Fatalf("nil cause should return message only")
	}
}
