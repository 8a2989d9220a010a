package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"gemini-provider/pkg/response"
)

func TestResponses(t *testing.T) {
	// Setup Gin test mode
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		data := map[string]string{"foo": "bar"}
		response.OK(c, data)

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}

		if resp.ErrorCode != 0 || resp.Message != response.MessageSuccess {
			t.Errorf("unexpected envelope: %+v", resp)
		}
		dMap, ok := resp.Data.(map[string]interface{})
		if !ok || dMap["foo"] != "bar" {
			t.Errorf("unexpected data payload: %v", resp.Data)
		}
	})

	t.Run("Error helpers", func(t *testing.T) {
		tests := []struct {
			name   string
			send   func(c *gin.Context)
			status int
			msg    string
		}{
			{"BadRequest", func(c *gin.Context) { response.BadRequest(c, errors.New("bad")) }, http.StatusBadRequest, "bad"},
			{"NotFound", func(c *gin.Context) { response.NotFound(c, errors.New("gone")) }, http.StatusNotFound, "gone"},
			{"BadGateway", func(c *gin.Context) { response.BadGateway(c, errors.New("upstream")) }, http.StatusBadGateway, "upstream"},
			{"InternalError", func(c *gin.Context) { response.InternalError(c, errors.New("db crash")) }, http.StatusInternalServerError, response.DefaultErrorMessage},
			{"Unauthorized", response.Unauthorized, http.StatusUnauthorized, "Unauthorized"},
			{"Forbidden", response.Forbidden, http.StatusForbidden, "Forbidden"},
			{"TooManyRequests", response.TooManyRequests, http.StatusTooManyRequests, "Too many requests"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := httptest.NewRecorder()
				c, _ := gin.CreateTestContext(w)

				tt.send(c)

				if w.Code != tt.status {
					t.Errorf("expected %d, got %d", tt.status, w.Code)
				}
				var resp response.Resp
				json.Unmarshal(w.Body.Bytes(), &resp)
				if resp.ErrorCode != tt.status || resp.Message != tt.msg {
					t.Errorf("unexpected envelope: %+v", resp)
				}
				if !c.IsAborted() {
					t.Errorf("context should be aborted")
				}
			})
		}
	})

	t.Run("ServiceUnavailable with data", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.ServiceUnavailable(c, errors.New("not ready"), map[string]bool{"reachable": false})

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if w.Code != http.StatusServiceUnavailable || resp.Data == nil {
			t.Errorf("unexpected response %d %+v", w.Code, resp)
		}
	})
}
