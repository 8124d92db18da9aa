package apierror

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// writeAndDecode writes problem through gin and decodes the body both as a
// ProblemDetails and as a raw map, for checking omitted members.
func writeAndDecode(t *testing.T, problem *ProblemDetails) (*httptest.ResponseRecorder, ProblemDetails, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	WriteProblem(c, problem)

	var got ProblemDetails
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode raw: %v", err)
	}
	return w, got, raw
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		problem    *ProblemDetails
		wantType   string
		wantStatus int
		wantRetry  int // 0 means no Retry-After
		wantAction string
	}{
		{"validation", NewValidationError("r1", []FieldError{{Field: "stress_level", Code: "max"}}), TypeValidation, http.StatusBadRequest, 0, ""},
		{"check-in not found", NewNotFoundError("r2", "Check-in", "0190c0de-0000-7000-8000-000000000001"), TypeNotFound, http.StatusNotFound, 0, ""},
		{"duplicate check-in", NewDuplicateCheckinError("r3", "2026-03-20"), TypeDuplicateCheckin, http.StatusConflict, 0, "pick_another_date"},
		{"future date", NewFutureDateError("r4", "checkin_date"), TypeFutureDate, http.StatusBadRequest, 0, ""},
		{"bad query", NewBadRequestError("r5", "page_size must be a positive integer", "Invalid paging"), TypeBadRequest, http.StatusBadRequest, 0, ""},
		{"invalid alert id", NewInvalidUUIDError("r6", "id", "nope"), TypeInvalidUUID, http.StatusBadRequest, 0, ""},
		{"unauthenticated", NewUnauthorizedError("r7"), TypeUnauthorized, http.StatusUnauthorized, 0, "authenticate"},
		{"not an admin", NewForbiddenError("r8"), TypeForbidden, http.StatusForbidden, 0, ""},
		{"rate limited", NewRateLimitError("r9", 40), TypeRateLimit, http.StatusTooManyRequests, 40, ""},
		{"store not ready", NewServiceUnavailableError("r10", 5), TypeUnavailable, http.StatusServiceUnavailable, 5, ""},
		{"internal", NewInternalError("r11"), TypeInternal, http.StatusInternalServerError, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, got, _ := writeAndDecode(t, tt.problem)

			if w.Code != tt.wantStatus || got.Status != tt.wantStatus {
				t.Errorf("status = %d (body %d), want %d", w.Code, got.Status, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != ContentTypeProblemJSON {
				t.Errorf("Content-Type = %q", ct)
			}
			if got.Type != tt.wantType {
				t.Errorf("type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Title == "" {
				t.Error("title is empty")
			}
			if got.Action != tt.wantAction {
				t.Errorf("action = %q, want %q", got.Action, tt.wantAction)
			}

			header := w.Header().Get("Retry-After")
			switch {
			case tt.wantRetry == 0 && header != "":
				t.Errorf("unexpected Retry-After %q", header)
			case tt.wantRetry > 0 && header != strconv.Itoa(tt.wantRetry):
				t.Errorf("Retry-After = %q, want %d", header, tt.wantRetry)
			case tt.wantRetry > 0 && (got.RetryAfter == nil || *got.RetryAfter != tt.wantRetry):
				t.Errorf("retry_after = %v, want %d", got.RetryAfter, tt.wantRetry)
			}
		})
	}
}

func TestDuplicateCheckin_WireShape(t *testing.T) {
	_, got, _ := writeAndDecode(t, NewDuplicateCheckinError("req-dup", "2026-03-20"))

	if got.Detail != "A check-in already exists for 2026-03-20" {
		t.Errorf("detail = %q", got.Detail)
	}
	if got.RequestID != "req-dup" {
		t.Errorf("request_id = %q", got.RequestID)
	}
	if len(got.Errors) != 1 {
		t.Fatalf("errors = %+v, want one", got.Errors)
	}
	if fe := got.Errors[0]; fe.Field != "checkin_date" || fe.Code != "duplicate" {
		t.Errorf("field error = %+v", fe)
	}
}

func TestFutureDate_NamesField(t *testing.T) {
	got := NewFutureDateError("req-fut", "checkin_date")

	if len(got.Errors) != 1 || got.Errors[0].Field != "checkin_date" || got.Errors[0].Code != "future_date" {
		t.Errorf("errors = %+v", got.Errors)
	}
}

func TestNotFound_OmitsUnsetMembers(t *testing.T) {
	_, got, raw := writeAndDecode(t, NewNotFoundError("req-404", "Alert", "a-1"))

	if got.Detail != "Alert with ID 'a-1' was not found" {
		t.Errorf("detail = %q", got.Detail)
	}
	for _, member := range []string{"instance", "retry_after", "action", "errors"} {
		if _, ok := raw[member]; ok {
			t.Errorf("member %q present, want omitted", member)
		}
	}
	for _, member := range []string{"type", "title", "status", "detail", "request_id", "user_message"} {
		if _, ok := raw[member]; !ok {
			t.Errorf("member %q missing", member)
		}
	}
}

func TestValidation_KeepsEveryField(t *testing.T) {
	fields := []FieldError{
		{Field: "stress_level", Message: "must be at most 10", Code: "max"},
		{Field: "hours_worked", Message: "is required", Code: "required"},
		{Field: "sentiment", Message: "must be at most 50 characters", Code: "max"},
	}
	_, got, _ := writeAndDecode(t, NewValidationError("req-val", fields))

	if len(got.Errors) != len(fields) {
		t.Fatalf("errors = %+v", got.Errors)
	}
	for i, fe := range fields {
		if got.Errors[i] != fe {
			t.Errorf("errors[%d] = %+v, want %+v", i, got.Errors[i], fe)
		}
	}
}

func TestInternal_HidesCause(t *testing.T) {
	got := NewInternalError("req-500")

	if got.Detail != "An unexpected error occurred" {
		t.Errorf("detail = %q", got.Detail)
	}
	if got.UserMessage == "" {
		t.Error("user_message is empty")
	}
	if len(got.Errors) != 0 {
		t.Errorf("errors = %+v, want none", got.Errors)
	}
}

func TestProblemDetails_Error(t *testing.T) {
	if got := NewDuplicateCheckinError("", "2026-03-20").Error(); got != "A check-in already exists for 2026-03-20" {
		t.Errorf("Error() = %q", got)
	}
	bare := &ProblemDetails{Title: TitleFutureDate}
	if got := bare.Error(); got != TitleFutureDate {
		t.Errorf("Error() without detail = %q, want title", got)
	}
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name   string
		ctxID  string
		header string
		wantID string
	}{
		{name: "gin context wins", ctxID: "ctx-1", header: "hdr-1", wantID: "ctx-1"},
		{name: "header fallback", header: "hdr-2", wantID: "hdr-2"},
		{name: "neither"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/checkins/me", nil)
			if tt.header != "" {
				c.Request.Header.Set("X-Request-ID", tt.header)
			}
			if tt.ctxID != "" {
				c.Set("request_id", tt.ctxID)
			}
			if got := GetRequestID(c); got != tt.wantID {
				t.Errorf("GetRequestID = %q, want %q", got, tt.wantID)
			}
		})
	}
}
