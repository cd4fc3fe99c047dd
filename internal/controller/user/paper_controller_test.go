package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/itimock/internal/dto"
	"github.com/lshigami/itimock/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaperService struct {
	generateResp *dto.PaperIssueResponse
	cloneResp    *dto.PaperIssueResponse
	err          error
	lastGenerate dto.GeneratePaperRequest
	lastClone    dto.ClonePaperRequest
}

func (f *fakePaperService) GeneratePaper(_ context.Context, req dto.GeneratePaperRequest) (*dto.PaperIssueResponse, error) {
	f.lastGenerate = req
	return f.generateResp, f.err
}

func (f *fakePaperService) ClonePaper(_ context.Context, req dto.ClonePaperRequest) (*dto.PaperIssueResponse, error) {
	f.lastClone = req
	return f.cloneResp, f.err
}

func (f *fakePaperService) GetPaper(_ context.Context, id string) (*dto.PaperDetailDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.PaperDetailDTO{ID: id}, nil
}

func (f *fakePaperService) ListUserPapers(context.Context, string) ([]dto.PaperSummaryDTO, error) {
	return []dto.PaperSummaryDTO{}, f.err
}

type fakeSubmissionService struct {
	err error
}

func (f *fakeSubmissionService) SubmitPaper(_ context.Context, id string, req dto.SubmitPaperRequest) (*dto.PaperResultDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &dto.PaperResultDTO{ID: id, Score: len(req.Responses)}, nil
}

func newPaperRouter(ps service.PaperService, ss service.SubmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewPaperController(ps, ss).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGeneratePaperHandler(t *testing.T) {
	ps := &fakePaperService{generateResp: &dto.PaperIssueResponse{PaperID: "ELE202504281405XY", DocumentID: "doc-1"}}
	r := newPaperRouter(ps, &fakeSubmissionService{})

	w := doJSON(r, http.MethodPost, "/api/v1/papers/generate", map[string]interface{}{
		"tradeId": 1, "tradeName": "Electrician", "year": 1, "quesCount": 25, "userId": "u1", "userName": "Asha",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"paperId":"ELE202504281405XY","documentId":"doc-1"}`, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/v1/papers/generate", map[string]interface{}{"tradeId": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGeneratePaperHandlerCoercesQuesCount(t *testing.T) {
	ps := &fakePaperService{generateResp: &dto.PaperIssueResponse{PaperID: "ELE202504281405XY", DocumentID: "doc-1"}}
	r := newPaperRouter(ps, &fakeSubmissionService{})

	for _, raw := range []string{`10`, `"10"`, `10.0`, `" 10 "`} {
		body := `{"tradeId":1,"year":1,"quesCount":` + raw + `,"userId":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/papers/generate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code, "quesCount %s: %s", raw, w.Body.String())
		assert.Equal(t, dto.FlexInt(10), ps.lastGenerate.QuesCount, "quesCount %s", raw)
	}

	for _, raw := range []string{`"ten"`, `true`, `0`, `"0"`} {
		body := `{"tradeId":1,"year":1,"quesCount":` + raw + `,"userId":"u1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/papers/generate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "quesCount %s", raw)
	}
}

func TestGeneratePaperHandlerEmptyPool(t *testing.T) {
	r := newPaperRouter(&fakePaperService{err: service.ErrPoolEmpty}, &fakeSubmissionService{})

	w := doJSON(r, http.MethodPost, "/api/v1/papers/generate", map[string]interface{}{
		"tradeId": 1, "year": 1, "quesCount": 25, "userId": "u1",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, service.ErrPoolEmpty.Error(), body.Error)
}

func TestClonePaperHandler(t *testing.T) {
	ps := &fakePaperService{cloneResp: &dto.PaperIssueResponse{PaperID: "ELE202504281405XY", DocumentID: "doc-2"}}
	r := newPaperRouter(ps, &fakeSubmissionService{})
	body := map[string]string{"paperId": "ELE202504281405XY", "userId": "u2", "userName": "Ravi"}

	w := doJSON(r, http.MethodPost, "/api/v1/papers/clone", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "u2", ps.lastClone.UserID)

	ps.cloneResp = &dto.PaperIssueResponse{PaperID: "ELE202504281405XY", DocumentID: "doc-2", Message: "already generated", AlreadyExists: true}
	w = doJSON(r, http.MethodPost, "/api/v1/papers/clone", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"paperId":"ELE202504281405XY","documentId":"doc-2","message":"already generated"}`, w.Body.String())

	ps.err = service.ErrDuplicateAttempt
	w = doJSON(r, http.MethodPost, "/api/v1/papers/clone", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	ps.err = service.ErrPaperNotFound
	w = doJSON(r, http.MethodPost, "/api/v1/papers/clone", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAndSubmitPaperHandlers(t *testing.T) {
	ss := &fakeSubmissionService{}
	r := newPaperRouter(&fakePaperService{}, ss)

	w := doJSON(r, http.MethodGet, "/api/v1/papers/doc-9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"doc-9"`)

	w = doJSON(r, http.MethodGet, "/api/v1/users/u1/papers", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	submission := map[string]interface{}{
		"userId":    "u1",
		"responses": []map[string]interface{}{{"question_id": 1, "response": "A"}, {"question_id": 2, "response": "C"}},
	}
	w = doJSON(r, http.MethodPost, "/api/v1/papers/doc-9/submit", submission)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"score":2`)

	bad := map[string]interface{}{
		"userId":    "u1",
		"responses": []map[string]interface{}{{"question_id": 1, "response": "Z"}},
	}
	w = doJSON(r, http.MethodPost, "/api/v1/papers/doc-9/submit", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	ss.err = service.ErrNotPaperOwner
	w = doJSON(r, http.MethodPost, "/api/v1/papers/doc-9/submit", submission)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
