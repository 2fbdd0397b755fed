package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/gateway"
	"aiktp_sync/internal/generation"
	"aiktp_sync/internal/httpapi/mocks"
	"aiktp_sync/internal/metrics"
	"aiktp_sync/internal/service"
	"aiktp_sync/internal/storage/redis"
)

const (
	siteToken     = "Abc123xyz9"
	sessionSecret = "test-session-secret"
	siteURL       = "https://blog.example"
)

type ServerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	gw         *mocks.MockGateway
	generator  *mocks.MockGenerator
	jobs       *mocks.MockBulkJobs
	tokens     *mocks.MockTokens
	connector  *mocks.MockConnector
	apiKeys    *mocks.MockAPIKeys
	principals *mocks.MockPrincipals

	redis   *miniredis.Miniredis
	client  *goredis.Client
	metrics *metrics.Metrics
	admin   *domain.Principal
	server  *Server
}

func (s *ServerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())

	s.gw = mocks.NewMockGateway(s.ctrl)
	s.generator = mocks.NewMockGenerator(s.ctrl)
	s.jobs = mocks.NewMockBulkJobs(s.ctrl)
	s.tokens = mocks.NewMockTokens(s.ctrl)
	s.connector = mocks.NewMockConnector(s.ctrl)
	s.apiKeys = mocks.NewMockAPIKeys(s.ctrl)
	s.principals = mocks.NewMockPrincipals(s.ctrl)

	s.redis = miniredis.RunT(s.T())
	s.client = goredis.NewClient(&goredis.Options{Addr: s.redis.Addr()})
	s.metrics = metrics.New()
	s.admin = &domain.Principal{ID: 1, Login: "admin", Role: domain.RoleAdministrator}

	s.server = NewServer(Deps{
		Gateway:     s.gw,
		Generator:   s.generator,
		Jobs:        s.jobs,
		Tokens:      s.tokens,
		Connector:   s.connector,
		APIKeys:     s.apiKeys,
		Principals:  s.principals,
		Idempotency: redis.NewIdempotencyCache(redis.NewStore(s.client, "aiktp"), time.Hour),
		Metrics:     s.metrics,
	}, zap.NewNop(), Config{
		SiteURL:         siteURL,
		SessionSecret:   sessionSecret,
		PublicPerMinute: 6000,
		PublicBurst:     100,
	})
}

func (s *ServerTestSuite) TearDownTest() {
	s.server.Close()
	_ = s.client.Close()
	s.ctrl.Finish()
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		req = httptest.NewRequest(method, path, strings.NewReader(string(b)))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, http.NoBody)
	}
	req.RemoteAddr = "10.0.0.1:5555"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.server.Router().ServeHTTP(w, req)
	return w
}

func (s *ServerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (s *ServerTestSuite) session() map[string]string {
	tok, err := SignSession(sessionSecret, s.admin.ID, time.Hour, time.Now())
	s.Require().NoError(err)
	s.principals.EXPECT().GetByID(gomock.Any(), s.admin.ID).Return(s.admin, nil)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func (s *ServerTestSuite) call(op string) *gateway.Call {
	return &gateway.Call{Op: op, State: gateway.StateCapabilityChecked, Principal: s.admin}
}

func (s *ServerTestSuite) TestCreatePost() {
	call := s.call("createpost")
	s.gw.EXPECT().Authorize(gomock.Any(), "createpost", siteToken, domain.CapEditPosts, domain.CapPublishPosts).
		Return(call, nil)
	s.gw.EXPECT().CreateRecord(gomock.Any(), call, gateway.CreateInput{
		Title:       "Hello World",
		Content:     "<p>Hi</p>",
		Tags:        "go, sync",
		CategoryIDs: "4",
	}).Return(&gateway.CreateResult{
		RecordID:   12,
		RecordType: domain.RecordTypePost,
		Permalink:  siteURL + "/hello-world/",
	}, nil)

	w := s.do(http.MethodPost, SyncBasePath+"/createpost", map[string]any{
		"wpToken": siteToken,
		"title":   "Hello World",
		"content": "<p>Hi</p>",
		"tags":    "go, sync",
		"catId":   4,
	}, nil)

	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("success", body["status"])
	s.Equal(float64(12), body["postId"])
	s.Equal(siteURL+"/hello-world/", body["permalink"])
	s.Equal("", body["thumbnail"])
}

func (s *ServerTestSuite) TestCreatePost_TokenKeyFromQuery() {
	s.gw.EXPECT().Authorize(gomock.Any(), "createpost", siteToken, gomock.Any(), gomock.Any()).
		Return(nil, &gateway.AuthError{Status: http.StatusForbidden, Message: gateway.MsgNoAdministrator, Err: domain.ErrNoAdministrator})

	w := s.do(http.MethodPost, SyncBasePath+"/createpost?tokenKey="+siteToken, map[string]any{"title": "x"}, nil)

	s.Equal(http.StatusForbidden, w.Code)
	body := s.decode(w)
	s.Equal("rest_forbidden", body["code"])
	s.Equal(gateway.MsgNoAdministrator, body["message"])
	s.Equal(map[string]any{"status": float64(403)}, body["data"])
}

func (s *ServerTestSuite) TestCreatePost_FormBody() {
	call := s.call("createpost")
	s.gw.EXPECT().Authorize(gomock.Any(), "createpost", siteToken, gomock.Any(), gomock.Any()).Return(call, nil)
	s.gw.EXPECT().CreateRecord(gomock.Any(), call, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *gateway.Call, in gateway.CreateInput) (*gateway.CreateResult, error) {
			s.Equal("Form Title", in.Title)
			s.Equal("draft", in.Status)
			return &gateway.CreateResult{RecordID: 3, RecordType: domain.RecordTypePost}, nil
		})

	form := url.Values{"wpToken": {siteToken}, "title": {"Form Title"}, "post_status": {"draft"}}
	req := httptest.NewRequest(http.MethodPost, SyncBasePath+"/createpost", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.server.Router().ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestCreatePost_IdempotentReplay() {
	call := s.call("createpost")
	s.gw.EXPECT().Authorize(gomock.Any(), "createpost", siteToken, gomock.Any(), gomock.Any()).Return(call, nil).Times(1)
	s.gw.EXPECT().CreateRecord(gomock.Any(), call, gomock.Any()).
		Return(&gateway.CreateResult{RecordID: 21, RecordType: domain.RecordTypePost, Permalink: siteURL + "/a/"}, nil).
		Times(1)

	headers := map[string]string{idempotencyHeader: "req-1"}
	payload := map[string]any{"wpToken": siteToken, "title": "A"}

	first := s.do(http.MethodPost, SyncBasePath+"/createpost", payload, headers)
	second := s.do(http.MethodPost, SyncBasePath+"/createpost", payload, headers)

	s.Equal(http.StatusOK, first.Code)
	s.Equal(http.StatusOK, second.Code)
	s.JSONEq(first.Body.String(), second.Body.String())
	s.Equal("true", second.Header().Get(replayedHeader))
	s.Empty(first.Header().Get(replayedHeader))
}

func (s *ServerTestSuite) TestCreatePost_ConcurrentRetryRunsOnce() {
	call := s.call("createpost")
	entered := make(chan struct{})
	unblock := make(chan struct{})
	s.gw.EXPECT().Authorize(gomock.Any(), "createpost", siteToken, gomock.Any(), gomock.Any()).Return(call, nil).Times(1)
	s.gw.EXPECT().CreateRecord(gomock.Any(), call, gomock.Any()).
		DoAndReturn(func(context.Context, *gateway.Call, gateway.CreateInput) (*gateway.CreateResult, error) {
			close(entered)
			<-unblock
			return &gateway.CreateResult{RecordID: 30, RecordType: domain.RecordTypePost, Permalink: siteURL + "/a/"}, nil
		}).
		Times(1)

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, SyncBasePath+"/createpost",
			strings.NewReader(`{"wpToken":"`+siteToken+`","title":"A"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(idempotencyHeader, "req-concurrent")
		req.RemoteAddr = "10.0.0.1:5555"
		w := httptest.NewRecorder()
		s.server.Router().ServeHTTP(w, req)
		return w
	}

	firstDone := make(chan *httptest.ResponseRecorder, 1)
	go func() { firstDone <- send() }()
	<-entered

	second := send()
	close(unblock)
	first := <-firstDone

	s.Equal(http.StatusOK, first.Code)
	s.Equal(http.StatusConflict, second.Code)
	s.Equal("error", s.decode(second)["status"])

	third := send()
	s.Equal(http.StatusOK, third.Code)
	s.Equal("true", third.Header().Get(replayedHeader))
	s.JSONEq(first.Body.String(), third.Body.String())
}

func (s *ServerTestSuite) TestCreatePost_FailedAttemptReleasesKey() {
	call := s.call("createpost")
	s.gw.EXPECT().Authorize(gomock.Any(), "createpost", siteToken, gomock.Any(), gomock.Any()).Return(call, nil).Times(2)
	gomock.InOrder(
		s.gw.EXPECT().CreateRecord(gomock.Any(), call, gomock.Any()).
			Return(nil, fmt.Errorf("insert record: %w", domain.ErrInvalidInput)),
		s.gw.EXPECT().CreateRecord(gomock.Any(), call, gomock.Any()).
			Return(&gateway.CreateResult{RecordID: 31, RecordType: domain.RecordTypePost}, nil),
	)

	headers := map[string]string{idempotencyHeader: "req-retry"}
	payload := map[string]any{"wpToken": siteToken, "title": "A"}

	failed := s.do(http.MethodPost, SyncBasePath+"/createpost", payload, headers)
	retried := s.do(http.MethodPost, SyncBasePath+"/createpost", payload, headers)

	s.NotEqual(http.StatusOK, failed.Code)
	s.Equal(http.StatusOK, retried.Code)
	s.Empty(retried.Header().Get(replayedHeader))
}

func (s *ServerTestSuite) TestCreatePost_IdempotencyScopedByToken() {
	s.gw.EXPECT().Authorize(gomock.Any(), "createpost", "other-token", gomock.Any(), gomock.Any()).
		Return(nil, &gateway.AuthError{Status: http.StatusForbidden, Message: gateway.MsgInvalidToken, Err: domain.ErrUnauthorized})
	call := s.call("createpost")
	s.gw.EXPECT().Authorize(gomock.Any(), "createpost", siteToken, gomock.Any(), gomock.Any()).Return(call, nil)
	s.gw.EXPECT().CreateRecord(gomock.Any(), call, gomock.Any()).
		Return(&gateway.CreateResult{RecordID: 5, RecordType: domain.RecordTypePost}, nil)

	headers := map[string]string{idempotencyHeader: "req-2"}
	ok := s.do(http.MethodPost, SyncBasePath+"/createpost", map[string]any{"wpToken": siteToken}, headers)
	denied := s.do(http.MethodPost, SyncBasePath+"/createpost", map[string]any{"wpToken": "other-token"}, headers)

	s.Equal(http.StatusOK, ok.Code)
	s.Equal(http.StatusForbidden, denied.Code)
}

func (s *ServerTestSuite) TestUploadImage() {
	call := s.call("doUploadImageToWP")
	s.gw.EXPECT().Authorize(gomock.Any(), "doUploadImageToWP", siteToken, domain.CapUploadFiles).Return(call, nil)
	s.gw.EXPECT().UploadMedia(gomock.Any(), call, int64(12), "https://cdn.example/a.jpg").
		Return(&gateway.UploadResult{RecordID: 12, ImageURL: "https://cdn.example/a.jpg", BaseURL: siteURL + "/uploads/hello.jpg"}, nil)

	w := s.do(http.MethodPost, SyncBasePath+"/doUploadImageToWP", map[string]any{
		"wpToken": siteToken,
		"postId":  "12",
		"imgURL":  "https://cdn.example/a.jpg",
	}, nil)

	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal("success", body["status"])
	s.Equal(siteURL+"/uploads/hello.jpg", body["wp_baseURL"])
	s.Equal(siteURL+"/uploads/hello.jpg", body["baseUrl"])
}

func (s *ServerTestSuite) TestUploadImage_DownloadFailure() {
	call := s.call("doUploadImageToWP")
	s.gw.EXPECT().Authorize(gomock.Any(), gomock.Any(), siteToken, gomock.Any()).Return(call, nil)
	s.gw.EXPECT().UploadMedia(gomock.Any(), call, int64(12), "https://cdn.example/gone.jpg").
		Return(nil, domain.ErrNetwork)

	w := s.do(http.MethodPost, SyncBasePath+"/doUploadImageToWP", map[string]any{
		"wpToken": siteToken,
		"postId":  12,
		"imgURL":  "https://cdn.example/gone.jpg",
	}, nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(map[string]any{"status": "error", "imgURL": "https://cdn.example/gone.jpg"}, s.decode(w))
}

func (s *ServerTestSuite) TestGetPostByURL() {
	created := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	s.gw.EXPECT().GetByURL(gomock.Any(), siteURL+"/hello-world/").Return(&gateway.RecordView{
		Record:    &domain.Record{ID: 12, Title: "Hello", Slug: "hello-world", Body: "<p>x</p>", AuthorID: 1, CreatedAt: created, ModifiedAt: created},
		Permalink: siteURL + "/hello-world/",
	}, nil)

	w := s.do(http.MethodPost, SyncBasePath+"/getPostByURL", map[string]any{"url": siteURL + "/hello-world/"}, nil)

	s.Equal(http.StatusOK, w.Code)
	data := s.decode(w)["data"].(map[string]any)
	s.Equal("Hello", data["title"])
	s.Equal("2026-03-04 05:06:07", data["post_date_gmt"])
	s.Equal(false, data["thumbnail"])
	s.Equal(siteURL+"/hello-world/", data["link"])
}

func (s *ServerTestSuite) TestGetPostByURL_NotPublic() {
	s.gw.EXPECT().GetByURL(gomock.Any(), "https://blog.example/draft/").Return(nil, domain.ErrNotFound)

	w := s.do(http.MethodPost, SyncBasePath+"/getPostByURL", map[string]any{"url": "https://blog.example/draft/"}, nil)

	s.Equal(map[string]any{"status": "error", "message": domain.NotPublicMessage}, s.decode(w))
}

func (s *ServerTestSuite) TestGetPostByID() {
	call := s.call("getPostById")
	s.gw.EXPECT().Authorize(gomock.Any(), "getPostById", siteToken).Return(call, nil)
	s.gw.EXPECT().GetByID(gomock.Any(), call, int64(12)).Return(&gateway.RecordView{
		Record:    &domain.Record{ID: 12, Title: "Draft", Status: domain.StatusDraft},
		Permalink: siteURL + "/?p=12",
		Tags:      []string{"go"},
		Images:    []string{"https://cdn.example/a.jpg"},
	}, nil)

	w := s.do(http.MethodPost, SyncBasePath+"/getPostById", map[string]any{"tokenKey": siteToken, "postId": 12}, nil)

	data := s.decode(w)["data"].(map[string]any)
	s.Equal("draft", data["post_status"])
	s.Equal([]any{"go"}, data["tags"])
	s.Equal([]any{"https://cdn.example/a.jpg"}, data["images"])
}

func (s *ServerTestSuite) TestGetPostByID_Missing() {
	call := s.call("getPostById")
	s.gw.EXPECT().Authorize(gomock.Any(), "getPostById", siteToken).Return(call, nil)
	s.gw.EXPECT().GetByID(gomock.Any(), call, int64(99)).Return(nil, domain.ErrNotFound)

	w := s.do(http.MethodPost, SyncBasePath+"/getPostById", map[string]any{"wpToken": siteToken, "postId": 99}, nil)

	s.Equal(map[string]any{"status": "error", "message": "Post not found"}, s.decode(w))
}

func (s *ServerTestSuite) TestGetAllPosts() {
	s.gw.EXPECT().ListAll(gomock.Any(), 2, 10).Return([]gateway.Listing{{
		RecordSummary: domain.RecordSummary{ID: 4, Title: "Four", Slug: "four"},
		Permalink:     siteURL + "/four/",
	}}, nil)

	w := s.do(http.MethodPost, SyncBasePath+"/getAllPosts", map[string]any{"page": 2, "numberposts": 10}, nil)

	body := s.decode(w)
	s.Equal("success", body["status"])
	item := body["data"].([]any)[0].(map[string]any)
	s.Equal("Four", item["postTitle"])
	s.Equal(siteURL+"/four/", item["link"])
}

func (s *ServerTestSuite) TestGetAllPosts_EmptyPage() {
	s.gw.EXPECT().ListAll(gomock.Any(), 1, 50).Return(nil, nil)

	w := s.do(http.MethodPost, SyncBasePath+"/getAllPosts", map[string]any{}, nil)

	s.Equal(map[string]any{"status": "error"}, s.decode(w))
}

func (s *ServerTestSuite) TestGetPostByTags_DefaultLimit() {
	s.gw.EXPECT().ListByTag(gomock.Any(), "coffee", 5).Return(nil, nil)

	w := s.do(http.MethodPost, SyncBasePath+"/getPostByTags", map[string]any{"query": "coffee"}, nil)

	s.Equal(map[string]any{"status": "success", "posts": []any{}}, s.decode(w))
}

func (s *ServerTestSuite) TestGetCategories() {
	s.gw.EXPECT().ListCategories(gomock.Any()).Return([]gateway.Category{
		{ID: 1, Name: "Uncategorized"},
		{ID: 7, Name: "Mugs (Woo)"},
	}, nil)

	w := s.do(http.MethodGet, SyncBasePath+"/getCategories", nil, nil)

	body := s.decode(w)
	s.Equal([]any{
		map[string]any{"catId": float64(1), "catName": "Uncategorized"},
		map[string]any{"catId": float64(7), "catName": "Mugs (Woo)"},
	}, body["cats"])
}

func (s *ServerTestSuite) TestCheckToken() {
	s.gw.EXPECT().CheckToken(gomock.Any(), siteToken).Return(true)
	s.gw.EXPECT().CheckToken(gomock.Any(), "nope").Return(false)

	good := s.do(http.MethodGet, SyncBasePath+"/checkToken?tokenKey="+siteToken, nil, nil)
	bad := s.do(http.MethodGet, SyncBasePath+"/checkToken?tokenKey=nope", nil, nil)

	s.Equal(map[string]any{"status": "success", "tokenKey": siteToken}, s.decode(good))
	s.Equal(map[string]any{"status": "error", "tokenKey": "nope", "msg": "Invalid token"}, s.decode(bad))
}

func (s *ServerTestSuite) TestGetToken_Anonymous() {
	s.gw.EXPECT().GetToken(gomock.Any(), nil).
		Return("", &gateway.AuthError{Status: http.StatusUnauthorized, Message: gateway.MsgNotLoggedIn, Err: domain.ErrUnauthorized})

	w := s.do(http.MethodGet, SyncBasePath+"/getToken", nil, nil)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(gateway.MsgNotLoggedIn, s.decode(w)["message"])
}

func (s *ServerTestSuite) TestGetToken_Admin() {
	headers := s.session()
	s.gw.EXPECT().GetToken(gomock.Any(), s.admin).Return(siteToken, nil)

	w := s.do(http.MethodGet, SyncBasePath+"/getToken", nil, headers)

	s.Equal(http.StatusOK, w.Code)
	s.Equal(map[string]any{"success": true, "token": siteToken, "message": "Token retrieved successfully"}, s.decode(w))
}

func (s *ServerTestSuite) TestAdmin_RequiresSession() {
	w := s.do(http.MethodPost, AdminBasePath+"/generate", map[string]any{"post_id": 1}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	expired, err := SignSession(sessionSecret, 1, time.Minute, time.Now().Add(-time.Hour))
	s.Require().NoError(err)
	w = s.do(http.MethodPost, AdminBasePath+"/generate", map[string]any{"post_id": 1},
		map[string]string{"Authorization": "Bearer " + expired})
	s.Equal(http.StatusUnauthorized, w.Code)

	forged, err := SignSession("other-secret", 1, time.Hour, time.Now())
	s.Require().NoError(err)
	w = s.do(http.MethodPost, AdminBasePath+"/generate", map[string]any{"post_id": 1},
		map[string]string{"Authorization": "Bearer " + forged})
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *ServerTestSuite) TestRegenerateToken() {
	headers := s.session()
	s.tokens.EXPECT().Regenerate(gomock.Any(), s.admin).Return("NewToken01", nil)

	w := s.do(http.MethodPost, AdminBasePath+"/token/regenerate", nil, headers)

	s.Equal(map[string]any{
		"success": true,
		"data":    map[string]any{"token": "NewToken01", "message": "Token regenerated successfully"},
	}, s.decode(w))
}

func (s *ServerTestSuite) TestRegenerateToken_NotAdmin() {
	editor := &domain.Principal{ID: 5, Role: "editor", Capabilities: []domain.Capability{domain.CapEditPosts}}
	tok, err := SignSession(sessionSecret, editor.ID, time.Hour, time.Now())
	s.Require().NoError(err)
	s.principals.EXPECT().GetByID(gomock.Any(), editor.ID).Return(editor, nil)

	w := s.do(http.MethodPost, AdminBasePath+"/token/regenerate", nil, map[string]string{"Authorization": "Bearer " + tok})

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *ServerTestSuite) TestConnect() {
	headers := s.session()
	s.tokens.EXPECT().Get(gomock.Any()).Return(siteToken, nil)
	s.connector.EXPECT().Connect(gomock.Any(), "key-1", siteURL, siteToken).
		Return(&generation.ConnectResult{SiteID: "site-9"}, nil)
	s.apiKeys.EXPECT().SetAPIKey(gomock.Any(), "key-1").Return(nil)

	w := s.do(http.MethodPost, AdminBasePath+"/connect", map[string]any{"api_key": "key-1"}, headers)

	data := s.decode(w)["data"].(map[string]any)
	s.Equal("site-9", data["siteId"])
	s.Equal("Successfully connected to AIKTP", data["message"])
}

func (s *ServerTestSuite) TestConnect_Rejected() {
	headers := s.session()
	s.tokens.EXPECT().Get(gomock.Any()).Return(siteToken, nil)
	s.connector.EXPECT().Connect(gomock.Any(), "bad", siteURL, siteToken).
		Return(nil, domain.NewAPIError("Invalid API key"))

	w := s.do(http.MethodPost, AdminBasePath+"/connect", map[string]any{"api_key": "bad"}, headers)

	s.Equal(map[string]any{"success": false, "data": "Invalid API key"}, s.decode(w))
}

func (s *ServerTestSuite) TestGenerate_NotEnoughCredits() {
	headers := s.session()
	s.generator.EXPECT().Generate(gomock.Any(), s.admin, int64(42), domain.OperationShortDescription).
		Return(nil, &service.GenerateError{
			Message: service.MsgNotEnoughCredits,
			Credits: true,
			Err:     domain.NewAPIError(domain.CreditsExhaustedCode),
		})

	w := s.do(http.MethodPost, AdminBasePath+"/generate", map[string]any{"post_id": 42, "type": "short_description"}, headers)

	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal(false, body["success"])
	data := body["data"].(map[string]any)
	s.Equal(true, data["not_enough_credits"])
	s.Equal(service.MsgNotEnoughCredits, data["message"])
}

func (s *ServerTestSuite) TestGenerate_Success() {
	headers := s.session()
	s.generator.EXPECT().Generate(gomock.Any(), s.admin, int64(42), domain.OperationDescription).
		Return(&service.Result{RecordID: 42, Operation: domain.OperationDescription, Content: "<p>new</p>"}, nil)

	w := s.do(http.MethodPost, AdminBasePath+"/generate", map[string]any{"post_id": 42, "type": "bogus"}, headers)

	s.Equal(map[string]any{
		"success": true,
		"data": map[string]any{
			"message": service.MsgGenerated,
			"content": "<p>new</p>",
			"type":    "description",
		},
	}, s.decode(w))
}

func (s *ServerTestSuite) TestEnqueueBulk_NoAPIKey() {
	headers := s.session()
	s.apiKeys.EXPECT().APIKey(gomock.Any()).Return("", nil)

	w := s.do(http.MethodPost, AdminBasePath+"/bulk", map[string]any{"post_ids": []int64{1, 2}}, headers)

	s.Equal(http.StatusPreconditionFailed, w.Code)
}

func (s *ServerTestSuite) TestEnqueueAndConsumeBulk() {
	headers := s.session()
	s.apiKeys.EXPECT().APIKey(gomock.Any()).Return("key", nil)
	s.jobs.EXPECT().Enqueue(gomock.Any(), []int64{3, 4}, domain.OperationShortDescription).Return(nil)

	w := s.do(http.MethodPost, AdminBasePath+"/bulk", map[string]any{"post_ids": "3,4", "type": "short_description"}, headers)
	s.Equal(float64(2), s.decode(w)["data"].(map[string]any)["product_count"])

	headers = s.session()
	s.jobs.EXPECT().Consume(gomock.Any()).Return([]int64{3, 4}, nil)
	s.jobs.EXPECT().Operation(gomock.Any()).Return(domain.OperationShortDescription, nil)

	w = s.do(http.MethodPost, AdminBasePath+"/bulk/queue", nil, headers)
	s.Equal(map[string]any{
		"success": true,
		"data":    map[string]any{"product_ids": []any{float64(3), float64(4)}, "type": "short_description"},
	}, s.decode(w))
}

func (s *ServerTestSuite) TestConsumeBulk_Empty() {
	headers := s.session()
	s.jobs.EXPECT().Consume(gomock.Any()).Return(nil, domain.ErrNotFound)

	w := s.do(http.MethodPost, AdminBasePath+"/bulk/queue", nil, headers)

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("No products found", s.decode(w)["data"].(map[string]any)["message"])
}

func (s *ServerTestSuite) TestGenerateBulkItem_UsesQueuedOperation() {
	headers := s.session()
	s.jobs.EXPECT().Operation(gomock.Any()).Return(domain.OperationShortDescription, nil)
	s.generator.EXPECT().Generate(gomock.Any(), s.admin, int64(8), domain.OperationShortDescription).
		Return(&service.Result{RecordID: 8, Title: "Mug", Operation: domain.OperationShortDescription, Content: "short"}, nil)

	w := s.do(http.MethodPost, AdminBasePath+"/bulk/generate", map[string]any{"post_id": 8}, headers)

	data := s.decode(w)["data"].(map[string]any)
	s.Equal("Short description generated successfully!", data["message"])
	s.Equal("Mug", data["product_name"])
}

func (s *ServerTestSuite) TestGenerateBulkItem_ProductNotFound() {
	headers := s.session()
	s.generator.EXPECT().Generate(gomock.Any(), s.admin, int64(77), domain.OperationDescription).
		Return(nil, &service.GenerateError{Message: service.MsgProductNotFound, Err: domain.ErrNotFound})

	w := s.do(http.MethodPost, AdminBasePath+"/bulk/generate", map[string]any{"post_id": 77, "type": "description"}, headers)

	s.Equal(http.StatusNotFound, w.Code)
	data := s.decode(w)["data"].(map[string]any)
	s.Equal("Product not found: 77", data["message"])
	s.Equal(float64(77), data["product_id"])
}

func (s *ServerTestSuite) TestHealthAndMetrics() {
	w := s.do(http.MethodGet, "/health", nil, nil)
	s.Equal(http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/metrics", nil, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `aiktp_http_requests_total{code="200",route="/health"} 1`)
}

func TestRateLimiter_BlocksOverBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	done := make(chan struct{})
	defer close(done)

	r := gin.New()
	r.Use(RateLimiter(1, 2, done))
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", http.NoBody)
		req.RemoteAddr = "1.2.3.4:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected codes %v", codes)
	}
}
