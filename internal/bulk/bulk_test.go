package bulk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/storage/redis"
)

type recordingReporter struct {
	progress []int
	done     *domain.BulkJob
	redirect time.Duration
}

func (r *recordingReporter) Progress(job *domain.BulkJob) {
	r.progress = append(r.progress, job.Cursor)
}

func (r *recordingReporter) Done(job *domain.BulkJob, redirectAfter time.Duration) {
	r.done = job
	r.redirect = redirectAfter
}

type BulkTestSuite struct {
	suite.Suite
	ctx    context.Context
	server *miniredis.Miniredis
	client *goredis.Client
	jobs   *Jobs
}

func (s *BulkTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.server = miniredis.RunT(s.T())
	s.client = goredis.NewClient(&goredis.Options{Addr: s.server.Addr()})
	s.jobs = NewJobs(redis.NewStore(s.client, "aiktp"), 2*time.Minute)
}

func (s *BulkTestSuite) TearDownTest() {
	_ = s.client.Close()
}

func TestBulkTestSuite(t *testing.T) {
	suite.Run(t, new(BulkTestSuite))
}

func (s *BulkTestSuite) newRunner(p Processor, rep Reporter) *Runner {
	r := NewRunner(p, rep, zap.NewNop(), RunnerConfig{ItemDelay: DefaultItemDelay})
	r.sleep = func(context.Context, time.Duration) error { return nil }
	return r
}

func (s *BulkTestSuite) TestJobs_ConsumeOnce() {
	s.Require().NoError(s.jobs.Enqueue(s.ctx, []int64{4, 8, 15}, domain.OperationShortDescription))

	ids, err := s.jobs.Consume(s.ctx)
	s.Require().NoError(err)
	s.Equal([]int64{4, 8, 15}, ids)

	_, err = s.jobs.Consume(s.ctx)
	s.ErrorIs(err, domain.ErrNotFound)

	op, err := s.jobs.Operation(s.ctx)
	s.Require().NoError(err)
	s.Equal(domain.OperationShortDescription, op)
}

func (s *BulkTestSuite) TestJobs_ExpireWithConfiguredTTL() {
	s.Require().NoError(s.jobs.Enqueue(s.ctx, []int64{1}, domain.OperationDescription))
	s.Equal(2*time.Minute, s.server.TTL("aiktp:bulk:products"))

	s.server.FastForward(3 * time.Minute)

	_, err := s.jobs.Consume(s.ctx)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *BulkTestSuite) TestJobs_OperationDefaultsToDescription() {
	op, err := s.jobs.Operation(s.ctx)
	s.Require().NoError(err)
	s.Equal(domain.OperationDescription, op)
}

func (s *BulkTestSuite) TestJobs_RejectsEmptySelection() {
	s.ErrorIs(s.jobs.Enqueue(s.ctx, nil, domain.OperationDescription), domain.ErrInvalidInput)
}

func (s *BulkTestSuite) TestRun_StopsOnCredits() {
	var calls []int64
	p := ProcessorFunc(func(_ context.Context, id int64, _ domain.Operation) error {
		calls = append(calls, id)
		if id == 3 {
			return domain.NewAPIError(domain.CreditsExhaustedCode)
		}
		return nil
	})
	rep := &recordingReporter{}

	job, err := s.newRunner(p, rep).Run(s.ctx, NewJob([]int64{1, 2, 3, 4, 5}, domain.OperationDescription))

	s.Require().NoError(err)
	s.Equal(domain.BulkStopped, job.State)
	s.Equal(2, job.SuccessCount)
	s.Equal(1, job.ErrorCount)
	s.Equal([]int64{1, 2, 3}, calls)
	s.Equal([]int{1, 2, 3}, rep.progress)
	s.Equal(DefaultStopRedirect, rep.redirect)
}

func (s *BulkTestSuite) TestRun_CountsOtherFailures() {
	p := ProcessorFunc(func(_ context.Context, id int64, _ domain.Operation) error {
		if id%2 == 0 {
			return errors.New("boom")
		}
		return nil
	})
	rep := &recordingReporter{}

	job, err := s.newRunner(p, rep).Run(s.ctx, NewJob([]int64{1, 2, 3, 4}, ""))

	s.Require().NoError(err)
	s.Equal(domain.BulkCompleted, job.State)
	s.Equal(domain.OperationDescription, job.Operation)
	s.Equal(2, job.SuccessCount)
	s.Equal(2, job.ErrorCount)
	s.Equal("Completed! Successfully generated 2 descriptions. 2 errors occurred.", job.Message)
	s.Equal([]int{1, 2, 3, 4}, rep.progress)
	s.Equal(DefaultDoneRedirect, rep.redirect)
}

func (s *BulkTestSuite) TestRun_StopBeforeNextItem() {
	rep := &recordingReporter{}
	var r *Runner
	calls := 0
	r = s.newRunner(ProcessorFunc(func(context.Context, int64, domain.Operation) error {
		calls++
		r.Stop()
		return nil
	}), rep)

	job, err := r.Run(s.ctx, NewJob([]int64{1, 2, 3}, domain.OperationDescription))

	s.Require().NoError(err)
	s.Equal(1, calls)
	s.Equal(domain.BulkStopped, job.State)
	s.Equal(1, job.SuccessCount)
}

func (s *BulkTestSuite) TestRun_RejectsFinishedJob() {
	job := &domain.BulkJob{RecordIDs: []int64{1}, State: domain.BulkCompleted}
	_, err := s.newRunner(ProcessorFunc(nil), &recordingReporter{}).Run(s.ctx, job)
	s.ErrorIs(err, domain.ErrInvalidInput)
}

func (s *BulkTestSuite) TestClient_QueueAndProcess() {
	var generated []int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("Bearer session-jwt", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/admin/bulk/queue":
			_, _ = w.Write([]byte(`{"success":true,"data":{"product_ids":[7,9],"type":"short_description"}}`))
		case "/admin/bulk/generate":
			var body struct {
				PostID int64 `json:"post_id"`
			}
			s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
			generated = append(generated, body.PostID)
			if body.PostID == 9 {
				_, _ = w.Write([]byte(`{"success":false,"data":{"message":"Not enough credits","not_enough_credits":true}}`))
				return
			}
			_, _ = w.Write([]byte(`{"success":true,"data":{"message":"ok"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "session-jwt", time.Second)

	job, err := c.Queue(s.ctx)
	s.Require().NoError(err)
	s.Equal([]int64{7, 9}, job.RecordIDs)
	s.Equal(domain.OperationShortDescription, job.Operation)

	s.NoError(c.Process(s.ctx, 7, job.Operation))
	err = c.Process(s.ctx, 9, job.Operation)
	s.True(domain.IsInsufficientCredits(err))
	s.Equal([]int64{7, 9}, generated)
}

func (s *BulkTestSuite) TestClient_EmptyQueue() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"data":{"message":"No products found"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "x", time.Second).Queue(s.ctx)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *BulkTestSuite) TestClient_Enqueue() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/admin/bulk", r.URL.Path)
		var body struct {
			PostIDs []int64 `json:"post_ids"`
			Type    string  `json:"type"`
		}
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal([]int64{3, 4, 5}, body.PostIDs)
		s.Equal("description", body.Type)
		_, _ = w.Write([]byte(`{"success":true,"data":{"product_count":3,"type":"description"}}`))
	}))
	defer srv.Close()

	n, err := NewClient(srv.URL, "x", time.Second).Enqueue(s.ctx, []int64{3, 4, 5}, domain.OperationDescription)
	s.Require().NoError(err)
	s.Equal(3, n)
}

func (s *BulkTestSuite) TestClient_EnqueueWithoutAPIKey() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
		_, _ = w.Write([]byte(`{"success":false,"data":{"message":"API key is not configured","code":"no_api_key"}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "x", time.Second).Enqueue(s.ctx, []int64{1}, domain.OperationDescription)
	var apiErr *domain.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal("API key is not configured", apiErr.Message)
}
