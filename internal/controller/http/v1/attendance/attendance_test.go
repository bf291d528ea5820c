package attendance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/repository/postgres/attendance"
	"workforce/backend/internal/repository/redisdb"
)

type stubAttendance struct {
	timeInCalled  bool
	timeInRequest attendance.TimeInRequest
	timeOutCalled bool
	latest        attendance.LatestResponse
}

func (s *stubAttendance) GetList(ctx context.Context, filter attendance.Filter) ([]attendance.GetListResponse, int, error) {
	return nil, 0, nil
}

func (s *stubAttendance) GetDetailById(ctx context.Context, id int) (attendance.GetDetailByIdResponse, error) {
	return attendance.GetDetailByIdResponse{}, nil
}

func (s *stubAttendance) GetLatestByAccountId(ctx context.Context, accountID int) (attendance.LatestResponse, error) {
	s.latest.AccountID = accountID
	return s.latest, nil
}

func (s *stubAttendance) TimeIn(ctx context.Context, request attendance.TimeInRequest) (attendance.TimeInResponse, error) {
	s.timeInCalled = true
	s.timeInRequest = request
	return attendance.TimeInResponse{ID: 1, AccountID: 1}, nil
}

func (s *stubAttendance) TimeOut(ctx context.Context, request attendance.TimeOutRequest) (attendance.TimeOutResponse, error) {
	s.timeOutCalled = true
	return attendance.TimeOutResponse{ID: 1, AccountID: 1}, nil
}

func (s *stubAttendance) UpdateAll(ctx context.Context, request attendance.UpdateRequest) error {
	return nil
}

func (s *stubAttendance) UpdateColumns(ctx context.Context, request attendance.UpdateRequest) error {
	return nil
}

func (s *stubAttendance) Delete(ctx context.Context, id int) error { return nil }

func (s *stubAttendance) GetStatistics(ctx context.Context) (attendance.StatisticsResponse, error) {
	return attendance.StatisticsResponse{}, nil
}

type stubStatus struct {
	remaining time.Duration
	toggle    string
	marked    bool
	setTo     string
}

func (s *stubStatus) CooldownRemaining(ctx context.Context, accountID int) (time.Duration, error) {
	return s.remaining, nil
}

func (s *stubStatus) MarkAction(ctx context.Context, accountID int, at time.Time) error {
	s.marked = true
	return nil
}

func (s *stubStatus) SetToggle(ctx context.Context, accountID int, status string) error {
	s.setTo = status
	return nil
}

func (s *stubStatus) Toggle(ctx context.Context, accountID int) (string, error) {
	return s.toggle, nil
}

func (s *stubStatus) Window() time.Duration { return time.Minute }

func asEmployee(userID int) web.Middleware {
	return func(handler web.Handler) web.Handler {
		return func(c *web.Context) error {
			c.Ctx = context.WithValue(c.Ctx, auth.Key, auth.Claims{UserId: userID, Role: auth.RoleEmployee})
			return handler(c)
		}
	}
}

func newTestApp(controller *Controller) *web.App {
	app := web.NewApp()
	app.Post("/timein", controller.TimeIn, asEmployee(1))
	app.Patch("/timeout", controller.TimeOut, asEmployee(1))
	app.Get("/latest", controller.GetLatest, asEmployee(1))
	return app
}

func TestTimeInRejectedInsideCooldown(t *testing.T) {
	repo := &stubAttendance{}
	status := &stubStatus{remaining: 30 * time.Second}
	app := newTestApp(NewController(repo, status))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/timein", nil)
	app.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusTooManyRequests)
	}
	if repo.timeInCalled {
		t.Fatal("repository must not be reached inside the cooldown window")
	}
	if !strings.Contains(w.Body.String(), "too soon") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestTimeInAllowedAfterCooldown(t *testing.T) {
	repo := &stubAttendance{}
	status := &stubStatus{remaining: 0}
	app := newTestApp(NewController(repo, status))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/timein", nil)
	app.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}
	if !repo.timeInCalled {
		t.Fatal("repository was not reached")
	}
	if !status.marked {
		t.Fatal("action was not stamped")
	}
	if status.setTo != redisdb.ToggleTimedIn {
		t.Fatalf("toggle = %s, want %s", status.setTo, redisdb.ToggleTimedIn)
	}
}

// The snapshot is proof, not a gate: a request without camera access still
// opens the cycle, just with no image attached.
func TestTimeInWithoutSnapshotRecordsCycle(t *testing.T) {
	repo := &stubAttendance{}
	status := &stubStatus{remaining: 0}
	app := newTestApp(NewController(repo, status))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/timein", nil)
	app.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !repo.timeInCalled {
		t.Fatal("repository was not reached")
	}
	if repo.timeInRequest.ImagePath != "" {
		t.Fatalf("image path = %q, want empty without a snapshot", repo.timeInRequest.ImagePath)
	}
}

func TestTimeOutStampsToggle(t *testing.T) {
	repo := &stubAttendance{}
	status := &stubStatus{remaining: 0}
	app := newTestApp(NewController(repo, status))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/timeout", nil)
	app.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
	}
	if !repo.timeOutCalled {
		t.Fatal("repository was not reached")
	}
	if status.setTo != redisdb.ToggleTimedOut {
		t.Fatalf("toggle = %s, want %s", status.setTo, redisdb.ToggleTimedOut)
	}
}

func TestGetLatestRepairsStaleCache(t *testing.T) {
	// Newest row is closed but the cache still says timed in. The row wins
	// and the cache gets rewritten.
	id := 4
	out := time.Now()
	repo := &stubAttendance{latest: attendance.LatestResponse{ID: &id, TimeOut: &out}}
	status := &stubStatus{toggle: redisdb.ToggleTimedIn}
	app := newTestApp(NewController(repo, status))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/latest", nil)
	app.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), redisdb.ToggleTimedOut) {
		t.Fatalf("body does not carry the merged toggle: %s", w.Body.String())
	}
	if status.setTo != redisdb.ToggleTimedOut {
		t.Fatalf("cache repaired to %s, want %s", status.setTo, redisdb.ToggleTimedOut)
	}
}

func TestMergeToggle(t *testing.T) {
	cases := []struct {
		name    string
		cached  string
		fromRow string
		want    string
	}{
		{"row wins over stale cache", redisdb.ToggleTimedIn, redisdb.ToggleTimedOut, redisdb.ToggleTimedOut},
		{"cache covers missing row", redisdb.ToggleTimedIn, "", redisdb.ToggleTimedIn},
		{"agreement", redisdb.ToggleTimedOut, redisdb.ToggleTimedOut, redisdb.ToggleTimedOut},
		{"nothing known defaults to timed out", "", "", redisdb.ToggleTimedOut},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MergeToggle(tc.cached, tc.fromRow); got != tc.want {
				t.Fatalf("MergeToggle(%q, %q) = %q, want %q", tc.cached, tc.fromRow, got, tc.want)
			}
		})
	}
}
