package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dovela/internal/repo"
)

type memRepo struct {
	runs   map[int]repo.Run
	nextID int
}

func newMemRepo() *memRepo {
	return &memRepo{runs: make(map[int]repo.Run), nextID: 1}
}

func (m *memRepo) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	return 0, nil
}

func (m *memRepo) GetBylogin(ctx context.Context, login string) (int, string, error) {
	return 0, "", nil
}

func (m *memRepo) SaveRun(ctx context.Context, userID int, label string, request, result json.RawMessage) (int, error) {
	id := m.nextID
	m.nextID++
	m.runs[id] = repo.Run{ID: id, UserID: userID, Label: label, Request: request, Result: result}
	return id, nil
}

func (m *memRepo) ListRuns(ctx context.Context, userID, limit int) ([]repo.Run, error) {
	var out []repo.Run
	for _, r := range m.runs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memRepo) GetRun(ctx context.Context, userID, runID int) (repo.Run, error) {
	return m.runs[runID], nil
}

func (m *memRepo) DeleteRun(ctx context.Context, userID, runID int) error {
	delete(m.runs, runID)
	return nil
}

const saveRequest = `{
	"label": "dock joint, design case",
	"analysis": {
		"geometry": {"side_length": 150, "thickness": 15, "joint_opening": 25},
		"material": {"grade": "A572-50"},
		"load": {"magnitude_n": 35000, "impact_factor": 1.3, "dynamic_amplification": 1.2, "fatigue_cycles": 5e6},
		"environment": {
			"service_temperature_c": 35, "temperature_max_c": 55, "temperature_min_c": -15,
			"exposure_condition": "Marina", "humidity_avg": 85, "wind_speed_max": 45
		},
		"safety_factor_target": 2.0
	}
}`

func authed(r *http.Request, uid int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "userID", uid))
}

func TestSavePersistsRun(t *testing.T) {
	store := newMemRepo()
	h := NewHandler(store)

	req := authed(httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(saveRequest)), 7)
	w := httptest.NewRecorder()
	h.Save(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	var resp SaveResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result.SafetyFactor <= 0 {
		t.Errorf("SafetyFactor = %g", resp.Result.SafetyFactor)
	}

	run, ok := store.runs[resp.ID]
	if !ok {
		t.Fatalf("run %d not stored", resp.ID)
	}
	if run.UserID != 7 || run.Label != "dock joint, design case" {
		t.Errorf("stored run = %+v", run)
	}
	if !json.Valid(run.Request) || !json.Valid(run.Result) {
		t.Error("stored request/result is not valid JSON")
	}
}

func TestSaveRequiresAuth(t *testing.T) {
	h := NewHandler(newMemRepo())
	req := httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(saveRequest))
	w := httptest.NewRecorder()
	h.Save(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", w.Code)
	}
}

func TestSaveBlocksValidationErrors(t *testing.T) {
	store := newMemRepo()
	h := NewHandler(store)

	body := strings.Replace(saveRequest, `"safety_factor_target": 2.0`, `"safety_factor_target": 0.5`, 1)
	req := authed(httptest.NewRequest(http.MethodPost, "/history", strings.NewReader(body)), 7)
	w := httptest.NewRecorder()
	h.Save(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", w.Code)
	}
	if len(store.runs) != 0 {
		t.Errorf("invalid run was persisted: %+v", store.runs)
	}
}
