package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dcastillo/tablero-recursos/internal/dashboard"
)

func newTestServer() *httptest.Server {
	svc := dashboard.NewService(fixtureStore())
	return httptest.NewServer(dashboard.Routes(dashboard.NewHandler(svc)))
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func TestGetDashboard(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	resp := do(t, http.MethodGet, srv.URL+"/dashboard", "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var payload struct {
		Employees []struct {
			ID             string `json:"id"`
			OccupancyRate  int    `json:"occupancyRate"`
			RecurringHours int    `json:"recurringHours"`
		} `json:"employees"`
		Projects []struct {
			ID       string `json:"id"`
			Progress int    `json:"progress"`
		} `json:"projects"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(payload.Employees) != 1 || len(payload.Projects) != 2 {
		t.Fatalf("payload sizes = %d employees / %d projects", len(payload.Employees), len(payload.Projects))
	}
	if payload.Employees[0].OccupancyRate != 75 {
		t.Errorf("occupancyRate = %d, want 75", payload.Employees[0].OccupancyRate)
	}
	if payload.Employees[0].RecurringHours != 2400 {
		t.Errorf("recurringHours = %d, want 2400", payload.Employees[0].RecurringHours)
	}
}

func TestReadEndpoints(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	for _, path := range []string{"/dashboard/alerts", "/dashboard/performance", "/dashboard/evolution"} {
		resp := do(t, http.MethodGet, srv.URL+path, "")
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: status = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestUpdateAssignmentHoursEndpoint(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	t.Run("UpdatesAndReturnsSnapshot", func(t *testing.T) {
		resp := do(t, http.MethodPut, srv.URL+"/employees/e1/projects/p-one/hours", `{"assigned_hours":"100:00"}`)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var payload struct {
			Employees []struct {
				OccupancyRate int `json:"occupancyRate"`
			} `json:"employees"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if payload.Employees[0].OccupancyRate != 88 {
			t.Errorf("occupancyRate = %d, want 88", payload.Employees[0].OccupancyRate)
		}
	})

	t.Run("UnknownAssignmentIs404", func(t *testing.T) {
		resp := do(t, http.MethodPut, srv.URL+"/employees/ghost/projects/p-one/hours", `{"assigned_hours":"10:00"}`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("MalformedBodyIs400", func(t *testing.T) {
		resp := do(t, http.MethodPut, srv.URL+"/employees/e1/projects/p-one/hours", `{not json`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("MalformedHoursStringCountsAsZero", func(t *testing.T) {
		resp := do(t, http.MethodPut, srv.URL+"/employees/e1/projects/p-rec/hours", `{"assigned_hours":"abc"}`)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var payload struct {
			Employees []struct {
				RecurringHours int `json:"recurringHours"`
			} `json:"employees"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if payload.Employees[0].RecurringHours != 0 {
			t.Errorf("recurringHours = %d, want 0", payload.Employees[0].RecurringHours)
		}
	})
}

func TestEmployeeEndpoints(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	t.Run("NegativeCapacityIs400", func(t *testing.T) {
		resp := do(t, http.MethodPut, srv.URL+"/employees/e1", `{"total_hours_month":-5}`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("EditUnknownIs404", func(t *testing.T) {
		resp := do(t, http.MethodPut, srv.URL+"/employees/ghost", `{"name":"X"}`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("DeleteRemovesEmployee", func(t *testing.T) {
		resp := do(t, http.MethodDelete, srv.URL+"/employees/e1", "")
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var payload struct {
			Employees []json.RawMessage `json:"employees"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if len(payload.Employees) != 0 {
			t.Errorf("employees = %d, want 0", len(payload.Employees))
		}
	})
}

func TestProjectAndTaskEndpoints(t *testing.T) {
	srv := newTestServer()
	defer srv.Close()

	t.Run("InvalidProjectStatusIs400", func(t *testing.T) {
		resp := do(t, http.MethodPut, srv.URL+"/projects/p-one", `{"status":"Inventado"}`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("EditTaskStatus", func(t *testing.T) {
		resp := do(t, http.MethodPut, srv.URL+"/projects/p-one/tasks/t3", `{"status":"Completado","consumed_hours":1800}`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("NegativeTaskHoursIs400", func(t *testing.T) {
		resp := do(t, http.MethodPut, srv.URL+"/projects/p-one/tasks/t3", `{"assigned_hours":-1}`)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("DeleteUnknownTaskIs404", func(t *testing.T) {
		resp := do(t, http.MethodDelete, srv.URL+"/projects/p-one/tasks/ghost", "")
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("DeleteProjectStripsAssignments", func(t *testing.T) {
		resp := do(t, http.MethodDelete, srv.URL+"/projects/p-rec", "")
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}

		var payload struct {
			Projects []struct {
				ID string `json:"id"`
			} `json:"projects"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		for _, p := range payload.Projects {
			if p.ID == "p-rec" {
				t.Error("deleted project still in the snapshot")
			}
		}
	})
}
