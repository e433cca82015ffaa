package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/benjamin-o-ansah/alx-backend-graphql-crm/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJobs(t *testing.T, handler http.Handler) *Jobs {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := config.Config{
		Cron: config.CronConfig{
			BaseURL:        srv.URL,
			RequestTimeout: 5 * time.Second,
			HeartbeatLog:   filepath.Join(dir, "crm_heartbeat_log.txt"),
			ReminderLog:    filepath.Join(dir, "order_reminders_log.txt"),
			RestockLog:     filepath.Join(dir, "low_stock_updates_log.txt"),
		},
	}

	jobs := New(Params{Cfg: cfg, Log: zap.NewNop(), Client: NewClient(cfg)})
	jobs.now = func() time.Time {
		return time.Date(2025, 3, 5, 14, 30, 45, 0, time.UTC)
	}
	return jobs
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestHeartbeatUp(t *testing.T) {
	jobs := newTestJobs(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hello", r.URL.Path)
		w.Write([]byte(`{"data":{"hello":"Hello, CRM!"}}`))
	}))

	require.NoError(t, jobs.Heartbeat(context.Background()))

	lines := readLines(t, jobs.cfg.HeartbeatLog)
	require.Len(t, lines, 1)
	assert.Equal(t, "05/03/2025-14:30:45 CRM is alive (API OK)", lines[0])
}

func TestHeartbeatDown(t *testing.T) {
	jobs := newTestJobs(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	// A down facade degrades to a logged status, never a job failure.
	require.NoError(t, jobs.Heartbeat(context.Background()))

	lines := readLines(t, jobs.cfg.HeartbeatLog)
	require.Len(t, lines, 1)
	assert.Equal(t, "05/03/2025-14:30:45 CRM is alive (API DOWN)", lines[0])
}

func TestHeartbeatWrongGreeting(t *testing.T) {
	jobs := newTestJobs(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"hello":"Goodbye"}}`))
	}))

	require.NoError(t, jobs.Heartbeat(context.Background()))

	lines := readLines(t, jobs.cfg.HeartbeatLog)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "(API DOWN)")
}

func TestOrderReminders(t *testing.T) {
	jobs := newTestJobs(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "250", r.URL.Query().Get("page_size"))

		from, err := time.Parse(time.RFC3339, r.URL.Query().Get("order_date_from"))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 2, 26, 14, 30, 45, 0, time.UTC), from)

		w.Write([]byte(`{"data":{"orders":[
			{"id":"101","customer":{"email":"alice@example.com"}},
			{"id":"102","customer":{"email":"bob@example.com"}}
		]}}`))
	}))

	require.NoError(t, jobs.OrderReminders(context.Background()))

	lines := readLines(t, jobs.cfg.ReminderLog)
	require.Len(t, lines, 2)
	assert.Equal(t, "2025-03-05 14:30:45 - Reminder: Order 101 for alice@example.com", lines[0])
	assert.Equal(t, "2025-03-05 14:30:45 - Reminder: Order 102 for bob@example.com", lines[1])
}

func TestOrderRemindersWalksAllPages(t *testing.T) {
	const total = 300
	var pagesSeen []string

	jobs := newTestJobs(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "250", r.URL.Query().Get("page_size"))
		pagesSeen = append(pagesSeen, r.URL.Query().Get("page"))

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)

		var orders []ReminderOrder
		for i := (page - 1) * 250; i < total && i < page*250; i++ {
			var order ReminderOrder
			order.ID = strconv.Itoa(i + 1)
			order.Customer.Email = fmt.Sprintf("c%d@example.com", i+1)
			orders = append(orders, order)
		}

		var resp struct {
			Data struct {
				Orders []ReminderOrder `json:"orders"`
			} `json:"data"`
		}
		resp.Data.Orders = orders
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))

	require.NoError(t, jobs.OrderReminders(context.Background()))

	assert.Equal(t, []string{"1", "2"}, pagesSeen)

	lines := readLines(t, jobs.cfg.ReminderLog)
	require.Len(t, lines, total)
	assert.Equal(t, "2025-03-05 14:30:45 - Reminder: Order 1 for c1@example.com", lines[0])
	assert.Equal(t, "2025-03-05 14:30:45 - Reminder: Order 300 for c300@example.com", lines[total-1])
}

func TestOrderRemindersFetchFailure(t *testing.T) {
	jobs := newTestJobs(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := jobs.OrderReminders(context.Background())
	require.Error(t, err)

	lines := readLines(t, jobs.cfg.ReminderLog)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "2025-03-05 14:30:45 - ERROR: Failed to process order reminders - "), lines[0])
}

func TestRestockLowStock(t *testing.T) {
	jobs := newTestJobs(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/restock", r.URL.Path)
		w.Write([]byte(`{"data":{"updatedProducts":[
			{"id":"7","name":"Mouse","stock":19},
			{"id":"8","name":"Keyboard","stock":12}
		],"message":"Low stock products updated successfully."}}`))
	}))

	require.NoError(t, jobs.RestockLowStock(context.Background()))

	lines := readLines(t, jobs.cfg.RestockLog)
	require.Len(t, lines, 2)
	assert.Equal(t, "2025-03-05 14:30:45 - Restocked Mouse (stock: 19)", lines[0])
	assert.Equal(t, "2025-03-05 14:30:45 - Restocked Keyboard (stock: 12)", lines[1])
}

func TestRestockLowStockFailure(t *testing.T) {
	jobs := newTestJobs(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	err := jobs.RestockLowStock(context.Background())
	require.Error(t, err)

	lines := readLines(t, jobs.cfg.RestockLog)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "ERROR: Failed to restock low-stock products")
}
