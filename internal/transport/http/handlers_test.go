package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"comunidad/internal/audit"
	"comunidad/internal/platform/metrics"
	"comunidad/internal/portal/billing"
	"comunidad/internal/portal/board"
	"comunidad/internal/portal/reservations"
	"comunidad/internal/portal/session"
	"comunidad/internal/portal/visitors"
	"comunidad/internal/storage"
	"comunidad/internal/store"
	httpapi "comunidad/internal/transport/http"
)

var testMetrics = metrics.New()

type HandlersSuite struct {
	suite.Suite
	server *httptest.Server
}

func (s *HandlersSuite) SetupTest() {
	st := store.New(storage.NewMemory())
	publisher := audit.NewPublisher(audit.NewInMemoryStore())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := httpapi.NewHandler(
		logger,
		testMetrics,
		session.New(st, testMetrics, publisher),
		billing.New(st, testMetrics, publisher),
		reservations.New(st, testMetrics, publisher),
		visitors.New(st, testMetrics, publisher),
		board.New(st, testMetrics, publisher),
	)
	s.server = httptest.NewServer(httpapi.NewRouter(handler))
	s.T().Cleanup(s.server.Close)
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}

func (s *HandlersSuite) postJSON(path string, body any) *http.Response {
	s.T().Helper()
	payload, err := json.Marshal(body)
	s.Require().NoError(err)
	resp, err := http.Post(s.server.URL+path, "application/json", bytes.NewReader(payload))
	s.Require().NoError(err)
	s.T().Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *HandlersSuite) get(path string) *http.Response {
	s.T().Helper()
	resp, err := http.Get(s.server.URL + path)
	s.Require().NoError(err)
	s.T().Cleanup(func() { resp.Body.Close() })
	return resp
}

func (s *HandlersSuite) decode(resp *http.Response, out any) {
	s.T().Helper()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

func (s *HandlersSuite) login() {
	s.T().Helper()
	resp := s.postJSON("/session/login", map[string]string{
		"rut":            "12345678-5",
		"address":        "Av. Providencia 1234",
		"buildingNumber": "Depto 1203",
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
}

func (s *HandlersSuite) TestHealth() {
	resp := s.get("/health")
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *HandlersSuite) TestLoginFlow() {
	s.Run("valid rut logs in and is canonicalized", func() {
		resp := s.postJSON("/session/login", map[string]string{
			"rut":            "123456785",
			"address":        "Av. Providencia 1234",
			"buildingNumber": "Depto 1203",
		})
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var resident store.Resident
		s.decode(resp, &resident)
		s.Equal("12.345.678-5", resident.Rut)
	})

	s.Run("invalid rut is a 400", func() {
		resp := s.postJSON("/session/login", map[string]string{
			"rut":            "12345678-4",
			"address":        "a",
			"buildingNumber": "b",
		})
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	})

	s.Run("current session reflects the login", func() {
		resp := s.get("/session/")
		s.Equal(http.StatusOK, resp.StatusCode)
	})

	s.Run("logout clears the session", func() {
		req, err := http.NewRequest(http.MethodPost, s.server.URL+"/session/logout", nil)
		s.Require().NoError(err)
		resp, err := http.DefaultClient.Do(req)
		s.Require().NoError(err)
		defer resp.Body.Close()
		s.Equal(http.StatusNoContent, resp.StatusCode)

		after := s.get("/session/")
		s.Equal(http.StatusUnauthorized, after.StatusCode)
	})
}

func (s *HandlersSuite) TestInvoicesBootstrapAndPay() {
	resp := s.get("/invoices/")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var invoices []store.Invoice
	s.decode(resp, &invoices)
	s.Require().Len(invoices, 4)

	payResp := s.postJSON("/invoices/1/pay", nil)
	s.Require().Equal(http.StatusOK, payResp.StatusCode)

	var paid store.Invoice
	s.decode(payResp, &paid)
	s.True(paid.Paid)

	again := s.postJSON("/invoices/1/pay", nil)
	s.Equal(http.StatusConflict, again.StatusCode)
}

func (s *HandlersSuite) TestReservationConflict() {
	book := map[string]string{
		"space":     "piscina",
		"date":      "2026-09-05",
		"startTime": "10:00",
	}

	first := s.postJSON("/reservations/", book)
	s.Require().Equal(http.StatusCreated, first.StatusCode)

	var r store.Reservation
	s.decode(first, &r)
	s.Equal("11:00", r.EndTime)

	second := s.postJSON("/reservations/", book)
	s.Equal(http.StatusConflict, second.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, s.server.URL+"/reservations/"+r.ID, nil)
	s.Require().NoError(err)
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusNoContent, resp.StatusCode)
}

func (s *HandlersSuite) TestVisitorRegistrationRequiresSession() {
	unauthorized := s.postJSON("/visitors/", map[string]string{
		"firstName": "Ana",
		"lastName":  "Rojas",
	})
	s.Equal(http.StatusUnauthorized, unauthorized.StatusCode)

	s.login()

	created := s.postJSON("/visitors/", map[string]string{
		"firstName": "Ana",
		"lastName":  "Rojas",
	})
	s.Require().Equal(http.StatusCreated, created.StatusCode)

	var visitor store.Visitor
	s.decode(created, &visitor)
	s.Equal("Depto 1203", visitor.Unit)
}

func (s *HandlersSuite) TestPublishStatementPostsAnnouncement() {
	resp := s.postJSON("/board/billing-statements", map[string]any{
		"month":   "septiembre de 2026",
		"amount":  85000,
		"details": "Incluye aseo y seguridad",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)

	list := s.get("/board/announcements")
	s.Require().Equal(http.StatusOK, list.StatusCode)

	var announcements []store.Announcement
	s.decode(list, &announcements)
	s.Require().Len(announcements, 1)
	s.Equal(store.AnnouncementBilling, announcements[0].Type)
}

func (s *HandlersSuite) TestUnsupportedContentType() {
	resp, err := http.Post(s.server.URL+"/session/login", "text/plain", bytes.NewReader([]byte("hi")))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusUnsupportedMediaType, resp.StatusCode)
}
