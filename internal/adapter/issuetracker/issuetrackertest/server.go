// Package issuetrackertest содержит тестовые утилиты для пакета issuetracker:
// записывающий эхо-сервер и MockClient с функциональными полями.
package issuetrackertest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/Kargones/apk-issues/internal/adapter/issuetracker"
)

// Значения конфигурации тестового клиента.
const (
	TestOwner = "octo"
	TestRepo  = "hello"
	TestToken = "test-token-123456"
)

// RecordedRequest — запрос, полученный сервером.
type RecordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Reply — ответ, который сервер вернёт на запрос.
type Reply struct {
	Status int
	Body   string
	Header map[string]string
}

// Server — httptest сервер, записывающий все запросы.
// По умолчанию POST/PATCH отвечают 201 с эхом тела запроса,
// GET /issues — 200 со списком из IssueListJSON, GET /issues/{n} — 200 с IssueJSON(n).
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	replies  map[string]Reply
}

// NewServer запускает сервер и регистрирует его закрытие через t.Cleanup.
func NewServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{replies: make(map[string]Reply)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Reply задаёт ответ для пары метод + путь, например ("PATCH", "/repos/octo/hello/issues/2").
func (s *Server) Reply(method, path string, r Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[method+" "+path] = r
}

// Requests возвращает копию записанных запросов в порядке поступления.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// ClientConfig возвращает конфигурацию клиента, указывающую на сервер.
func (s *Server) ClientConfig() issuetracker.Config {
	return issuetracker.Config{
		BaseURL:     s.URL,
		AccessToken: TestToken,
		Owner:       TestOwner,
		Repo:        TestRepo,
	}
}

// IssuesPath возвращает путь списка задач тестового репозитория.
func IssuesPath() string {
	return fmt.Sprintf("/repos/%s/%s/issues", TestOwner, TestRepo)
}

// IssuePath возвращает путь задачи тестового репозитория.
func IssuePath(number int64) string {
	return fmt.Sprintf("%s/%d", IssuesPath(), number)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Body:   body,
	})
	reply, ok := s.replies[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		reply = defaultReply(r, body)
	}
	for k, v := range reply.Header {
		w.Header().Set(k, v)
	}
	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}

func defaultReply(r *http.Request, body []byte) Reply {
	switch r.Method {
	case http.MethodPost, http.MethodPatch:
		return Reply{Status: http.StatusCreated, Body: string(body)}
	case http.MethodGet:
		if r.URL.Path == IssuesPath() {
			return Reply{Status: http.StatusOK, Body: IssueListJSON()}
		}
		if n, ok := strings.CutPrefix(r.URL.Path, IssuesPath()+"/"); ok {
			var number int64
			if _, err := fmt.Sscanf(n, "%d", &number); err == nil {
				return Reply{Status: http.StatusOK, Body: IssueJSON(number)}
			}
		}
	}
	return Reply{Status: http.StatusNotFound, Body: `{"message":"Not Found"}`}
}

// IssueJSON возвращает реалистичный JSON задачи с номером number.
func IssueJSON(number int64) string {
	return fmt.Sprintf(`{"id":%d,"number":%d,"title":"Задача %d","body":"описание","state":"open",`+
		`"html_url":"https://example.com/%s/%s/issues/%d","user":{"id":1,"login":"%s"},`+
		`"assignee":null,"labels":[{"id":10,"name":"bug","color":"d73a4a"}],`+
		`"created_at":"2024-03-01T10:00:00Z","updated_at":"2024-03-02T11:30:00Z"}`,
		1000+number, number, number, TestOwner, TestRepo, number, TestOwner)
}

// IssueListJSON возвращает JSON массив из двух задач.
func IssueListJSON() string {
	return "[" + IssueJSON(1) + "," + IssueJSON(2) + "]"
}
