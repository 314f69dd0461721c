// Package mockapi is an in-memory implementation of the productivity REST
// API. It backs the test suites and the mock-server command, and can be told
// to fail, stall or deny specific routes.
package mockapi

import (
	"bytes"
	"io"
	"net/http"
	"sync"
	"time"

	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/types"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// DropConnection passed to FailNext aborts the connection instead of
// answering, which the client sees as a network error.
const DropConnection = -1

type Options struct {
	// DenyConversations makes POST /ai/conversations answer 403.
	DenyConversations bool
	// EmptyPlans makes generated plans carry no tasks.
	EmptyPlans bool
	// Secret signs the issued tokens. A fixed development key is used when empty.
	Secret []byte
	// BasePath prefixes every route, e.g. "/api/v1".
	BasePath string
	// AllowedOrigins limits cross-origin browser access. Any origin is
	// allowed when empty.
	AllowedOrigins []string
	// Now overrides the clock used for timestamps and default dates.
	Now func() time.Time
}

type account struct {
	user   types.User
	hash   []byte
	logins int
}

type conversation struct {
	owner int64
	conv  types.Conversation
}

type plan struct {
	owner int64
	plan  types.WeeklyPlan
}

type Server struct {
	opts   Options
	secret []byte
	now    func() time.Time
	router chi.Router
	log    *logrus.Entry

	mu            sync.Mutex
	nextID        int64
	accounts      map[string]*account
	tasks         []types.Task
	habits        map[int64][]types.Habit
	habitLogs     []types.HabitLog
	goals         map[int64][]types.Goal
	journal       map[int64][]types.JournalEntry
	moods         []types.MoodEntry
	settings      map[int64]*types.NotificationSettings
	notifications map[int64][]types.Notification
	conversations map[int64]*conversation
	plans         map[int64]*plan
	currentPlan   map[int64]int64

	faults   map[string][]int
	gates    map[string][]*Gate
	calls    map[string]int
	lastBody map[string][]byte
}

func New(opts Options) *Server {
	s := &Server{
		opts:          opts,
		secret:        opts.Secret,
		now:           opts.Now,
		log:           config.Component("mockapi"),
		accounts:      make(map[string]*account),
		habits:        make(map[int64][]types.Habit),
		goals:         make(map[int64][]types.Goal),
		journal:       make(map[int64][]types.JournalEntry),
		settings:      make(map[int64]*types.NotificationSettings),
		notifications: make(map[int64][]types.Notification),
		conversations: make(map[int64]*conversation),
		plans:         make(map[int64]*plan),
		currentPlan:   make(map[int64]int64),
		faults:        make(map[string][]int),
		gates:         make(map[string][]*Gate),
		calls:         make(map[string]int),
		lastBody:      make(map[string][]byte),
	}
	if len(s.secret) == 0 {
		s.secret = []byte("mockapi-development-secret")
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// id returns a fresh identifier. Callers hold s.mu.
func (s *Server) id() int64 {
	s.nextID++
	return s.nextID
}

// reserve makes sure fresh ids never collide with a seeded one.
// Callers hold s.mu.
func (s *Server) reserve(id int64) int64 {
	if id == 0 {
		return s.id()
	}
	if id > s.nextID {
		s.nextID = id
	}
	return id
}

func routeKey(method, pattern string) string {
	return method + " " + pattern
}

// FailNext makes the next request to the route answer with status, or drop
// the connection when status is DropConnection. pattern is the route as
// registered, without the base path, e.g. "/users/{uid}/tasks/{id}".
func (s *Server) FailNext(method, pattern string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := routeKey(method, pattern)
	s.faults[key] = append(s.faults[key], status)
}

// Block holds the next request to the route until the returned gate is
// released. A pending FailNext on the same route applies after the release.
func (s *Server) Block(method, pattern string) *Gate {
	g := &Gate{arrived: make(chan struct{}), release: make(chan struct{})}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := routeKey(method, pattern)
	s.gates[key] = append(s.gates[key], g)
	return g
}

// Calls counts the requests that reached the route, failed ones included.
func (s *Server) Calls(method, pattern string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[routeKey(method, pattern)]
}

// TotalCalls counts every routed request.
func (s *Server) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// LastBody returns the body of the latest request to the route.
func (s *Server) LastBody(method, pattern string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Clone(s.lastBody[routeKey(method, pattern)])
}

// Gate is a stalled request.
type Gate struct {
	arrived     chan struct{}
	release     chan struct{}
	arriveOnce  sync.Once
	releaseOnce sync.Once
}

// Arrived is closed once the request reached the server.
func (g *Gate) Arrived() <-chan struct{} { return g.arrived }

func (g *Gate) Release() {
	g.releaseOnce.Do(func() { close(g.release) })
}

func (g *Gate) arrive() {
	g.arriveOnce.Do(func() { close(g.arrived) })
}

func (s *Server) instrument(method, pattern string, next http.Handler) http.Handler {
	key := routeKey(method, pattern)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.mu.Lock()
		s.calls[key]++
		s.lastBody[key] = body
		var gate *Gate
		if q := s.gates[key]; len(q) > 0 {
			gate, s.gates[key] = q[0], q[1:]
		}
		status, fail := 0, false
		if q := s.faults[key]; len(q) > 0 {
			status, s.faults[key], fail = q[0], q[1:], true
		}
		s.mu.Unlock()

		if gate != nil {
			gate.arrive()
			select {
			case <-gate.release:
			case <-r.Context().Done():
				return
			}
		}
		if fail {
			if status == DropConnection {
				panic(http.ErrAbortHandler)
			}
			writeError(w, http.StatusText(status), status)
			return
		}
		next.ServeHTTP(w, r)
	})
}
