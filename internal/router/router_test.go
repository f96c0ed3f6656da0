package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/sumaiya48/summer-camp-server/internal/config"
	"github.com/sumaiya48/summer-camp-server/internal/handler"
	"github.com/sumaiya48/summer-camp-server/internal/model"
	"github.com/sumaiya48/summer-camp-server/internal/service"
	"github.com/sumaiya48/summer-camp-server/internal/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var setupOnce sync.Once

// ─── In-memory repositories ─────────────────────────────────────────────

type memUserRepo struct {
	users []model.User
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			return &m.users[i], nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Insert(_ context.Context, user *model.User) (*model.InsertAck, error) {
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return &model.InsertAck{Acknowledged: true, InsertedID: user.ID}, nil
}

func (m *memUserRepo) List(_ context.Context) ([]model.User, error) {
	return m.users, nil
}

func (m *memUserRepo) UpdateRole(_ context.Context, id string, role model.Role) (*model.UpdateAck, error) {
	for i := range m.users {
		if m.users[i].ID.Hex() == id {
			m.users[i].Role = role
			return &model.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &model.UpdateAck{Acknowledged: true}, nil
}

type memClassRepo struct {
	classes   []model.Class
	mutations int
}

func (m *memClassRepo) ListByStatus(_ context.Context, status model.ClassStatus, limit int64) ([]model.Class, error) {
	out := make([]model.Class, 0)
	for _, c := range m.classes {
		if c.Status == status {
			out = append(out, c)
		}
		if limit > 0 && int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (m *memClassRepo) ListAll(_ context.Context, limit int64) ([]model.Class, error) {
	if limit > 0 && int64(len(m.classes)) > limit {
		return m.classes[:limit], nil
	}
	return m.classes, nil
}

func (m *memClassRepo) ListByEmail(_ context.Context, email string) ([]model.Class, error) {
	out := make([]model.Class, 0)
	for _, c := range m.classes {
		if c.Email == email {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memClassRepo) Insert(_ context.Context, class *model.Class) (*model.InsertAck, error) {
	m.mutations++
	class.ID = primitive.NewObjectID()
	m.classes = append(m.classes, *class)
	return &model.InsertAck{Acknowledged: true, InsertedID: class.ID}, nil
}

func (m *memClassRepo) UpdateStatus(_ context.Context, id string, status model.ClassStatus) (*model.UpdateAck, error) {
	m.mutations++
	for i := range m.classes {
		if m.classes[i].ID.Hex() == id {
			m.classes[i].Status = status
			return &model.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &model.UpdateAck{Acknowledged: true}, nil
}

func (m *memClassRepo) SetFeedback(_ context.Context, id string, feedback string) (*model.UpdateAck, error) {
	m.mutations++
	for i := range m.classes {
		if m.classes[i].ID.Hex() == id {
			m.classes[i].Feedback = feedback
			return &model.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &model.UpdateAck{Acknowledged: true}, nil
}

func (m *memClassRepo) Delete(_ context.Context, id string) (*model.DeleteAck, error) {
	m.mutations++
	for i := range m.classes {
		if m.classes[i].ID.Hex() == id {
			m.classes = append(m.classes[:i], m.classes[i+1:]...)
			return &model.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &model.DeleteAck{Acknowledged: true, DeletedCount: 0}, nil
}

type memSelectionRepo struct {
	selections []model.Selection
}

func (m *memSelectionRepo) Insert(_ context.Context, s *model.Selection) (*model.InsertAck, error) {
	s.ID = primitive.NewObjectID()
	m.selections = append(m.selections, *s)
	return &model.InsertAck{Acknowledged: true, InsertedID: s.ID}, nil
}

func (m *memSelectionRepo) ListByUserEmail(_ context.Context, email string) ([]model.Selection, error) {
	out := make([]model.Selection, 0)
	for _, s := range m.selections {
		if s.UserEmail == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSelectionRepo) Delete(_ context.Context, id string) (*model.DeleteAck, error) {
	for i := range m.selections {
		if m.selections[i].ID.Hex() == id {
			m.selections = append(m.selections[:i], m.selections[i+1:]...)
			return &model.DeleteAck{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &model.DeleteAck{Acknowledged: true, DeletedCount: 0}, nil
}

type memInstructorRepo struct {
	instructors []model.Instructor
}

func (m *memInstructorRepo) List(_ context.Context, limit int64) ([]model.Instructor, error) {
	if limit > 0 && int64(len(m.instructors)) > limit {
		return m.instructors[:limit], nil
	}
	return m.instructors, nil
}

type memPaymentRepo struct {
	payments []model.Payment
}

func (m *memPaymentRepo) Insert(_ context.Context, p *model.Payment) (*model.InsertAck, error) {
	p.ID = primitive.NewObjectID()
	m.payments = append(m.payments, *p)
	return &model.InsertAck{Acknowledged: true, InsertedID: p.ID}, nil
}

type stubIntents struct {
	gotPrice float64
}

func (s *stubIntents) CreateIntent(_ context.Context, totalPrice float64) (string, error) {
	s.gotPrice = totalPrice
	return "pi_test_secret", nil
}

// ─── Harness ────────────────────────────────────────────────────────────

type env struct {
	router      *gin.Engine
	authService *service.AuthService
	users       *memUserRepo
	classes     *memClassRepo
	selections  *memSelectionRepo
	payments    *memPaymentRepo
	intents     *stubIntents
}

func newEnv(t *testing.T) *env {
	t.Helper()
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validator.Setup()
	})

	cfg := &config.Config{
		GinMode:            gin.TestMode,
		JWTSecret:          "router-test-secret",
		JWTExpiry:          time.Hour,
		RateLimitPerMinute: 0,
	}

	e := &env{
		users:      &memUserRepo{},
		classes:    &memClassRepo{},
		selections: &memSelectionRepo{},
		payments:   &memPaymentRepo{},
		intents:    &stubIntents{},
	}

	log := zerolog.Nop()
	e.authService = service.NewAuthService(cfg)
	userService := service.NewUserService(e.users)
	classService := service.NewClassService(e.classes, nil, 0, log)
	selectionService := service.NewSelectionService(e.selections)
	instructorService := service.NewInstructorService(&memInstructorRepo{}, nil, 0, log)
	paymentService := service.NewPaymentService(e.payments, e.selections, e.intents, log)

	handlers := &Handlers{
		Auth:       handler.NewAuthHandler(e.authService),
		Class:      handler.NewClassHandler(classService),
		Selection:  handler.NewSelectionHandler(selectionService),
		Instructor: handler.NewInstructorHandler(instructorService),
		User:       handler.NewUserHandler(userService),
		Payment:    handler.NewPaymentHandler(paymentService),
	}

	e.router = SetupRouter(e.authService, userService, handlers, cfg)
	return e
}

func (e *env) addUser(t *testing.T, email string, role model.Role) {
	t.Helper()
	if _, err := e.users.Insert(context.Background(), &model.User{Email: email, Role: role}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
}

func (e *env) token(t *testing.T, email string) string {
	t.Helper()
	token, err := e.authService.IssueToken(&model.User{Email: email})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func (e *env) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

// ─── Tests ──────────────────────────────────────────────────────────────

func TestLiveness(t *testing.T) {
	e := newEnv(t)
	w := e.do(t, http.MethodGet, "/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() == "" {
		t.Error("expected a liveness text body")
	}
}

func TestCredentialGatedRoutesRejectMissingHeader(t *testing.T) {
	e := newEnv(t)

	routes := []struct {
		method, path string
	}{
		{http.MethodPost, "/create-payment-intent"},
		{http.MethodPost, "/payments"},
		{http.MethodGet, "/classes/allClasses"},
		{http.MethodPatch, "/classes/allClasses"},
		{http.MethodPut, "/classes/feedback/" + primitive.NewObjectID().Hex()},
		{http.MethodPost, "/classes/addClass"},
		{http.MethodGet, "/classes/instructorClasses"},
		{http.MethodDelete, "/classes/instructorClasses/" + primitive.NewObjectID().Hex()},
		{http.MethodPost, "/classes/selected"},
		{http.MethodGet, "/classes/selected"},
		{http.MethodDelete, "/classes/selected/" + primitive.NewObjectID().Hex()},
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/role"},
		{http.MethodGet, "/users/details"},
		{http.MethodPatch, "/users"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			w := e.do(t, rt.method, rt.path, "", nil)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			var body struct {
				Error   bool   `json:"error"`
				Message string `json:"message"`
			}
			decode(t, w, &body)
			if !body.Error || body.Message == "" {
				t.Errorf("body = %s, want {error:true,message}", w.Body.String())
			}
		})
	}
}

func TestExpiredTokenIsForbidden(t *testing.T) {
	e := newEnv(t)
	expiredIssuer := service.NewAuthService(&config.Config{
		JWTSecret: "router-test-secret",
		JWTExpiry: -time.Minute,
	})
	token, err := expiredIssuer.IssueToken(&model.User{Email: "late@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	w := e.do(t, http.MethodGet, "/classes/selected", token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestStudentOnAdminRoutes(t *testing.T) {
	e := newEnv(t)
	e.addUser(t, "student@example.com", model.RoleStudent)
	token := e.token(t, "student@example.com")

	oid := primitive.NewObjectID().Hex()
	before := e.classes.mutations

	for _, rt := range []struct {
		method, path string
		body         interface{}
	}{
		{http.MethodGet, "/classes/allClasses", nil},
		{http.MethodPatch, "/classes/allClasses", map[string]string{"id": oid, "status": "approved"}},
		{http.MethodPut, "/classes/feedback/" + oid, map[string]string{"feedback": "nope"}},
		{http.MethodGet, "/users", nil},
		{http.MethodPatch, "/users", map[string]string{"id": oid, "role": "admin"}},
	} {
		w := e.do(t, rt.method, rt.path, token, rt.body)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s %s: status = %d, want 403", rt.method, rt.path, w.Code)
		}
	}

	if e.classes.mutations != before {
		t.Errorf("class store mutated %d times by denied requests", e.classes.mutations-before)
	}
	for _, u := range e.users.users {
		if u.Role == model.RoleAdmin {
			t.Error("denied role update still escalated a user")
		}
	}
}

func TestInstructorGate(t *testing.T) {
	e := newEnv(t)
	e.addUser(t, "teach@example.com", model.RoleInstructor)
	e.addUser(t, "student@example.com", model.RoleStudent)

	class := map[string]interface{}{
		"className":      "Canoeing",
		"email":          "teach@example.com",
		"price":          45.0,
		"availableSeats": 10,
		"status":         "pending",
	}

	w := e.do(t, http.MethodPost, "/classes/addClass", e.token(t, "student@example.com"), class)
	if w.Code != http.StatusForbidden {
		t.Fatalf("student create: status = %d, want 403", w.Code)
	}

	w = e.do(t, http.MethodPost, "/classes/addClass", e.token(t, "teach@example.com"), class)
	if w.Code != http.StatusOK {
		t.Fatalf("instructor create: status = %d (%s)", w.Code, w.Body.String())
	}
	var ack model.InsertAck
	decode(t, w, &ack)
	if !ack.Acknowledged || ack.InsertedID == nil {
		t.Errorf("ack = %+v", ack)
	}
}

func TestPublicListingShowsOnlyApproved(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	for _, c := range []model.Class{
		{ClassName: "A", Status: model.ClassStatusApproved},
		{ClassName: "B", Status: model.ClassStatusPending},
		{ClassName: "C", Status: model.ClassStatusDenied},
		{ClassName: "D", Status: model.ClassStatusApproved},
	} {
		class := c
		if _, err := e.classes.Insert(ctx, &class); err != nil {
			t.Fatalf("seed class: %v", err)
		}
	}

	w := e.do(t, http.MethodGet, "/classes", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var classes []model.Class
	decode(t, w, &classes)
	if len(classes) != 2 {
		t.Fatalf("listing returned %d classes, want 2", len(classes))
	}
	for _, c := range classes {
		if c.Status != model.ClassStatusApproved {
			t.Errorf("public listing leaked a %s class", c.Status)
		}
	}

	// The limit parameter caps the result count.
	w = e.do(t, http.MethodGet, "/classes?limit=1", "", nil)
	decode(t, w, &classes)
	if len(classes) != 1 {
		t.Errorf("limit=1 returned %d classes", len(classes))
	}
}

func TestUserCreateIsIdempotent(t *testing.T) {
	e := newEnv(t)
	user := map[string]string{"email": "new@example.com", "name": "New User"}

	w := e.do(t, http.MethodPost, "/users", "", user)
	if w.Code != http.StatusOK {
		t.Fatalf("first create: status = %d", w.Code)
	}
	var ack model.InsertAck
	decode(t, w, &ack)
	if !ack.Acknowledged {
		t.Errorf("first create ack = %+v", ack)
	}

	w = e.do(t, http.MethodPost, "/users", "", user)
	if w.Code != http.StatusOK {
		t.Fatalf("second create: status = %d", w.Code)
	}
	var dup struct {
		Acknowledged bool   `json:"acknowledged"`
		Message      string `json:"message"`
	}
	decode(t, w, &dup)
	if dup.Acknowledged || dup.Message == "" {
		t.Errorf("duplicate create body = %s", w.Body.String())
	}

	count := 0
	for _, u := range e.users.users {
		if u.Email == "new@example.com" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("store holds %d documents for the email, want 1", count)
	}
}

func TestRoleRoundTripDefaultsToStudent(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/users", "", map[string]string{"email": "fresh@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("create: status = %d", w.Code)
	}

	token := e.token(t, "fresh@example.com")
	w = e.do(t, http.MethodGet, "/users/role?email=fresh@example.com", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get role: status = %d", w.Code)
	}
	var view struct {
		Role model.Role `json:"role"`
	}
	decode(t, w, &view)
	if view.Role != model.RoleStudent {
		t.Errorf("role = %q, want student", view.Role)
	}
}

func TestJWTIssuanceOpensGatedRoutes(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/jwt", "", map[string]string{"email": "c@example.com"})
	if w.Code != http.StatusOK {
		t.Fatalf("issue: status = %d (%s)", w.Code, w.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	decode(t, w, &body)
	if body.Token == "" {
		t.Fatal("no token issued")
	}

	w = e.do(t, http.MethodGet, "/classes/selected?email=c@example.com", body.Token, nil)
	if w.Code != http.StatusOK {
		t.Errorf("gated route with issued token: status = %d", w.Code)
	}
}

func TestCreatePaymentIntent(t *testing.T) {
	e := newEnv(t)
	e.addUser(t, "payer@example.com", model.RoleStudent)
	token := e.token(t, "payer@example.com")

	w := e.do(t, http.MethodPost, "/create-payment-intent", token, map[string]float64{"totalPrice": 19.99})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	var body struct {
		ClientSecret string `json:"clientSecret"`
	}
	decode(t, w, &body)
	if body.ClientSecret == "" {
		t.Error("no client secret returned")
	}
	if e.intents.gotPrice != 19.99 {
		t.Errorf("bridge received price %v, want 19.99", e.intents.gotPrice)
	}
}

func TestPaymentRecordRemovesSelection(t *testing.T) {
	e := newEnv(t)
	e.addUser(t, "payer@example.com", model.RoleStudent)
	token := e.token(t, "payer@example.com")

	sel := model.Selection{UserEmail: "payer@example.com", ClassName: "Canoeing"}
	if _, err := e.selections.Insert(context.Background(), &sel); err != nil {
		t.Fatalf("seed selection: %v", err)
	}

	w := e.do(t, http.MethodPost, "/payments", token, map[string]interface{}{
		"email":           "payer@example.com",
		"amount":          45.0,
		"transactionId":   "txn_123",
		"selectedClassId": sel.ID.Hex(),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	var ack model.PaymentAck
	decode(t, w, &ack)
	if !ack.Acknowledged || !ack.SelectionRemoved {
		t.Errorf("ack = %+v", ack)
	}
	if len(e.selections.selections) != 0 {
		t.Error("selection survived payment")
	}
	if len(e.payments.payments) != 1 {
		t.Errorf("payments stored = %d, want 1", len(e.payments.payments))
	}
}

func TestDeleteSelectionCounts(t *testing.T) {
	e := newEnv(t)
	e.addUser(t, "s@example.com", model.RoleStudent)
	token := e.token(t, "s@example.com")

	sel := model.Selection{UserEmail: "s@example.com"}
	if _, err := e.selections.Insert(context.Background(), &sel); err != nil {
		t.Fatalf("seed selection: %v", err)
	}

	w := e.do(t, http.MethodDelete, "/classes/selected/"+sel.ID.Hex(), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var ack model.DeleteAck
	decode(t, w, &ack)
	if ack.DeletedCount != 1 {
		t.Errorf("deletedCount = %d, want 1", ack.DeletedCount)
	}

	// Deleting a well-formed but unknown id acknowledges zero deletions.
	w = e.do(t, http.MethodDelete, "/classes/selected/"+primitive.NewObjectID().Hex(), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("missing id: status = %d", w.Code)
	}
	decode(t, w, &ack)
	if ack.DeletedCount != 0 {
		t.Errorf("missing id deletedCount = %d, want 0", ack.DeletedCount)
	}

	// A malformed id is a client error, not a store call.
	w = e.do(t, http.MethodDelete, "/classes/selected/not-an-oid", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed id: status = %d, want 400", w.Code)
	}
}

func TestAdminRoleUpdate(t *testing.T) {
	e := newEnv(t)
	e.addUser(t, "admin@example.com", model.RoleAdmin)
	e.addUser(t, "member@example.com", "")
	adminToken := e.token(t, "admin@example.com")

	var memberID string
	for _, u := range e.users.users {
		if u.Email == "member@example.com" {
			memberID = u.ID.Hex()
		}
	}

	w := e.do(t, http.MethodPatch, "/users", adminToken, map[string]string{
		"id":   memberID,
		"role": "instructor",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", w.Code, w.Body.String())
	}
	var ack model.UpdateAck
	decode(t, w, &ack)
	if ack.ModifiedCount != 1 {
		t.Errorf("modifiedCount = %d, want 1", ack.ModifiedCount)
	}

	role, err := service.NewUserService(e.users).ResolveRole(context.Background(), "member@example.com")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if role != model.RoleInstructor {
		t.Errorf("role after update = %q, want instructor", role)
	}
}
