package http

import (
	"cmp"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/crypto"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/service"
	"github.com/MKhiriev/go-course-catalog/internal/store"
	"github.com/MKhiriev/go-course-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryStore keeps users and courses in maps and honours the same
// contracts as the SQL repositories.
type memoryStore struct {
	mu      sync.Mutex
	users   map[int64]models.User
	courses map[int64]models.Course
	nextID  int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:   make(map[int64]models.User),
		courses: make(map[int64]models.Course),
	}
}

type memoryUsers struct{ *memoryStore }

type memoryCourses struct{ *memoryStore }

func (s memoryUsers) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.EmailAddress == user.EmailAddress {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = user
	return user, nil
}

func (s memoryUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.EmailAddress == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (s memoryCourses) withOwner(c models.Course) models.Course {
	owner := s.users[c.UserID].Public()
	c.User = &owner
	return c
}

func (s memoryCourses) ListCourses(_ context.Context) ([]models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courses := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		courses = append(courses, s.withOwner(c))
	}
	slices.SortFunc(courses, func(a, b models.Course) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
	})
	return courses, nil
}

func (s memoryCourses) FindCourseByID(_ context.Context, id int64) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return models.Course{}, store.ErrCourseNotFound
	}
	return s.withOwner(c), nil
}

func (s memoryCourses) CreateCourse(_ context.Context, course models.Course) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	course.ID = s.nextID
	s.courses[course.ID] = course
	return course.ID, nil
}

func (s memoryCourses) UpdateCourse(_ context.Context, course models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.courses[course.ID]
	if !ok || stored.UserID != course.UserID {
		return store.ErrCourseNotFound
	}
	stored.Title = course.Title
	stored.Description = course.Description
	if course.EstimatedTime != nil {
		stored.EstimatedTime = course.EstimatedTime
	}
	if course.MaterialsNeeded != nil {
		stored.MaterialsNeeded = course.MaterialsNeeded
	}
	s.courses[course.ID] = stored
	return nil
}

func (s memoryCourses) DeleteCourse(_ context.Context, id, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.courses[id]
	if !ok || stored.UserID != userID {
		return store.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

type apiClient struct {
	t      *testing.T
	router http.Handler
	mem    *memoryStore
}

// newAPI wires the real router, services, validators and bcrypt over the
// in-memory store.
func newAPI(t *testing.T) *apiClient {
	t.Helper()

	mem := newMemoryStore()
	services, err := service.NewServices(
		&store.Storages{
			UserRepository:   memoryUsers{mem},
			CourseRepository: memoryCourses{mem},
		},
		crypto.NewBcryptHasher(bcrypt.MinCost),
		config.App{Version: "test"},
		logger.Nop(),
	)
	require.NoError(t, err)

	return &apiClient{
		t:      t,
		router: NewHandler(services, config.Server{}, logger.Nop()).Init(),
		mem:    mem,
	}
}

type credentials struct{ email, password string }

func (c *apiClient) do(method, path, body string, creds *credentials) *httptest.ResponseRecorder {
	c.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if creds != nil {
		req.SetBasicAuth(creds.email, creds.password)
	}
	rr := httptest.NewRecorder()
	c.router.ServeHTTP(rr, req)
	return rr
}

func (c *apiClient) register(first, email, password string) *credentials {
	c.t.Helper()

	body, err := json.Marshal(models.UserRegistration{
		FirstName: first, LastName: "Tester", EmailAddress: email, Password: password,
	})
	require.NoError(c.t, err)

	rr := c.do(http.MethodPost, "/api/users", string(body), nil)
	require.Equal(c.t, http.StatusCreated, rr.Code, rr.Body.String())
	return &credentials{email: email, password: password}
}

func (c *apiClient) createCourse(creds *credentials, title, description string) string {
	c.t.Helper()

	body, err := json.Marshal(map[string]string{"title": title, "description": description})
	require.NoError(c.t, err)

	rr := c.do(http.MethodPost, "/api/courses", string(body), creds)
	require.Equal(c.t, http.StatusCreated, rr.Code, rr.Body.String())
	return "/" + rr.Header().Get("Location")
}

func TestAPI_RegisterThenFetchSelf(t *testing.T) {
	api := newAPI(t)

	rr := api.do(http.MethodPost, "/api/users",
		`{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com","password":"joepassword"}`, nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Empty(t, rr.Body.String())

	rr = api.do(http.MethodGet, "/api/users", "", &credentials{"joe@smith.com", "joepassword"})
	require.Equal(t, http.StatusOK, rr.Code)

	var user map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "Joe", user["firstName"])
	assert.Equal(t, "Smith", user["lastName"])
	assert.Equal(t, "joe@smith.com", user["emailAddress"])
	assert.NotContains(t, user, "password")

	stored, err := memoryUsers{api.mem}.FindUserByEmail(context.Background(), "joe@smith.com")
	require.NoError(t, err)
	assert.NotEqual(t, "joepassword", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("joepassword")))
}

func TestAPI_WrongPasswordIsDenied(t *testing.T) {
	api := newAPI(t)
	api.register("Joe", "joe@smith.com", "joepassword")

	for _, creds := range []*credentials{
		{"joe@smith.com", "wrongpassword"},
		{"nobody@smith.com", "joepassword"},
	} {
		rr := api.do(http.MethodGet, "/api/users", "", creds)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"message":"Access Denied"}`, rr.Body.String())
	}
}

func TestAPI_DuplicateEmailRejected(t *testing.T) {
	api := newAPI(t)
	api.register("Joe", "joe@smith.com", "joepassword")

	rr := api.do(http.MethodPost, "/api/users",
		`{"firstName":"Other","lastName":"Joe","emailAddress":"joe@smith.com","password":"otherpassword"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"\"emailAddress\" is already in use"}`, rr.Body.String())
}

func TestAPI_PasswordLengthBounds(t *testing.T) {
	api := newAPI(t)

	for _, password := range []string{"short", "waytoolongpassword1234"} {
		rr := api.do(http.MethodPost, "/api/users",
			`{"firstName":"Joe","lastName":"Smith","emailAddress":"joe@smith.com","password":"`+password+`"}`, nil)

		require.Equal(t, http.StatusBadRequest, rr.Code, password)
		var resp models.ErrorsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Errors, 1)
		assert.Contains(t, resp.Errors[0], "password")
	}
}

func TestAPI_CoursesSortedByTitle(t *testing.T) {
	api := newAPI(t)
	joe := api.register("Joe", "joe@smith.com", "joepassword")

	for _, title := range []string{"Learn How to Program", "Build a Basic Bookcase", "Learn How to Test Programs"} {
		api.createCourse(joe, title, "description")
	}

	rr := api.do(http.MethodGet, "/api/courses", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &courses))
	titles := make([]string, 0, len(courses))
	for _, c := range courses {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"Build a Basic Bookcase", "Learn How to Program", "Learn How to Test Programs"}, titles)
}

func TestAPI_EmptyCatalogIsArray(t *testing.T) {
	api := newAPI(t)

	rr := api.do(http.MethodGet, "/api/courses", "", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestAPI_ForeignCourseIsForbidden(t *testing.T) {
	api := newAPI(t)
	joe := api.register("Joe", "joe@smith.com", "joepassword")
	sally := api.register("Sally", "sally@jones.com", "sallypassword")
	location := api.createCourse(joe, "T", "D")

	rr := api.do(http.MethodPut, location, `{"title":"X","description":"Y"}`, sally)
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"error":"authorized user does not own this course"}`, rr.Body.String())

	rr = api.do(http.MethodDelete, location, "", sally)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = api.do(http.MethodGet, location, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var course models.Course
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &course))
	assert.Equal(t, "T", course.Title)
}

func TestAPI_MissingCourseIsNotFound(t *testing.T) {
	api := newAPI(t)
	joe := api.register("Joe", "joe@smith.com", "joepassword")

	rr := api.do(http.MethodPut, "/api/courses/999", `{"title":"X","description":"Y"}`, joe)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"there is no existing course with that ID"}`, rr.Body.String())

	rr = api.do(http.MethodDelete, "/api/courses/999", "", joe)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = api.do(http.MethodGet, "/api/courses/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"no course matches the provided ID"}`, rr.Body.String())
}

func TestAPI_CourseRoundTrip(t *testing.T) {
	api := newAPI(t)
	joe := api.register("Joe", "joe@smith.com", "joepassword")

	location := api.createCourse(joe, "T", "D")

	rr := api.do(http.MethodGet, location, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var course map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &course))
	assert.Equal(t, "T", course["title"])
	assert.Equal(t, "D", course["description"])

	self := api.do(http.MethodGet, "/api/users", "", joe)
	var me models.User
	require.NoError(t, json.Unmarshal(self.Body.Bytes(), &me))
	assert.EqualValues(t, me.ID, course["userId"])

	owner, ok := course["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "joe@smith.com", owner["emailAddress"])
	assert.NotContains(t, owner, "password")
}

func TestAPI_ClientOwnerIsIgnored(t *testing.T) {
	api := newAPI(t)
	joe := api.register("Joe", "joe@smith.com", "joepassword")
	api.register("Sally", "sally@jones.com", "sallypassword")

	rr := api.do(http.MethodPost, "/api/courses", `{"title":"T","description":"D","userId":2}`, joe)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = api.do(http.MethodGet, "/"+rr.Header().Get("Location"), "", nil)
	var course models.Course
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &course))
	assert.Equal(t, int64(1), course.UserID)
}

func TestAPI_UnauthenticatedCreateStoresNothing(t *testing.T) {
	api := newAPI(t)

	rr := api.do(http.MethodPost, "/api/courses", `{"title":"T","description":"D"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"message":"Access Denied"}`, rr.Body.String())
	assert.Empty(t, api.mem.courses)
}

func TestAPI_UpdateKeepsOmittedOptionalFields(t *testing.T) {
	api := newAPI(t)
	joe := api.register("Joe", "joe@smith.com", "joepassword")

	rr := api.do(http.MethodPost, "/api/courses",
		`{"title":"T","description":"D","estimatedTime":"3 hours","materialsNeeded":"wood"}`, joe)
	require.Equal(t, http.StatusCreated, rr.Code)
	location := "/" + rr.Header().Get("Location")

	rr = api.do(http.MethodPut, location, `{"title":"T2","description":"D2","estimatedTime":null}`, joe)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = api.do(http.MethodGet, location, "", nil)
	var course models.Course
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &course))
	assert.Equal(t, "T2", course.Title)
	require.NotNil(t, course.EstimatedTime)
	assert.Equal(t, "3 hours", *course.EstimatedTime)
	require.NotNil(t, course.MaterialsNeeded)
	assert.Equal(t, "wood", *course.MaterialsNeeded)
}

func TestAPI_ValidationRunsBeforeOwnership(t *testing.T) {
	api := newAPI(t)
	joe := api.register("Joe", "joe@smith.com", "joepassword")
	sally := api.register("Sally", "sally@jones.com", "sallypassword")
	location := api.createCourse(joe, "T", "D")

	rr := api.do(http.MethodPut, location, `{"title":""}`, sally)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errors":["Please provide a value for \"title\"","Please provide a value for \"description\""]}`, rr.Body.String())

	rr = api.do(http.MethodDelete, location, "", joe)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, api.mem.courses)
}

func TestAPI_EmptyBodyReportsMissingFields(t *testing.T) {
	api := newAPI(t)

	rr := api.do(http.MethodPost, "/api/users", "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errors":[
		"Please provide a value for \"firstName\"",
		"Please provide a value for \"lastName\"",
		"Please provide a value for \"emailAddress\"",
		"Please provide a valid email address for \"emailAddress\"",
		"Please provide a value for \"password\"",
		"Please provide a value for \"password\" that is between 8 and 20 characters in length"
	]}`, rr.Body.String())

	joe := api.register("Joe", "joe@smith.com", "joepassword")
	location := api.createCourse(joe, "T", "D")
	wantCourseErrors := `{"errors":["Please provide a value for \"title\"","Please provide a value for \"description\""]}`

	rr = api.do(http.MethodPost, "/api/courses", "", joe)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, wantCourseErrors, rr.Body.String())

	rr = api.do(http.MethodPut, location, "", joe)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, wantCourseErrors, rr.Body.String())

	assert.Len(t, api.mem.courses, 1)
}

func TestAPI_MultibytePasswordWithinCharacterLimit(t *testing.T) {
	api := newAPI(t)

	// 20 characters, 80 bytes
	password := strings.Repeat("😀", 20)
	joe := api.register("Joe", "joe@smith.com", password)

	rr := api.do(http.MethodGet, "/api/users", "", joe)
	assert.Equal(t, http.StatusOK, rr.Code)
}
