package apitests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
)

// fakeGitHub serves just enough of the REST API for the suite to run against.
type fakeGitHub struct {
	accounts     map[string]string
	lock         sync.Mutex
	createdGists []string
	deletedGists []string
}

func newFakeGitHub() *fakeGitHub {
	return &fakeGitHub{accounts: map[string]string{
		"octocat":   "User",
		"github":    "Organization",
		"microsoft": "Organization",
	}}
}

func (f *fakeGitHub) start() *httptest.Server {
	router := mux.NewRouter()
	router.HandleFunc("/users/{username}", f.handleUser).Methods(http.MethodGet)
	router.HandleFunc("/search/repositories", f.handleSearch).Methods(http.MethodGet)
	router.HandleFunc("/rate_limit", f.handleRateLimit).Methods(http.MethodGet)
	router.HandleFunc("/gists", f.handleCreateGist).Methods(http.MethodPost)
	router.HandleFunc("/gists/{id}", f.handleDeleteGist).Methods(http.MethodDelete)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { notFound(w) })
	return httptest.NewServer(router)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
}

func (f *fakeGitHub) handleUser(w http.ResponseWriter, r *http.Request) {
	login := mux.Vars(r)["username"]
	accountType, ok := f.accounts[strings.ToLower(login)]
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"login":        strings.ToLower(login),
		"id":           len(login) * 1000,
		"avatar_url":   "https://avatars.example/" + login,
		"type":         accountType,
		"public_repos": 8,
	})
}

func (f *fakeGitHub) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	perPage, err := strconv.Atoi(r.URL.Query().Get("per_page"))
	if err != nil {
		perPage = 30
	}
	items := []map[string]interface{}{}
	total := 0
	if query != "nonexistenttech123" {
		total = 1000
		for i := 0; i < perPage; i++ {
			items = append(items, map[string]interface{}{
				"name":             query + strconv.Itoa(i),
				"full_name":        "someone/" + query + strconv.Itoa(i),
				"html_url":         "https://github.example/someone/" + query,
				"stargazers_count": 10 * i,
			})
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total_count":        total,
		"incomplete_results": false,
		"items":              items,
	})
}

func (f *fakeGitHub) handleRateLimit(w http.ResponseWriter, r *http.Request) {
	core := map[string]int{"limit": 60, "remaining": 59, "used": 1, "reset": 1700000000}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"resources": map[string]interface{}{"core": core},
		"rate":      core,
	})
}

func (f *fakeGitHub) handleCreateGist(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Requires authentication"})
		return
	}
	var req struct {
		Description string                       `json:"description"`
		Public      bool                         `json:"public"`
		Files       map[string]map[string]string `json:"files"`
	}
	body, _ := io.ReadAll(r.Body)
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"message": err.Error()})
		return
	}
	f.lock.Lock()
	id := "gist" + strconv.Itoa(len(f.createdGists)+1)
	f.createdGists = append(f.createdGists, id)
	f.lock.Unlock()

	files := map[string]interface{}{}
	for name, file := range req.Files {
		files[name] = map[string]interface{}{"filename": name, "content": file["content"]}
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":          id,
		"description": req.Description,
		"public":      req.Public,
		"files":       files,
	})
}

func (f *fakeGitHub) handleDeleteGist(w http.ResponseWriter, r *http.Request) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.deletedGists = append(f.deletedGists, mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}
