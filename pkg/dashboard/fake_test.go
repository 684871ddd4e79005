package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"farmdash/entities"
	"farmdash/pkg/client"
)

// fakeAPI is an in-memory backend speaking the {success, data} contract.
type fakeAPI struct {
	mu    sync.Mutex
	seq   int
	crops []entities.Crop
	acts  []entities.Activity
	res   []entities.Resource
	calls map[string]int
	fail  map[string]int
	last  map[string]json.RawMessage
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: map[string]int{}, fail: map[string]int{}, last: map[string]json.RawMessage{}}
}

func (f *fakeAPI) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

// failOn makes every request matching key answer with status.
func (f *fakeAPI) failOn(key string, status int) {
	f.mu.Lock()
	f.fail[key] = status
	f.mu.Unlock()
}

func (f *fakeAPI) lastBody(key string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	var m map[string]any
	_ = json.Unmarshal(f.last[key], &m)
	return m
}

func (f *fakeAPI) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func day(s string) time.Time {
	t, err := entities.ParseDateFromInput(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (f *fakeAPI) seedCrop(name, variety, plant, harvest, status string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := entities.Crop{ID: f.nextID("crop"), Name: name, Variety: variety, PlantingDate: day(plant), HarvestDate: day(harvest), Status: status}
	f.crops = append(f.crops, c)
	return c.ID
}

func (f *fakeAPI) seedActivity(desc, date, cropID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := entities.Activity{ID: f.nextID("act"), Description: desc, Date: day(date), CropID: cropID}
	f.acts = append(f.acts, a)
	return a.ID
}

func (f *fakeAPI) seedResource(name string, qty float64, typ, cropID string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := entities.Resource{ID: f.nextID("res"), Name: name, Quantity: qty, Type: typ, CropID: cropID}
	f.res = append(f.res, r)
	return r.ID
}

func (f *fakeAPI) cropByID(id string) *entities.Crop {
	for i := range f.crops {
		if f.crops[i].ID == id {
			c := f.crops[i]
			return &c
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	coll, id := parts[0], ""
	if len(parts) > 1 && parts[1] != "all" {
		id = parts[1]
	}
	key := r.Method + " /" + coll
	if id != "" {
		key += "/:id"
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[key]++
	if status, ok := f.fail[key]; ok {
		writeJSON(w, status, entities.Fail("boom: "+key))
		return
	}
	var raw json.RawMessage
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&raw)
		f.last[key] = raw
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, entities.OK(f.list(coll)))
	case http.MethodPost:
		writeJSON(w, http.StatusCreated, entities.OK(f.create(coll, raw)))
	case http.MethodPut:
		if !f.update(coll, id, raw) {
			writeJSON(w, http.StatusNotFound, entities.Fail("not found"))
			return
		}
		writeJSON(w, http.StatusOK, entities.OK(id))
	case http.MethodDelete:
		if !f.remove(coll, id) {
			writeJSON(w, http.StatusNotFound, entities.Fail("not found"))
			return
		}
		writeJSON(w, http.StatusOK, entities.OK(id))
	}
}

func (f *fakeAPI) list(coll string) any {
	switch coll {
	case "crops":
		return append([]entities.Crop{}, f.crops...)
	case "activities":
		out := []entities.ActivityView{}
		for _, a := range f.acts {
			a.Crop = f.cropByID(a.CropID)
			out = append(out, a.View())
		}
		return out
	}
	out := []entities.ResourceView{}
	for _, r := range f.res {
		r.Crop = f.cropByID(r.CropID)
		out = append(out, r.View())
	}
	return out
}

func (f *fakeAPI) create(coll string, raw json.RawMessage) string {
	switch coll {
	case "crops":
		var in entities.CropInput
		_ = json.Unmarshal(raw, &in)
		c := entities.Crop{ID: f.nextID("crop")}
		c.Apply(in)
		f.crops = append(f.crops, c)
		return c.ID
	case "activities":
		var in entities.ActivityInput
		_ = json.Unmarshal(raw, &in)
		a := entities.Activity{ID: f.nextID("act")}
		a.Apply(in)
		f.acts = append(f.acts, a)
		return a.ID
	}
	var in entities.ResourceInput
	_ = json.Unmarshal(raw, &in)
	r := entities.Resource{ID: f.nextID("res")}
	r.Apply(in)
	f.res = append(f.res, r)
	return r.ID
}

func (f *fakeAPI) update(coll, id string, raw json.RawMessage) bool {
	switch coll {
	case "crops":
		for i := range f.crops {
			if f.crops[i].ID == id {
				var in entities.CropInput
				_ = json.Unmarshal(raw, &in)
				f.crops[i].Apply(in)
				return true
			}
		}
	case "activities":
		for i := range f.acts {
			if f.acts[i].ID == id {
				var in entities.ActivityInput
				_ = json.Unmarshal(raw, &in)
				f.acts[i].Apply(in)
				return true
			}
		}
	case "resources":
		for i := range f.res {
			if f.res[i].ID == id {
				var in entities.ResourceInput
				_ = json.Unmarshal(raw, &in)
				f.res[i].Apply(in)
				return true
			}
		}
	}
	return false
}

func (f *fakeAPI) remove(coll, id string) bool {
	switch coll {
	case "crops":
		for i := range f.crops {
			if f.crops[i].ID == id {
				f.crops = append(f.crops[:i], f.crops[i+1:]...)
				return true
			}
		}
	case "activities":
		for i := range f.acts {
			if f.acts[i].ID == id {
				f.acts = append(f.acts[:i], f.acts[i+1:]...)
				return true
			}
		}
	case "resources":
		for i := range f.res {
			if f.res[i].ID == id {
				f.res = append(f.res[:i], f.res[i+1:]...)
				return true
			}
		}
	}
	return false
}

// fixedNow is the wall clock every app under test sees.
var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) (*fakeAPI, *App) {
	t.Helper()
	api := newFakeAPI()
	srv := httptest.NewServer(api)
	c := client.New(srv.URL)
	app := NewApp(c, AppOptions{Now: func() time.Time { return fixedNow }, Location: time.UTC})
	t.Cleanup(func() {
		app.Close()
		srv.Close()
	})
	return api, app
}
