// internal/mcp/registry.go
// Registri nama tool -> handler, dicocokkan dengan katalog mcp-tools.json

package mcp

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
)

type Registry struct {
	mu   sync.RWMutex
	data map[string]http.Handler
}

var reg = &Registry{data: make(map[string]http.Handler)}

// Register mendaftarkan handler; nama yang sama menimpa handler lama.
func Register(name string, h http.Handler) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.data[name] = h
}

func RegisterFunc(name string, fn func(http.ResponseWriter, *http.Request)) {
	Register(name, http.HandlerFunc(fn))
}

func Get(name string) (http.Handler, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	h, ok := reg.data[name]
	return h, ok
}

// List mengembalikan nama tool terdaftar, terurut.
func List() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	keys := make([]string, 0, len(reg.data))
	for k := range reg.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToolInfo = entri katalog + status registrasi runtime.
type ToolInfo struct {
	ToolDef
	Registered bool `json:"registered"`
}

// Catalog menggabungkan katalog dan registry. Tool yang hanya ada di registry
// ikut ditampilkan tanpa deskripsi.
func Catalog() ([]ToolInfo, error) {
	defs, err := LoadToolDefs()
	if err != nil {
		return nil, err
	}
	names := List()
	registered := make(map[string]bool, len(names))
	for _, n := range names {
		registered[n] = true
	}
	out := make([]ToolInfo, 0, len(defs)+len(names))
	for _, d := range defs {
		out = append(out, ToolInfo{ToolDef: d, Registered: registered[d.Name]})
		delete(registered, d.Name)
	}
	for _, n := range names {
		if registered[n] {
			out = append(out, ToolInfo{ToolDef: ToolDef{Name: n}, Registered: true})
		}
	}
	return out, nil
}

// VerifyCatalog gagal kalau ada tool di katalog yang belum punya handler.
// Dipanggil saat startup (fail-fast).
func VerifyCatalog() error {
	infos, err := Catalog()
	if err != nil {
		return err
	}
	var missing []string
	for _, t := range infos {
		if !t.Registered {
			missing = append(missing, t.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("catalog tools without handler: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Serve mengeksekusi handler untuk tool 'name'; 404 kalau tidak ada.
func Serve(w http.ResponseWriter, r *http.Request, name string) {
	if h, ok := Get(name); ok {
		h.ServeHTTP(w, r)
		return
	}
	http.Error(w, "tool not found: "+name, http.StatusNotFound)
}
