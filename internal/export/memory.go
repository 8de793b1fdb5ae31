package export

import (
	"context"
	"fmt"
	"sync"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
)

// MemorySink keeps every saved file; useful for tests and dry runs.
type MemorySink struct {
	mu    sync.Mutex
	files []apiclient.File
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Save(_ context.Context, f *apiclient.File) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *f
	cp.Data = append([]byte(nil), f.Data...)
	s.files = append(s.files, cp)
	return fmt.Sprintf("memory:%s", f.Name), nil
}

func (s *MemorySink) Files() []apiclient.File {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]apiclient.File(nil), s.files...)
}
