package api

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"smartenum/internal/reference"
)

// Service — то, что обслуживает HTTP: каталог семейств и генератор id запросов.
type Service struct {
	Enums reference.Catalog

	mu      sync.Mutex // ulid.Monotonic не потокобезопасен
	entropy io.Reader
}

func NewService(enums reference.Catalog) *Service {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		Enums:   enums,
		entropy: ulid.Monotonic(src, 0),
	}
}

func (s *Service) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}
