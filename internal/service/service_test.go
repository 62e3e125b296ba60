package service_test

import (
	"mime/multipart"

	"github.com/BloggingApp/blog-service/internal/repository/repotest"
	"github.com/BloggingApp/blog-service/internal/service"
	"go.uber.org/zap"
)

type fakeStorage struct {
	uploads []string
}

func (s *fakeStorage) Upload(path string, _ multipart.File, header *multipart.FileHeader) (string, error) {
	url := "https://cdn.test/" + path + "/" + header.Filename
	s.uploads = append(s.uploads, url)
	return url, nil
}

func newTestService(store *repotest.Store) *service.Service {
	services, _ := newTestServiceWithStorage(store)
	return services
}

func newTestServiceWithStorage(store *repotest.Store) (*service.Service, *fakeStorage) {
	storage := &fakeStorage{}
	return service.New(zap.NewNop(), store.Repository(), storage), storage
}
