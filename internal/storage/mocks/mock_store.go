package mocks

import (
	"io"

	"filebox/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(name string) (io.WriteCloser, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (m *MockStore) Open(name string) (io.ReadCloser, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockStore) Remove(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockStore) List() ([]storage.EntryInfo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.EntryInfo), args.Error(1)
}

func (m *MockStore) Path(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockStore) DiskSpace() (uint64, uint64, bool) {
	args := m.Called()
	return args.Get(0).(uint64), args.Get(1).(uint64), args.Bool(2)
}

func (m *MockStore) Ping() error {
	args := m.Called()
	return args.Error(0)
}
