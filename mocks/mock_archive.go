// Code generated by MockGen. DO NOT EDIT.
// Source: archive.go
//
// Generated by this command:
//
//	mockgen -source=archive.go -destination=../mocks/mock_archive.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"
	domain "yatta-chat/domain"

	gomock "go.uber.org/mock/gomock"
)

// MockIMessageArchive is a mock of IMessageArchive interface.
type MockIMessageArchive struct {
	ctrl     *gomock.Controller
	recorder *MockIMessageArchiveMockRecorder
	isgomock struct{}
}

// MockIMessageArchiveMockRecorder is the mock recorder for MockIMessageArchive.
type MockIMessageArchiveMockRecorder struct {
	mock *MockIMessageArchive
}

// NewMockIMessageArchive creates a new mock instance.
func NewMockIMessageArchive(ctrl *gomock.Controller) *MockIMessageArchive {
	mock := &MockIMessageArchive{ctrl: ctrl}
	mock.recorder = &MockIMessageArchiveMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIMessageArchive) EXPECT() *MockIMessageArchiveMockRecorder {
	return m.recorder
}

// History mocks base method.
func (m *MockIMessageArchive) History(conversation domain.FlexID) ([]domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "History", conversation)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// History indicates an expected call of History.
func (mr *MockIMessageArchiveMockRecorder) History(conversation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "History", reflect.TypeOf((*MockIMessageArchive)(nil).History), conversation)
}

// Store mocks base method.
func (m_2 *MockIMessageArchive) Store(m domain.Message) error {
	m_2.ctrl.T.Helper()
	ret := m_2.ctrl.Call(m_2, "Store", m)
	ret0, _ := ret[0].(error)
	return ret0
}

// Store indicates an expected call of Store.
func (mr *MockIMessageArchiveMockRecorder) Store(m any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Store", reflect.TypeOf((*MockIMessageArchive)(nil).Store), m)
}
