// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	contract "yatta-chat/contract"
	domain "yatta-chat/domain"
	event "yatta-chat/domain/event"

	gomock "go.uber.org/mock/gomock"
)

// MockISupervisor is a mock of ISupervisor interface.
type MockISupervisor struct {
	ctrl     *gomock.Controller
	recorder *MockISupervisorMockRecorder
	isgomock struct{}
}

// MockISupervisorMockRecorder is the mock recorder for MockISupervisor.
type MockISupervisorMockRecorder struct {
	mock *MockISupervisor
}

// NewMockISupervisor creates a new mock instance.
func NewMockISupervisor(ctrl *gomock.Controller) *MockISupervisor {
	mock := &MockISupervisor{ctrl: ctrl}
	mock.recorder = &MockISupervisorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISupervisor) EXPECT() *MockISupervisorMockRecorder {
	return m.recorder
}

// Add mocks base method.
func (m *MockISupervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	m.ctrl.T.Helper()
	varargs := []any{}
	for _, a := range worker {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Add", varargs...)
	ret0, _ := ret[0].(contract.ISupervisor)
	return ret0
}

// Add indicates an expected call of Add.
func (mr *MockISupervisorMockRecorder) Add(worker ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockISupervisor)(nil).Add), worker...)
}

// Run mocks base method.
func (m *MockISupervisor) Run(ctx context.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Run", ctx)
}

// Run indicates an expected call of Run.
func (mr *MockISupervisorMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockISupervisor)(nil).Run), ctx)
}

// Start mocks base method.
func (m *MockISupervisor) Start(ctx context.Context, worker contract.Worker) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Start", ctx, worker)
}

// Start indicates an expected call of Start.
func (mr *MockISupervisorMockRecorder) Start(ctx, worker any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Start", reflect.TypeOf((*MockISupervisor)(nil).Start), ctx, worker)
}

// Stop mocks base method.
func (m *MockISupervisor) Stop() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Stop")
}

// Stop indicates an expected call of Stop.
func (mr *MockISupervisorMockRecorder) Stop() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stop", reflect.TypeOf((*MockISupervisor)(nil).Stop))
}

// MockWorker is a mock of Worker interface.
type MockWorker struct {
	ctrl     *gomock.Controller
	recorder *MockWorkerMockRecorder
	isgomock struct{}
}

// MockWorkerMockRecorder is the mock recorder for MockWorker.
type MockWorkerMockRecorder struct {
	mock *MockWorker
}

// NewMockWorker creates a new mock instance.
func NewMockWorker(ctrl *gomock.Controller) *MockWorker {
	mock := &MockWorker{ctrl: ctrl}
	mock.recorder = &MockWorkerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorker) EXPECT() *MockWorkerMockRecorder {
	return m.recorder
}

// Run mocks base method.
func (m *MockWorker) Run(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Run indicates an expected call of Run.
func (mr *MockWorkerMockRecorder) Run(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockWorker)(nil).Run), ctx)
}

// MockEventSink is a mock of EventSink interface.
type MockEventSink struct {
	ctrl     *gomock.Controller
	recorder *MockEventSinkMockRecorder
	isgomock struct{}
}

// MockEventSinkMockRecorder is the mock recorder for MockEventSink.
type MockEventSinkMockRecorder struct {
	mock *MockEventSink
}

// NewMockEventSink creates a new mock instance.
func NewMockEventSink(ctrl *gomock.Controller) *MockEventSink {
	mock := &MockEventSink{ctrl: ctrl}
	mock.recorder = &MockEventSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventSink) EXPECT() *MockEventSinkMockRecorder {
	return m.recorder
}

// Consume mocks base method.
func (m *MockEventSink) Consume(ctx context.Context, e event.DomainEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Consume", ctx, e)
	ret0, _ := ret[0].(error)
	return ret0
}

// Consume indicates an expected call of Consume.
func (mr *MockEventSinkMockRecorder) Consume(ctx, e any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consume", reflect.TypeOf((*MockEventSink)(nil).Consume), ctx, e)
}

// MockChatAPI is a mock of ChatAPI interface.
type MockChatAPI struct {
	ctrl     *gomock.Controller
	recorder *MockChatAPIMockRecorder
	isgomock struct{}
}

// MockChatAPIMockRecorder is the mock recorder for MockChatAPI.
type MockChatAPIMockRecorder struct {
	mock *MockChatAPI
}

// NewMockChatAPI creates a new mock instance.
func NewMockChatAPI(ctrl *gomock.Controller) *MockChatAPI {
	mock := &MockChatAPI{ctrl: ctrl}
	mock.recorder = &MockChatAPIMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockChatAPI) EXPECT() *MockChatAPIMockRecorder {
	return m.recorder
}

// Conversations mocks base method.
func (m *MockChatAPI) Conversations(ctx context.Context) ([]domain.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Conversations", ctx)
	ret0, _ := ret[0].([]domain.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Conversations indicates an expected call of Conversations.
func (mr *MockChatAPIMockRecorder) Conversations(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Conversations", reflect.TypeOf((*MockChatAPI)(nil).Conversations), ctx)
}

// Messages mocks base method.
func (m *MockChatAPI) Messages(ctx context.Context, conversation domain.FlexID) ([]domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Messages", ctx, conversation)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Messages indicates an expected call of Messages.
func (mr *MockChatAPIMockRecorder) Messages(ctx, conversation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Messages", reflect.TypeOf((*MockChatAPI)(nil).Messages), ctx, conversation)
}

// SendMessage mocks base method.
func (m *MockChatAPI) SendMessage(ctx context.Context, conversation domain.FlexID, text string) (domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMessage", ctx, conversation, text)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SendMessage indicates an expected call of SendMessage.
func (mr *MockChatAPIMockRecorder) SendMessage(ctx, conversation, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMessage", reflect.TypeOf((*MockChatAPI)(nil).SendMessage), ctx, conversation, text)
}

// StartOrGetConversation mocks base method.
func (m *MockChatAPI) StartOrGetConversation(ctx context.Context, targetUser domain.FlexID) (domain.Conversation, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StartOrGetConversation", ctx, targetUser)
	ret0, _ := ret[0].(domain.Conversation)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StartOrGetConversation indicates an expected call of StartOrGetConversation.
func (mr *MockChatAPIMockRecorder) StartOrGetConversation(ctx, targetUser any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StartOrGetConversation", reflect.TypeOf((*MockChatAPI)(nil).StartOrGetConversation), ctx, targetUser)
}

// MockTokenService is a mock of TokenService interface.
type MockTokenService struct {
	ctrl     *gomock.Controller
	recorder *MockTokenServiceMockRecorder
	isgomock struct{}
}

// MockTokenServiceMockRecorder is the mock recorder for MockTokenService.
type MockTokenServiceMockRecorder struct {
	mock *MockTokenService
}

// NewMockTokenService creates a new mock instance.
func NewMockTokenService(ctrl *gomock.Controller) *MockTokenService {
	mock := &MockTokenService{ctrl: ctrl}
	mock.recorder = &MockTokenServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTokenService) EXPECT() *MockTokenServiceMockRecorder {
	return m.recorder
}

// Token mocks base method.
func (m *MockTokenService) Token(ctx context.Context, conversation domain.FlexID, kind domain.CallKind, callID string) (domain.MediaRoom, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Token", ctx, conversation, kind, callID)
	ret0, _ := ret[0].(domain.MediaRoom)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Token indicates an expected call of Token.
func (mr *MockTokenServiceMockRecorder) Token(ctx, conversation, kind, callID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Token", reflect.TypeOf((*MockTokenService)(nil).Token), ctx, conversation, kind, callID)
}

// MockNotifier is a mock of Notifier interface.
type MockNotifier struct {
	ctrl     *gomock.Controller
	recorder *MockNotifierMockRecorder
	isgomock struct{}
}

// MockNotifierMockRecorder is the mock recorder for MockNotifier.
type MockNotifierMockRecorder struct {
	mock *MockNotifier
}

// NewMockNotifier creates a new mock instance.
func NewMockNotifier(ctrl *gomock.Controller) *MockNotifier {
	mock := &MockNotifier{ctrl: ctrl}
	mock.recorder = &MockNotifierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNotifier) EXPECT() *MockNotifierMockRecorder {
	return m.recorder
}

// Alert mocks base method.
func (m *MockNotifier) Alert(reason string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Alert", reason)
}

// Alert indicates an expected call of Alert.
func (mr *MockNotifierMockRecorder) Alert(reason any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Alert", reflect.TypeOf((*MockNotifier)(nil).Alert), reason)
}

// Notice mocks base method.
func (m *MockNotifier) Notice(message string) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Notice", message)
}

// Notice indicates an expected call of Notice.
func (mr *MockNotifierMockRecorder) Notice(message any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Notice", reflect.TypeOf((*MockNotifier)(nil).Notice), message)
}

// MockMediaTransport is a mock of MediaTransport interface.
type MockMediaTransport struct {
	ctrl     *gomock.Controller
	recorder *MockMediaTransportMockRecorder
	isgomock struct{}
}

// MockMediaTransportMockRecorder is the mock recorder for MockMediaTransport.
type MockMediaTransportMockRecorder struct {
	mock *MockMediaTransport
}

// NewMockMediaTransport creates a new mock instance.
func NewMockMediaTransport(ctrl *gomock.Controller) *MockMediaTransport {
	mock := &MockMediaTransport{ctrl: ctrl}
	mock.recorder = &MockMediaTransportMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMediaTransport) EXPECT() *MockMediaTransportMockRecorder {
	return m.recorder
}

// Join mocks base method.
func (m *MockMediaTransport) Join(room domain.MediaRoom) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Join", room)
	ret0, _ := ret[0].(error)
	return ret0
}

// Join indicates an expected call of Join.
func (mr *MockMediaTransportMockRecorder) Join(room any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Join", reflect.TypeOf((*MockMediaTransport)(nil).Join), room)
}

// Leave mocks base method.
func (m *MockMediaTransport) Leave() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Leave")
}

// Leave indicates an expected call of Leave.
func (mr *MockMediaTransportMockRecorder) Leave() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Leave", reflect.TypeOf((*MockMediaTransport)(nil).Leave))
}

// MockMessageLink is a mock of MessageLink interface.
type MockMessageLink struct {
	ctrl     *gomock.Controller
	recorder *MockMessageLinkMockRecorder
	isgomock struct{}
}

// MockMessageLinkMockRecorder is the mock recorder for MockMessageLink.
type MockMessageLinkMockRecorder struct {
	mock *MockMessageLink
}

// NewMockMessageLink creates a new mock instance.
func NewMockMessageLink(ctrl *gomock.Controller) *MockMessageLink {
	mock := &MockMessageLink{ctrl: ctrl}
	mock.recorder = &MockMessageLinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMessageLink) EXPECT() *MockMessageLinkMockRecorder {
	return m.recorder
}

// Conversation mocks base method.
func (m *MockMessageLink) Conversation() domain.FlexID {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Conversation")
	ret0, _ := ret[0].(domain.FlexID)
	return ret0
}

// Conversation indicates an expected call of Conversation.
func (mr *MockMessageLinkMockRecorder) Conversation() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Conversation", reflect.TypeOf((*MockMessageLink)(nil).Conversation))
}

// IsOpen mocks base method.
func (m *MockMessageLink) IsOpen() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsOpen")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsOpen indicates an expected call of IsOpen.
func (mr *MockMessageLinkMockRecorder) IsOpen() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsOpen", reflect.TypeOf((*MockMessageLink)(nil).IsOpen))
}

// Open mocks base method.
func (m *MockMessageLink) Open(ctx context.Context, conversation domain.FlexID) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Open", ctx, conversation)
}

// Open indicates an expected call of Open.
func (mr *MockMessageLinkMockRecorder) Open(ctx, conversation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Open", reflect.TypeOf((*MockMessageLink)(nil).Open), ctx, conversation)
}

// Retire mocks base method.
func (m *MockMessageLink) Retire() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Retire")
}

// Retire indicates an expected call of Retire.
func (mr *MockMessageLinkMockRecorder) Retire() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Retire", reflect.TypeOf((*MockMessageLink)(nil).Retire))
}

// Send mocks base method.
func (m *MockMessageLink) Send(ctx context.Context, text string) (domain.Message, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, text)
	ret0, _ := ret[0].(domain.Message)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Send indicates an expected call of Send.
func (mr *MockMessageLinkMockRecorder) Send(ctx, text any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockMessageLink)(nil).Send), ctx, text)
}

// SendSignal mocks base method.
func (m *MockMessageLink) SendSignal(v any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendSignal", v)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendSignal indicates an expected call of SendSignal.
func (mr *MockMessageLinkMockRecorder) SendSignal(v any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendSignal", reflect.TypeOf((*MockMessageLink)(nil).SendSignal), v)
}

// MockInboxLink is a mock of InboxLink interface.
type MockInboxLink struct {
	ctrl     *gomock.Controller
	recorder *MockInboxLinkMockRecorder
	isgomock struct{}
}

// MockInboxLinkMockRecorder is the mock recorder for MockInboxLink.
type MockInboxLinkMockRecorder struct {
	mock *MockInboxLink
}

// NewMockInboxLink creates a new mock instance.
func NewMockInboxLink(ctrl *gomock.Controller) *MockInboxLink {
	mock := &MockInboxLink{ctrl: ctrl}
	mock.recorder = &MockInboxLinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockInboxLink) EXPECT() *MockInboxLinkMockRecorder {
	return m.recorder
}

// IsOpen mocks base method.
func (m *MockInboxLink) IsOpen() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsOpen")
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsOpen indicates an expected call of IsOpen.
func (mr *MockInboxLinkMockRecorder) IsOpen() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsOpen", reflect.TypeOf((*MockInboxLink)(nil).IsOpen))
}

// Open mocks base method.
func (m *MockInboxLink) Open(ctx context.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Open", ctx)
}

// Open indicates an expected call of Open.
func (mr *MockInboxLinkMockRecorder) Open(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Open", reflect.TypeOf((*MockInboxLink)(nil).Open), ctx)
}

// Retire mocks base method.
func (m *MockInboxLink) Retire() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Retire")
}

// Retire indicates an expected call of Retire.
func (mr *MockInboxLinkMockRecorder) Retire() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Retire", reflect.TypeOf((*MockInboxLink)(nil).Retire))
}

// MockMessageArchive is a mock of MessageArchive interface.
type MockMessageArchive struct {
	ctrl     *gomock.Controller
	recorder *MockMessageArchiveMockRecorder
	isgomock struct{}
}

// MockMessageArchiveMockRecorder is the mock recorder for MockMessageArchive.
type MockMessageArchiveMockRecorder struct {
	mock *MockMessageArchive
}

// NewMockMessageArchive creates a new mock instance.
func NewMockMessageArchive(ctrl *gomock.Controller) *MockMessageArchive {
	mock := &MockMessageArchive{ctrl: ctrl}
	mock.recorder = &MockMessageArchiveMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMessageArchive) EXPECT() *MockMessageArchiveMockRecorder {
	return m.recorder
}

// History mocks base method.
func (m *MockMessageArchive) History(conversation domain.FlexID) ([]domain.Message, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "History", conversation)
	ret0, _ := ret[0].([]domain.Message)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// History indicates an expected call of History.
func (mr *MockMessageArchiveMockRecorder) History(conversation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "History", reflect.TypeOf((*MockMessageArchive)(nil).History), conversation)
}

// Store mocks base method.
func (m_2 *MockMessageArchive) Store(m domain.Message) error {
	m_2.ctrl.T.Helper()
	ret := m_2.ctrl.Call(m_2, "Store", m)
	ret0, _ := ret[0].(error)
	return ret0
}

// Store indicates an expected call of Store.
func (mr *MockMessageArchiveMockRecorder) Store(m any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Store", reflect.TypeOf((*MockMessageArchive)(nil).Store), m)
}
