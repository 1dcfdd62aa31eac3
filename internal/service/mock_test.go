package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kanban-workspace-api/internal/domain"
	"kanban-workspace-api/internal/notifier"
	"kanban-workspace-api/internal/repository"
)

// newTxDB opens an in-memory database used only to carry transactions.
// Repositories are mocked, so no tables are migrated.
func newTxDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

// ctxWithUser builds a context carrying the authenticated user id the way the
// auth middleware does
func ctxWithUser(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), "user_id", userID)
}

// MockNotifier records every published event
type MockNotifier struct {
	mu     sync.Mutex
	Events []PublishedEvent
}

type PublishedEvent struct {
	Topic string
	Event notifier.Event
}

func (m *MockNotifier) Publish(ctx context.Context, topic string, event notifier.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{Topic: topic, Event: event})
}

func (m *MockNotifier) Types() []notifier.EventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]notifier.EventType, len(m.Events))
	for i, e := range m.Events {
		types[i] = e.Event.Type
	}
	return types
}

// MockWorkspaceRepository is a mock implementation of WorkspaceRepository
type MockWorkspaceRepository struct {
	CreateFunc        func(ctx context.Context, workspace *domain.Workspace) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	FindByUserFunc    func(ctx context.Context, userID uuid.UUID) ([]*domain.Workspace, error)
	UpdateFunc        func(ctx context.Context, workspace *domain.Workspace) error
	DeleteCascadeFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *MockWorkspaceRepository) WithTx(tx *gorm.DB) repository.WorkspaceRepository { return m }

func (m *MockWorkspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, workspace)
	}
	return nil
}

func (m *MockWorkspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockWorkspaceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Workspace, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockWorkspaceRepository) Update(ctx context.Context, workspace *domain.Workspace) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, workspace)
	}
	return nil
}

func (m *MockWorkspaceRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

// MockWorkspaceMemberRepository is a mock implementation of WorkspaceMemberRepository
type MockWorkspaceMemberRepository struct {
	CreateFunc                 func(ctx context.Context, member *domain.WorkspaceMember) error
	FindByWorkspaceAndUserFunc func(ctx context.Context, workspaceID, userID uuid.UUID) (*domain.WorkspaceMember, error)
	FindByWorkspaceFunc        func(ctx context.Context, workspaceID uuid.UUID) ([]*domain.WorkspaceMember, error)
	GetRoleFunc                func(ctx context.Context, workspaceID, userID uuid.UUID) (domain.WorkspaceRole, error)
	UpdateRoleFunc             func(ctx context.Context, workspaceID, userID uuid.UUID, role domain.WorkspaceRole) error
	DeleteFunc                 func(ctx context.Context, workspaceID, userID uuid.UUID) error
	CountByWorkspaceFunc       func(ctx context.Context, workspaceID uuid.UUID) (int64, error)
	CountByRoleFunc            func(ctx context.Context, workspaceID uuid.UUID, role domain.WorkspaceRole) (int64, error)
}

func (m *MockWorkspaceMemberRepository) WithTx(tx *gorm.DB) repository.WorkspaceMemberRepository {
	return m
}

func (m *MockWorkspaceMemberRepository) Create(ctx context.Context, member *domain.WorkspaceMember) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	return nil
}

func (m *MockWorkspaceMemberRepository) FindByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) (*domain.WorkspaceMember, error) {
	if m.FindByWorkspaceAndUserFunc != nil {
		return m.FindByWorkspaceAndUserFunc(ctx, workspaceID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockWorkspaceMemberRepository) FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.WorkspaceMember, error) {
	if m.FindByWorkspaceFunc != nil {
		return m.FindByWorkspaceFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *MockWorkspaceMemberRepository) GetRole(ctx context.Context, workspaceID, userID uuid.UUID) (domain.WorkspaceRole, error) {
	if m.GetRoleFunc != nil {
		return m.GetRoleFunc(ctx, workspaceID, userID)
	}
	return "", gorm.ErrRecordNotFound
}

func (m *MockWorkspaceMemberRepository) UpdateRole(ctx context.Context, workspaceID, userID uuid.UUID, role domain.WorkspaceRole) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, workspaceID, userID, role)
	}
	return nil
}

func (m *MockWorkspaceMemberRepository) Delete(ctx context.Context, workspaceID, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, workspaceID, userID)
	}
	return nil
}

func (m *MockWorkspaceMemberRepository) CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	if m.CountByWorkspaceFunc != nil {
		return m.CountByWorkspaceFunc(ctx, workspaceID)
	}
	return 0, nil
}

func (m *MockWorkspaceMemberRepository) CountByRole(ctx context.Context, workspaceID uuid.UUID, role domain.WorkspaceRole) (int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx, workspaceID, role)
	}
	return 0, nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc          func(ctx context.Context, board *domain.Board) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByWorkspaceFunc func(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Board, error)
	UpdateFunc          func(ctx context.Context, board *domain.Board) error
	DeleteCascadeFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBoardRepository) WithTx(tx *gorm.DB) repository.BoardRepository { return m }

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBoardRepository) FindByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.Board, error) {
	if m.FindByWorkspaceFunc != nil {
		return m.FindByWorkspaceFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return nil
}

// MockBoardMemberRepository is a mock implementation of BoardMemberRepository
type MockBoardMemberRepository struct {
	CreateFunc                   func(ctx context.Context, member *domain.BoardMember) error
	FindByBoardAndUserFunc       func(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error)
	FindByBoardFunc              func(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error)
	GetRoleFunc                  func(ctx context.Context, boardID, userID uuid.UUID) (domain.BoardRole, error)
	UpdateRoleFunc               func(ctx context.Context, boardID, userID uuid.UUID, role domain.BoardRole) error
	DeleteFunc                   func(ctx context.Context, boardID, userID uuid.UUID) error
	DeleteByWorkspaceAndUserFunc func(ctx context.Context, workspaceID, userID uuid.UUID) error
	CountByBoardFunc             func(ctx context.Context, boardID uuid.UUID) (int64, error)
	CountByRoleFunc              func(ctx context.Context, boardID uuid.UUID, role domain.BoardRole) (int64, error)
}

func (m *MockBoardMemberRepository) WithTx(tx *gorm.DB) repository.BoardMemberRepository { return m }

func (m *MockBoardMemberRepository) Create(ctx context.Context, member *domain.BoardMember) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, member)
	}
	return nil
}

func (m *MockBoardMemberRepository) FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.BoardMember, error) {
	if m.FindByBoardAndUserFunc != nil {
		return m.FindByBoardAndUserFunc(ctx, boardID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBoardMemberRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardMember, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockBoardMemberRepository) GetRole(ctx context.Context, boardID, userID uuid.UUID) (domain.BoardRole, error) {
	if m.GetRoleFunc != nil {
		return m.GetRoleFunc(ctx, boardID, userID)
	}
	return "", gorm.ErrRecordNotFound
}

func (m *MockBoardMemberRepository) UpdateRole(ctx context.Context, boardID, userID uuid.UUID, role domain.BoardRole) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, boardID, userID, role)
	}
	return nil
}

func (m *MockBoardMemberRepository) Delete(ctx context.Context, boardID, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, boardID, userID)
	}
	return nil
}

func (m *MockBoardMemberRepository) DeleteByWorkspaceAndUser(ctx context.Context, workspaceID, userID uuid.UUID) error {
	if m.DeleteByWorkspaceAndUserFunc != nil {
		return m.DeleteByWorkspaceAndUserFunc(ctx, workspaceID, userID)
	}
	return nil
}

func (m *MockBoardMemberRepository) CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	if m.CountByBoardFunc != nil {
		return m.CountByBoardFunc(ctx, boardID)
	}
	return 0, nil
}

func (m *MockBoardMemberRepository) CountByRole(ctx context.Context, boardID uuid.UUID, role domain.BoardRole) (int64, error) {
	if m.CountByRoleFunc != nil {
		return m.CountByRoleFunc(ctx, boardID, role)
	}
	return 0, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, user *domain.User) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	FindByIDsFunc   func(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error)
	ExistsFunc      func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

// MockWorkspaceInviteRepository is a mock implementation of WorkspaceInviteRepository
type MockWorkspaceInviteRepository struct {
	CreateFunc                           func(ctx context.Context, invite *domain.WorkspaceInvite) error
	UpdateFunc                           func(ctx context.Context, invite *domain.WorkspaceInvite) error
	FindByIDFunc                         func(ctx context.Context, id uuid.UUID) (*domain.WorkspaceInvite, error)
	FindPendingByWorkspaceAndInviteeFunc func(ctx context.Context, workspaceID, inviteeID uuid.UUID) (*domain.WorkspaceInvite, error)
	FindPendingByWorkspaceFunc           func(ctx context.Context, workspaceID uuid.UUID) ([]*domain.WorkspaceInvite, error)
	FindPendingByInviteeFunc             func(ctx context.Context, inviteeID uuid.UUID) ([]*domain.WorkspaceInvite, error)
	FindStalePendingFunc                 func(ctx context.Context, now time.Time) ([]*domain.WorkspaceInvite, error)
}

func (m *MockWorkspaceInviteRepository) WithTx(tx *gorm.DB) repository.WorkspaceInviteRepository {
	return m
}

func (m *MockWorkspaceInviteRepository) Create(ctx context.Context, invite *domain.WorkspaceInvite) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, invite)
	}
	return nil
}

func (m *MockWorkspaceInviteRepository) Update(ctx context.Context, invite *domain.WorkspaceInvite) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, invite)
	}
	return nil
}

func (m *MockWorkspaceInviteRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.WorkspaceInvite, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockWorkspaceInviteRepository) FindPendingByWorkspaceAndInvitee(ctx context.Context, workspaceID, inviteeID uuid.UUID) (*domain.WorkspaceInvite, error) {
	if m.FindPendingByWorkspaceAndInviteeFunc != nil {
		return m.FindPendingByWorkspaceAndInviteeFunc(ctx, workspaceID, inviteeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockWorkspaceInviteRepository) FindPendingByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]*domain.WorkspaceInvite, error) {
	if m.FindPendingByWorkspaceFunc != nil {
		return m.FindPendingByWorkspaceFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *MockWorkspaceInviteRepository) FindPendingByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]*domain.WorkspaceInvite, error) {
	if m.FindPendingByInviteeFunc != nil {
		return m.FindPendingByInviteeFunc(ctx, inviteeID)
	}
	return nil, nil
}

func (m *MockWorkspaceInviteRepository) FindStalePending(ctx context.Context, now time.Time) ([]*domain.WorkspaceInvite, error) {
	if m.FindStalePendingFunc != nil {
		return m.FindStalePendingFunc(ctx, now)
	}
	return nil, nil
}

// MockBoardInviteRepository is a mock implementation of BoardInviteRepository
type MockBoardInviteRepository struct {
	CreateFunc                       func(ctx context.Context, invite *domain.BoardInvite) error
	UpdateFunc                       func(ctx context.Context, invite *domain.BoardInvite) error
	FindByIDFunc                     func(ctx context.Context, id uuid.UUID) (*domain.BoardInvite, error)
	FindPendingByBoardAndInviteeFunc func(ctx context.Context, boardID, inviteeID uuid.UUID) (*domain.BoardInvite, error)
	FindPendingByBoardFunc           func(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardInvite, error)
	FindPendingByInviteeFunc         func(ctx context.Context, inviteeID uuid.UUID) ([]*domain.BoardInvite, error)
	FindStalePendingFunc             func(ctx context.Context, now time.Time) ([]*domain.BoardInvite, error)
}

func (m *MockBoardInviteRepository) WithTx(tx *gorm.DB) repository.BoardInviteRepository { return m }

func (m *MockBoardInviteRepository) Create(ctx context.Context, invite *domain.BoardInvite) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, invite)
	}
	return nil
}

func (m *MockBoardInviteRepository) Update(ctx context.Context, invite *domain.BoardInvite) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, invite)
	}
	return nil
}

func (m *MockBoardInviteRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.BoardInvite, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBoardInviteRepository) FindPendingByBoardAndInvitee(ctx context.Context, boardID, inviteeID uuid.UUID) (*domain.BoardInvite, error) {
	if m.FindPendingByBoardAndInviteeFunc != nil {
		return m.FindPendingByBoardAndInviteeFunc(ctx, boardID, inviteeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBoardInviteRepository) FindPendingByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.BoardInvite, error) {
	if m.FindPendingByBoardFunc != nil {
		return m.FindPendingByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockBoardInviteRepository) FindPendingByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]*domain.BoardInvite, error) {
	if m.FindPendingByInviteeFunc != nil {
		return m.FindPendingByInviteeFunc(ctx, inviteeID)
	}
	return nil, nil
}

func (m *MockBoardInviteRepository) FindStalePending(ctx context.Context, now time.Time) ([]*domain.BoardInvite, error) {
	if m.FindStalePendingFunc != nil {
		return m.FindStalePendingFunc(ctx, now)
	}
	return nil, nil
}

// MockKanbanListRepository is a mock implementation of KanbanListRepository
type MockKanbanListRepository struct {
	CreateFunc      func(ctx context.Context, list *domain.KanbanList) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.KanbanList, error)
	FindByBoardFunc func(ctx context.Context, boardID uuid.UUID) ([]*domain.KanbanList, error)
	SaveFunc        func(ctx context.Context, list *domain.KanbanList) error
	SaveAllFunc     func(ctx context.Context, lists []*domain.KanbanList) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockKanbanListRepository) WithTx(tx *gorm.DB) repository.KanbanListRepository { return m }

func (m *MockKanbanListRepository) Create(ctx context.Context, list *domain.KanbanList) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, list)
	}
	return nil
}

func (m *MockKanbanListRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.KanbanList, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockKanbanListRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.KanbanList, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockKanbanListRepository) Save(ctx context.Context, list *domain.KanbanList) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, list)
	}
	return nil
}

func (m *MockKanbanListRepository) SaveAll(ctx context.Context, lists []*domain.KanbanList) error {
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, lists)
	}
	return nil
}

func (m *MockKanbanListRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockKanbanCardRepository is a mock implementation of KanbanCardRepository
type MockKanbanCardRepository struct {
	CreateFunc       func(ctx context.Context, card *domain.KanbanCard) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.KanbanCard, error)
	FindByListFunc   func(ctx context.Context, listID uuid.UUID) ([]*domain.KanbanCard, error)
	FindByBoardFunc  func(ctx context.Context, boardID uuid.UUID) ([]*domain.KanbanCard, error)
	SaveFunc         func(ctx context.Context, card *domain.KanbanCard) error
	SaveAllFunc      func(ctx context.Context, cards []*domain.KanbanCard) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	DeleteByListFunc func(ctx context.Context, listID uuid.UUID) error
}

func (m *MockKanbanCardRepository) WithTx(tx *gorm.DB) repository.KanbanCardRepository { return m }

func (m *MockKanbanCardRepository) Create(ctx context.Context, card *domain.KanbanCard) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, card)
	}
	return nil
}

func (m *MockKanbanCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.KanbanCard, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockKanbanCardRepository) FindByList(ctx context.Context, listID uuid.UUID) ([]*domain.KanbanCard, error) {
	if m.FindByListFunc != nil {
		return m.FindByListFunc(ctx, listID)
	}
	return nil, nil
}

func (m *MockKanbanCardRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.KanbanCard, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockKanbanCardRepository) Save(ctx context.Context, card *domain.KanbanCard) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, card)
	}
	return nil
}

func (m *MockKanbanCardRepository) SaveAll(ctx context.Context, cards []*domain.KanbanCard) error {
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, cards)
	}
	return nil
}

func (m *MockKanbanCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockKanbanCardRepository) DeleteByList(ctx context.Context, listID uuid.UUID) error {
	if m.DeleteByListFunc != nil {
		return m.DeleteByListFunc(ctx, listID)
	}
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc       func(ctx context.Context, comment *domain.CardComment) error
	FindByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.CardComment, error)
	FindByCardFunc   func(ctx context.Context, cardID uuid.UUID) ([]*domain.CardComment, error)
	UpdateFunc       func(ctx context.Context, comment *domain.CardComment) error
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	DeleteByCardFunc func(ctx context.Context, cardID uuid.UUID) error
}

func (m *MockCommentRepository) WithTx(tx *gorm.DB) repository.CommentRepository { return m }

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.CardComment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CardComment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCommentRepository) FindByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.CardComment, error) {
	if m.FindByCardFunc != nil {
		return m.FindByCardFunc(ctx, cardID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.CardComment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) DeleteByCard(ctx context.Context, cardID uuid.UUID) error {
	if m.DeleteByCardFunc != nil {
		return m.DeleteByCardFunc(ctx, cardID)
	}
	return nil
}

// MockLabelRepository is a mock implementation of LabelRepository
type MockLabelRepository struct {
	CreateFunc      func(ctx context.Context, label *domain.Label) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Label, error)
	FindByBoardFunc func(ctx context.Context, boardID uuid.UUID) ([]*domain.Label, error)
	UpdateFunc      func(ctx context.Context, label *domain.Label) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockLabelRepository) Create(ctx context.Context, label *domain.Label) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, label)
	}
	return nil
}

func (m *MockLabelRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Label, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockLabelRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Label, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockLabelRepository) Update(ctx context.Context, label *domain.Label) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, label)
	}
	return nil
}

func (m *MockLabelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
