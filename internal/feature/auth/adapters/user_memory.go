package adapters

import (
	"context"
	"sync"
	"time"

	"admin_backend/internal/feature/auth/domain/entity"
	"admin_backend/internal/feature/auth/usecase"
)

// userMemory はUserStoreインターフェースのインメモリ実装です。
// データベースが利用できない間のフォールバック先として使用します。
// プロセス内にのみ保持され、再起動で全データが失われます。
// リレーショナルストアとはID採番もデータも共有しません。
type userMemory struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	nextID  uint
}

// userMemoryがUserStoreを実装していることをコンパイル時に検証します。
var _ usecase.UserStore = (*userMemory)(nil)

// NewUserMemory はuserMemoryの新しいインスタンスを生成します。
// プロセス起動時に1度だけ構築し、ハンドラー間で共有します。
func NewUserMemory() *userMemory {
	return &userMemory{
		byEmail: make(map[string]*entity.User),
		nextID:  1,
	}
}

// Create はユーザーをメモリ上に追加し、プロセスローカルな連番IDを割り当てます。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userMemory) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return usecase.ErrEmailAlreadyExists
	}

	u.ID = r.nextID
	r.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	// 呼び出し元との共有を避けるためコピーを保持する
	stored := *u
	r.byEmail[u.Email] = &stored
	return nil
}

// FindByEmail はメールアドレスの完全一致でユーザーを検索します。
func (r *userMemory) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, usecase.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

// FindByID はIDでユーザーを検索します。
func (r *userMemory) FindByID(_ context.Context, id uint) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, usecase.ErrUserNotFound
}

// UpdateLastLogin は最終ログイン時刻を更新します。
func (r *userMemory) UpdateLastLogin(_ context.Context, id uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			u.LastLogin = &at
			return nil
		}
	}
	return usecase.ErrUserNotFound
}
